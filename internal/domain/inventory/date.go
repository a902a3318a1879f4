package inventory

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout formato canónico de fechas de movimientos.
const DateLayout = "2006-01-02"

// timestampLayouts formatos ISO 8601 con hora aceptados además de DateLayout.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// MovementDate fecha de un movimiento ya validada.
// Day es la fecha calendario a 00:00 UTC, que es lo que se persiste.
type MovementDate struct {
	Day     time.Time
	instant time.Time // solo si la entrada traía hora
}

// ParseMovementDate interpreta s como fecha calendario (YYYY-MM-DD) o como marca de
// tiempo ISO 8601. Las marcas sin zona se interpretan en loc.
func ParseMovementDate(s string, loc *time.Location) (MovementDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MovementDate{}, fmt.Errorf("fecha vacía")
	}
	if d, err := time.ParseInLocation(DateLayout, s, time.UTC); err == nil {
		return MovementDate{Day: d}, nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		local := t.In(loc)
		return MovementDate{
			Day:     time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC),
			instant: t,
		}, nil
	}
	return MovementDate{}, fmt.Errorf("fecha %q no tiene formato ISO 8601", s)
}

// IsFuture indica si la fecha es estrictamente posterior a now.
// Una fecha sin hora es futura solo si su día calendario es posterior al de now.
func (d MovementDate) IsFuture(now time.Time) bool {
	if !d.instant.IsZero() {
		return d.instant.After(now)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.Day.After(today)
}

// FormatDate devuelve la fecha en formato canónico.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
