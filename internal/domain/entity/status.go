package entity

import "strings"

// Status ciclo de vida de todos los registros: los borrados son lógicos.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRetired Status = "RETIRED"
)

// Valid indica si s es uno de los dos estados conocidos.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusRetired
}

// ParseStatus normaliza un estado recibido del exterior ("active", " RETIRED ").
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}
