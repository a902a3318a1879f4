package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.Ledger.LockTimeout)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, time.Local, cfg.Ledger.Location)
	assert.Empty(t, cfg.Admin.Username)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_LOCK_TIMEOUT_MS", "250")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.DB.Driver)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 250*time.Millisecond, cfg.Ledger.LockTimeout)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_SinSecretoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_DriverDesconocidoFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := Load()
	assert.Error(t, err)
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "taller", Password: "p@ss:w/rd", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://taller:p%40ss%3Aw%2Frd@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestLoad_ZonaHorariaYAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("LEDGER_TIMEZONE", "UTC")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "corta")

	_, err := Load()
	assert.Error(t, err, "la contraseña del admin es demasiado corta")

	t.Setenv("ADMIN_PASSWORD", "suficientemente-larga")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Ledger.Location.String())
	assert.Equal(t, "admin", cfg.Admin.Username)

	t.Setenv("LEDGER_TIMEZONE", "Marte/Olympus")
	_, err = Load()
	assert.Error(t, err)
}
