package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weimars70/conta-hencker/pkg/config"
)

func cfgPostgres() *config.Config {
	return &config.Config{
		DB: config.DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "conta",
			Password: "secreto",
			DBName:   "conta_hencker",
			MaxConns: 25,
		},
		JWT: config.JWTConfig{Secret: "clave-de-firma"},
	}
}

func cfgSupabase() *config.Config {
	return &config.Config{
		DB: config.DBConfig{
			UseSupabase: true,
			SupabaseURL: "https://xyz.supabase.co",
			SupabaseKey: "service-role-key",
		},
		JWT: config.JWTConfig{Secret: "clave-de-firma"},
	}
}

// ─────────────────────────── Validate ───────────────────────────

func TestValidate_PostgresCompleto(t *testing.T) {
	require.NoError(t, cfgPostgres().Validate())
}

func TestValidate_SupabaseCompleto(t *testing.T) {
	require.NoError(t, cfgSupabase().Validate())
}

func TestValidate_JWTSecretObligatorio(t *testing.T) {
	// El arranque debe morir aquí, no en el primer login.
	cfg := cfgPostgres()
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_JWTSecretObligatorioTambienConSupabase(t *testing.T) {
	cfg := cfgSupabase()
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_PostgresIncompletoListaLasFaltantes(t *testing.T) {
	cfg := cfgPostgres()
	cfg.DB.User = ""
	cfg.DB.DBName = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PG_USER")
	assert.Contains(t, err.Error(), "PG_DATABASE")
}

func TestValidate_SupabaseSinCredenciales(t *testing.T) {
	cfg := cfgSupabase()
	cfg.DB.SupabaseKey = ""

	require.Error(t, cfg.Validate())
}

func TestValidate_MaxConnsDebeSerPositivo(t *testing.T) {
	cfg := cfgPostgres()
	cfg.DB.MaxConns = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_CONNS")
}
