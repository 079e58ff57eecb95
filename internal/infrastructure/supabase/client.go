// Package supabase implementa los puertos de persistencia contra el backend
// gestionado, hablando PostgREST (API REST de Supabase) en lugar de SQL
// directo. Comparte con el paquete postgres el registro de esquema, la
// normalización de activo y la taxonomía de errores de dominio.
package supabase

import (
	"github.com/supabase-community/postgrest-go"
	"github.com/weimars70/conta-hencker/pkg/config"
)

// NewClient construye el cliente PostgREST apuntando al proyecto Supabase.
// La key viaja como apikey y como Bearer, igual que lo hace supabase-js.
func NewClient(cfg config.DBConfig) *postgrest.Client {
	return postgrest.NewClient(cfg.RestURL(), "public", map[string]string{
		"apikey":        cfg.SupabaseKey,
		"Authorization": "Bearer " + cfg.SupabaseKey,
	})
}
