// Package storage selecciona el backend de persistencia. El discriminante
// USE_SUPABASE se consulta aquí una única vez, en el arranque: el resto de la
// aplicación solo conoce los puertos de repository y no sabe (ni debe saber)
// contra qué backend habla.
package storage

import (
	"context"
	"fmt"

	"github.com/weimars70/conta-hencker/internal/domain/repository"
	"github.com/weimars70/conta-hencker/internal/infrastructure/postgres"
	"github.com/weimars70/conta-hencker/internal/infrastructure/supabase"
	"github.com/weimars70/conta-hencker/pkg/config"
)

// Backends agrupa todos los puertos de persistencia ya resueltos contra un
// backend concreto, más el cierre ordenado de sus recursos.
type Backends struct {
	Gateway      repository.TableGateway
	Empresas     repository.EmpresaRepository
	Usuarios     repository.UsuarioRepository
	Accesos      repository.AccesoRepository
	PlanContable repository.PlanContableRepository
	Contabilidad repository.ContabilidadRepository

	close func()
}

// New arma los repositorios según la configuración. Con USE_SUPABASE=true
// construye el cliente PostgREST; en caso contrario abre el pool pgx y
// verifica conectividad antes de devolver nada.
func New(ctx context.Context, cfg config.DBConfig) (*Backends, error) {
	if cfg.UseSupabase {
		rest := supabase.NewClient(cfg)
		return &Backends{
			Gateway:      supabase.NewGateway(rest),
			Empresas:     supabase.NewEmpresaRepository(rest),
			Usuarios:     supabase.NewUsuarioRepository(rest),
			Accesos:      supabase.NewAccesoRepository(rest),
			PlanContable: supabase.NewPlanContableRepository(rest),
			Contabilidad: supabase.NewContabilidadRepository(rest),
			close:        func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &Backends{
		Gateway:      postgres.NewGateway(pool),
		Empresas:     postgres.NewEmpresaRepository(pool),
		Usuarios:     postgres.NewUsuarioRepository(pool),
		Accesos:      postgres.NewAccesoRepository(pool),
		PlanContable: postgres.NewPlanContableRepository(pool),
		Contabilidad: postgres.NewContabilidadRepository(pool),
		close:        pool.Close,
	}, nil
}

// Close libera los recursos del backend activo.
func (b *Backends) Close() {
	if b.close != nil {
		b.close()
	}
}
