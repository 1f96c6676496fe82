package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// repoNulo descarta las escrituras: los tests de casos de uso no persisten.
type repoNulo struct{}

func (repoNulo) Save(entity.State) error      { return nil }
func (repoNulo) Load() (*entity.State, error) { return nil, nil }

// storeDePrueba construye un store limpio sin persistencia.
func storeDePrueba() *store.Store {
	return store.New(repoNulo{}, logger.Nop())
}

// actorDePrueba usuario que firma las mutaciones en los tests.
func actorDePrueba() entity.User {
	return entity.User{ID: "actor-1", Name: "Usuaria de prueba", Role: entity.RoleTeam}
}

// cantidad atajo para construir decimales en los tests.
func cantidad(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}
