package repository

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// StateRepository es el puerto de persistencia del estado agregado: un único
// slot durable con nombre fijo, propiedad exclusiva del adaptador.
//
// Save se invoca tras cada reducción; el store registra y traga el error para
// que un fallo transitorio de I/O nunca tumbe el proceso.
// Load devuelve (nil, nil) cuando no hay estado guardado; la recuperación de
// datos malformados es parcial, campo a campo, nunca fatal.
type StateRepository interface {
	Save(state entity.State) error
	Load() (*entity.State, error)
}
