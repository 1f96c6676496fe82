package usecase

import (
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ActivityUseCase lectura y limpieza del historial de actividad.
type ActivityUseCase struct {
	st *store.Store
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(st *store.Store) *ActivityUseCase {
	return &ActivityUseCase{st: st}
}

// List devuelve el historial completo, más reciente primero.
func (uc *ActivityUseCase) List() *dto.ActivityListResponse {
	records := uc.st.GetState().ActivityLog
	return &dto.ActivityListResponse{Records: records, Total: len(records)}
}

// Recent devuelve las n entradas más recientes.
func (uc *ActivityUseCase) Recent(n int) *dto.ActivityListResponse {
	records := uc.st.GetState().ActivityLog
	total := len(records)
	if n > 0 && n < total {
		records = records[:n]
	}
	return &dto.ActivityListResponse{Records: records, Total: total}
}

// Clear vacía el historial. La limpieza no deja rastro: un log vacío es el
// resultado esperado, no un log con una entrada de "limpieza".
func (uc *ActivityUseCase) Clear() {
	uc.st.Dispatch(store.SetActivityLog{Records: []entity.ActivityRecord{}})
}
