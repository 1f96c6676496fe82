package dto

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// ActivityListResponse registros del historial, más reciente primero.
type ActivityListResponse struct {
	Records []entity.ActivityRecord `json:"records"`
	Total   int                     `json:"total"`
}
