package dto

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// CategoryPayload datos de una categoría para crear o actualizar.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CategoryListResponse listado ordenado de categorías.
type CategoryListResponse struct {
	Categories []entity.Category `json:"categories"`
}
