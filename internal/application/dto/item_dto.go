package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ItemPayload datos de un item para crear o actualizar. En la actualización
// el registro se reemplaza completo (semántica full-record del store), así
// que el caller debe mandar todos los campos, no solo los que cambian.
type ItemPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	CategoryID  string           `json:"categoryId"`
	Waybill     string           `json:"waybill"`
	Tags        []string         `json:"tags"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	MinStock    *decimal.Decimal `json:"minStock,omitempty"`
}

// ImportItemsRequest reemplaza la colección completa de items (SET_ITEMS).
type ImportItemsRequest struct {
	Items []entity.Item `json:"items"`
}

// ItemListResponse listado de items con el total tras filtros.
type ItemListResponse struct {
	Items []entity.Item `json:"items"`
	Total int           `json:"total"`
}
