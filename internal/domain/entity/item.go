package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del inventario. Las entidades llevan tags JSON en
// camelCase porque son a la vez el modelo de lectura y el layout persistido del
// slot de estado.
type Item struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Quantity    decimal.Decimal  `json:"quantity"` // entero o decimal, nunca negativo
	Unit        string           `json:"unit,omitempty"`
	CategoryID  string           `json:"categoryId"`
	Waybill     string           `json:"waybill,omitempty"` // referencia de remisión/guía
	Tags        []string         `json:"tags,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	MinStock    *decimal.Decimal `json:"minStock,omitempty"` // umbral de stock mínimo
}

// Clone devuelve una copia profunda del item (tags y punteros incluidos).
func (i Item) Clone() Item {
	out := i
	if i.Tags != nil {
		out.Tags = append([]string(nil), i.Tags...)
	}
	if i.UnitPrice != nil {
		p := *i.UnitPrice
		out.UnitPrice = &p
	}
	if i.MinStock != nil {
		m := *i.MinStock
		out.MinStock = &m
	}
	return out
}

// BelowMinStock indica si la cantidad está en o por debajo del umbral mínimo.
// Sin umbral configurado siempre es false.
func (i Item) BelowMinStock() bool {
	if i.MinStock == nil {
		return false
	}
	return i.Quantity.LessThanOrEqual(*i.MinStock)
}

// TotalValue devuelve cantidad × precio unitario (cero si no hay precio).
func (i Item) TotalValue() decimal.Decimal {
	if i.UnitPrice == nil {
		return decimal.Zero
	}
	return i.Quantity.Mul(*i.UnitPrice)
}
