package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// TotalQuantity suma las cantidades de todos los items (servicio de dominio).
func TotalQuantity(items []entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}

// TotalValue suma cantidad × precio unitario; los items sin precio aportan cero.
func TotalValue(items []entity.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalValue())
	}
	return total
}

// LowStock filtra los items en o por debajo de su umbral de stock mínimo.
func LowStock(items []entity.Item) []entity.Item {
	out := make([]entity.Item, 0)
	for _, it := range items {
		if it.BelowMinStock() {
			out = append(out, it)
		}
	}
	return out
}

// ByCategory agrupa los items por categoría conservando el orden de entrada
// de las categorías. Los items cuya categoría no exista se cuelgan de la
// reservada.
func ByCategory(items []entity.Item, categories []entity.Category) map[string][]entity.Item {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	out := make(map[string][]entity.Item, len(categories))
	for _, it := range items {
		id := it.CategoryID
		if !known[id] {
			id = entity.DefaultCategoryID
		}
		out[id] = append(out[id], it)
	}
	return out
}
