package entity

import (
	"strings"
	"time"
)

// DefaultCategoryID identifica la categoría reservada: siempre existe y es el
// destino de los items huérfanos cuando se elimina su categoría.
const DefaultCategoryID = "default"

// Category representa una categoría de artículos. El nombre es único sin
// distinguir mayúsculas (lo valida el caso de uso, no el reducer).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DefaultCategory construye la categoría reservada.
func DefaultCategory() Category {
	return Category{
		ID:        DefaultCategoryID,
		Name:      "General",
		Color:     "#9e9e9e",
		CreatedAt: time.Now(),
	}
}

// EnsureDefaultCategory garantiza que la categoría reservada esté presente.
func EnsureDefaultCategory(cs []Category) []Category {
	for _, c := range cs {
		if c.ID == DefaultCategoryID {
			return cs
		}
	}
	return append([]Category{DefaultCategory()}, cs...)
}

// HasCategoryName indica si algún elemento de cs usa ese nombre (case-insensitive),
// ignorando la categoría con id excludeID (útil al renombrar).
func HasCategoryName(cs []Category, name, excludeID string) bool {
	for _, c := range cs {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
