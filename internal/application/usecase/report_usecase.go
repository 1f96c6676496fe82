package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/inventory"
)

// CategorySection items de una categoría con su subtotal valorizado.
type CategorySection struct {
	Category entity.Category
	Items    []entity.Item
	Subtotal decimal.Decimal
}

// ReportData datos planos del reporte de inventario, listos para render.
type ReportData struct {
	AppName       string
	GeneratedAt   time.Time
	GeneratedBy   string
	Sections      []CategorySection
	LowStock      []entity.Item
	TotalItems    int
	TotalQuantity decimal.Decimal
	TotalValue    decimal.Decimal
}

// InventoryPDFGenerator renderiza el reporte. La implementación vive en
// infraestructura (Maroto).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, data *ReportData) ([]byte, error)
}

// ReportUseCase arma el reporte PDF del inventario actual.
type ReportUseCase struct {
	st      *store.Store
	gen     InventoryPDFGenerator
	appName string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(st *store.Store, gen InventoryPDFGenerator, appName string) *ReportUseCase {
	return &ReportUseCase{st: st, gen: gen, appName: appName}
}

// Generate arma los datos desde el estado actual y renderiza el PDF.
func (uc *ReportUseCase) Generate(ctx context.Context, actor entity.User) ([]byte, error) {
	data := uc.Build(actor)
	return uc.gen.GenerateInventoryPDF(ctx, data)
}

// Build proyecta el estado al modelo del reporte: una sección por categoría
// con items (las vacías se omiten), bajo stock y totales generales.
func (uc *ReportUseCase) Build(actor entity.User) *ReportData {
	state := uc.st.GetState()
	grouped := inventory.ByCategory(state.Items, state.Categories)

	sections := make([]CategorySection, 0, len(state.Categories))
	for _, cat := range state.Categories {
		items := grouped[cat.ID]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, CategorySection{
			Category: cat,
			Items:    items,
			Subtotal: inventory.TotalValue(items),
		})
	}

	return &ReportData{
		AppName:       uc.appName,
		GeneratedAt:   time.Now(),
		GeneratedBy:   actor.Name,
		Sections:      sections,
		LowStock:      inventory.LowStock(state.Items),
		TotalItems:    len(state.Items),
		TotalQuantity: inventory.TotalQuantity(state.Items),
		TotalValue:    inventory.TotalValue(state.Items),
	}
}
