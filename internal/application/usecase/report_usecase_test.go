package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// generadorFalso captura los datos y devuelve bytes fijos.
type generadorFalso struct {
	recibido *ReportData
}

func (g *generadorFalso) GenerateInventoryPDF(_ context.Context, data *ReportData) ([]byte, error) {
	g.recibido = data
	return []byte("%PDF-fake"), nil
}

func TestReportBuild_AgrupaPorCategoriaConSubtotales(t *testing.T) {
	st := storeDePrueba()
	itemUC := NewItemUseCase(st)
	catUC := NewCategoryUseCase(st)
	actor := actorDePrueba()

	cat, err := catUC.Create(actor, dto.CategoryPayload{Name: "Herramientas"})
	require.NoError(t, err)

	precio := cantidad(100)
	_, err = itemUC.Create(actor, dto.ItemPayload{
		Name: "Taladro", Quantity: cantidad(3), CategoryID: cat.ID, UnitPrice: &precio,
	})
	require.NoError(t, err)
	min := cantidad(5)
	_, err = itemUC.Create(actor, dto.ItemPayload{
		Name: "Guantes", Quantity: cantidad(2), MinStock: &min,
	})
	require.NoError(t, err)

	uc := NewReportUseCase(st, &generadorFalso{}, "Inventario Local")
	data := uc.Build(actor)

	assert.Equal(t, "Inventario Local", data.AppName)
	assert.Equal(t, actor.Name, data.GeneratedBy)
	assert.Equal(t, 2, data.TotalItems)
	assert.True(t, data.TotalQuantity.Equal(cantidad(5)))
	assert.True(t, data.TotalValue.Equal(cantidad(300)), "solo los items con precio suman valor")

	// dos secciones: la reservada (Guantes) y Herramientas (Taladro)
	require.Len(t, data.Sections, 2)
	porID := map[string]CategorySection{}
	for _, s := range data.Sections {
		porID[s.Category.ID] = s
	}
	assert.True(t, porID[cat.ID].Subtotal.Equal(cantidad(300)))
	assert.True(t, porID[entity.DefaultCategoryID].Subtotal.IsZero())

	require.Len(t, data.LowStock, 1)
	assert.Equal(t, "Guantes", data.LowStock[0].Name)
}

func TestReportBuild_OmiteCategoriasVacias(t *testing.T) {
	st := storeDePrueba()
	catUC := NewCategoryUseCase(st)
	actor := actorDePrueba()

	_, err := catUC.Create(actor, dto.CategoryPayload{Name: "Vacía"})
	require.NoError(t, err)

	uc := NewReportUseCase(st, &generadorFalso{}, "Inventario Local")
	data := uc.Build(actor)
	assert.Empty(t, data.Sections, "sin items no hay secciones")
}

func TestReportGenerate_DelegaEnElGenerador(t *testing.T) {
	st := storeDePrueba()
	gen := &generadorFalso{}
	uc := NewReportUseCase(st, gen, "Inventario Local")

	raw, err := uc.Generate(context.Background(), actorDePrueba())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), raw)
	require.NotNil(t, gen.recibido)
	assert.Equal(t, "Inventario Local", gen.recibido.AppName)
}
