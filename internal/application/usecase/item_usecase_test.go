package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

func TestItemCreate_AsignaIdYCategoriaReservada(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	out, err := uc.Create(actorDePrueba(), dto.ItemPayload{
		Name:     "Taladro",
		Quantity: cantidad(3),
		// sin categoría: debe caer en la reservada
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.DefaultCategoryID, out.CategoryID)

	state := st.GetState()
	require.Len(t, state.Items, 1)
	assert.Equal(t, out.ID, state.Items[0].ID)
}

func TestItemCreate_CategoriaDesconocidaCaeEnReservada(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	out, err := uc.Create(actorDePrueba(), dto.ItemPayload{
		Name:       "Llave inglesa",
		Quantity:   cantidad(1),
		CategoryID: "no-existe",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCategoryID, out.CategoryID)
}

func TestItemCreate_RechazaCantidadNegativa(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	_, err := uc.Create(actorDePrueba(), dto.ItemPayload{
		Name:     "Cinta",
		Quantity: cantidad(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, st.GetState().Items, "un payload inválido no debe tocar el estado")
}

func TestItemCreate_RechazaNombreVacio(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	_, err := uc.Create(actorDePrueba(), dto.ItemPayload{Name: "   ", Quantity: cantidad(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestItemCreate_NormalizaTags(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	out, err := uc.Create(actorDePrueba(), dto.ItemPayload{
		Name:     "Guantes",
		Quantity: cantidad(10),
		Tags:     []string{" epp ", "EPP", "", "seguridad"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"epp", "seguridad"}, out.Tags, "tags duplicados y vacíos se descartan")
}

func TestItemCreate_RegistraActividad(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	_, err := uc.Create(actorDePrueba(), dto.ItemPayload{Name: "Taladro", Quantity: cantidad(3)})
	require.NoError(t, err)

	log := st.GetState().ActivityLog
	require.Len(t, log, 1)
	assert.Equal(t, entity.ActivityCreate, log[0].Kind)
	assert.Equal(t, "actor-1", log[0].ActorID)
}

func TestItemUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	_, err := uc.Update(actorDePrueba(), "no-existe", dto.ItemPayload{Name: "X", Quantity: cantidad(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemUpdate_ConservaIdYFechaDeCreacion(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	created, err := uc.Create(actorDePrueba(), dto.ItemPayload{Name: "Taladro", Quantity: cantidad(3)})
	require.NoError(t, err)

	updated, err := uc.Update(actorDePrueba(), created.ID, dto.ItemPayload{
		Name:     "Taladro percutor",
		Quantity: cantidad(2),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Taladro percutor", updated.Name)
}

func TestItemDelete_Inexistente_RetornaNotFound(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	assert.ErrorIs(t, uc.Delete(actorDePrueba(), "no-existe"), domain.ErrNotFound)
}

func TestItemList_FiltraPorTextoYRegistraBusqueda(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)
	actor := actorDePrueba()

	_, err := uc.Create(actor, dto.ItemPayload{Name: "Taladro", Quantity: cantidad(3)})
	require.NoError(t, err)
	_, err = uc.Create(actor, dto.ItemPayload{Name: "Guantes", Quantity: cantidad(10), Tags: []string{"epp"}})
	require.NoError(t, err)

	out := uc.List(actor, "epp", "")
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Guantes", out.Items[0].Name)

	log := st.GetState().ActivityLog
	require.NotEmpty(t, log)
	assert.Equal(t, entity.ActivitySearch, log[0].Kind, "una búsqueda con texto deja rastro")
}

func TestItemList_SinTextoNoRegistraActividad(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)
	actor := actorDePrueba()

	_, err := uc.Create(actor, dto.ItemPayload{Name: "Taladro", Quantity: cantidad(3)})
	require.NoError(t, err)
	antes := len(st.GetState().ActivityLog)

	uc.List(actor, "", "")
	assert.Len(t, st.GetState().ActivityLog, antes, "listar sin filtro no es una búsqueda")
}

func TestItemImport_ReemplazaLaColeccion(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)
	actor := actorDePrueba()

	_, err := uc.Create(actor, dto.ItemPayload{Name: "Viejo", Quantity: cantidad(1)})
	require.NoError(t, err)

	count, err := uc.Import(actor, []entity.Item{
		{Name: "Nuevo A", Quantity: cantidad(5)},
		{ID: "fijo-1", Name: "Nuevo B", Quantity: cantidad(2), CategoryID: "no-existe"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	state := st.GetState()
	require.Len(t, state.Items, 2)
	assert.NotEmpty(t, state.Items[0].ID, "los items sin id reciben uno")
	assert.Equal(t, entity.DefaultCategoryID, state.Items[1].CategoryID)
}

func TestItemImport_RechazaItemInvalido(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)

	_, err := uc.Import(actorDePrueba(), []entity.Item{{Name: "", Quantity: cantidad(1)}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, st.GetState().Items, "una importación inválida no debe reemplazar nada")
}

func TestItemLowStock(t *testing.T) {
	st := storeDePrueba()
	uc := NewItemUseCase(st)
	actor := actorDePrueba()

	min := cantidad(5)
	_, err := uc.Create(actor, dto.ItemPayload{Name: "Escaso", Quantity: cantidad(3), MinStock: &min})
	require.NoError(t, err)
	_, err = uc.Create(actor, dto.ItemPayload{Name: "Sobrado", Quantity: cantidad(50), MinStock: &min})
	require.NoError(t, err)
	_, err = uc.Create(actor, dto.ItemPayload{Name: "Sin umbral", Quantity: cantidad(0)})
	require.NoError(t, err)

	low := uc.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "Escaso", low[0].Name)
}
