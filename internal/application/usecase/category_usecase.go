package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// CategoryUseCase casos de uso de categorías. La categoría reservada
// "default" no se puede eliminar; al borrar cualquier otra, sus items se
// reasignan a la reservada antes de despachar el DELETE (el reducer no
// hace cascada).
type CategoryUseCase struct {
	st       *store.Store
	collator *collate.Collator
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(st *store.Store) *CategoryUseCase {
	return &CategoryUseCase{
		st:       st,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
	}
}

// Create crea una categoría. El nombre es único sin distinguir mayúsculas.
func (uc *CategoryUseCase) Create(actor entity.User, in dto.CategoryPayload) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	state := uc.st.GetState()
	if entity.HasCategoryName(state.Categories, name, "") {
		return nil, domain.ErrDuplicate
	}
	cat := entity.Category{
		ID:          uuid.New().String(),
		Name:        name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   time.Now(),
	}

	uc.st.Dispatch(store.AddCategory{Category: cat})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityCreate,
		fmt.Sprintf("Creó la categoría %q", cat.Name),
		map[string]string{"categoryId": cat.ID},
	)})
	return &cat, nil
}

// Update reemplaza la categoría conservando id y fecha de creación. La
// reservada se puede renombrar pero no cambiar de id.
func (uc *CategoryUseCase) Update(actor entity.User, id string, in dto.CategoryPayload) (*entity.Category, error) {
	state := uc.st.GetState()
	current, ok := state.CategoryByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if entity.HasCategoryName(state.Categories, name, id) {
		return nil, domain.ErrDuplicate
	}
	cat := entity.Category{
		ID:          current.ID,
		Name:        name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   current.CreatedAt,
	}

	uc.st.Dispatch(store.UpdateCategory{Category: cat})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityUpdate,
		fmt.Sprintf("Actualizó la categoría %q", cat.Name),
		map[string]string{"categoryId": cat.ID},
	)})
	return &cat, nil
}

// Delete elimina una categoría y reasigna sus items a la reservada.
func (uc *CategoryUseCase) Delete(actor entity.User, id string) error {
	if id == entity.DefaultCategoryID {
		return domain.ErrReservedCategory
	}
	state := uc.st.GetState()
	current, ok := state.CategoryByID(id)
	if !ok {
		return domain.ErrNotFound
	}

	reassigned := 0
	for _, it := range state.Items {
		if it.CategoryID != id {
			continue
		}
		moved := it.Clone()
		moved.CategoryID = entity.DefaultCategoryID
		moved.UpdatedAt = time.Now()
		uc.st.Dispatch(store.UpdateItem{Item: moved})
		reassigned++
	}

	uc.st.Dispatch(store.DeleteCategory{ID: id})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityDelete,
		fmt.Sprintf("Eliminó la categoría %q", current.Name),
		map[string]any{"categoryId": id, "reassignedItems": reassigned},
	)})
	return nil
}

// List devuelve las categorías ordenadas por nombre con colación en
// español (la reservada siempre primero).
func (uc *CategoryUseCase) List() *dto.CategoryListResponse {
	state := uc.st.GetState()
	out := append([]entity.Category(nil), state.Categories...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ID == entity.DefaultCategoryID {
			return true
		}
		if out[j].ID == entity.DefaultCategoryID {
			return false
		}
		return uc.collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return &dto.CategoryListResponse{Categories: out}
}
