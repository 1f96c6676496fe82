package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ItemUseCase casos de uso CRUD sobre items. Toda escritura pasa por el
// store vía acciones; este caso de uso solo valida, arma la entidad y
// registra la actividad correspondiente.
type ItemUseCase struct {
	st *store.Store
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(st *store.Store) *ItemUseCase {
	return &ItemUseCase{st: st}
}

// Create crea un item nuevo. Si no trae categoría se asigna la reservada.
func (uc *ItemUseCase) Create(actor entity.User, in dto.ItemPayload) (*entity.Item, error) {
	if err := uc.validatePayload(in); err != nil {
		return nil, err
	}
	now := time.Now()
	item := entity.Item{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		CategoryID:  uc.resolveCategory(in.CategoryID),
		Waybill:     in.Waybill,
		Tags:        normalizeTags(in.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
		UnitPrice:   in.UnitPrice,
		MinStock:    in.MinStock,
	}

	uc.st.Dispatch(store.AddItem{Item: item})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityCreate,
		fmt.Sprintf("Creó el artículo %q", item.Name),
		map[string]string{"itemId": item.ID},
	)})
	return &item, nil
}

// Update reemplaza el item completo conservando id y fecha de creación.
func (uc *ItemUseCase) Update(actor entity.User, id string, in dto.ItemPayload) (*entity.Item, error) {
	current, ok := uc.st.GetState().ItemByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if err := uc.validatePayload(in); err != nil {
		return nil, err
	}
	item := entity.Item{
		ID:          current.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		CategoryID:  uc.resolveCategory(in.CategoryID),
		Waybill:     in.Waybill,
		Tags:        normalizeTags(in.Tags),
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   time.Now(),
		UnitPrice:   in.UnitPrice,
		MinStock:    in.MinStock,
	}

	uc.st.Dispatch(store.UpdateItem{Item: item})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityUpdate,
		fmt.Sprintf("Actualizó el artículo %q", item.Name),
		map[string]string{"itemId": item.ID},
	)})
	return &item, nil
}

// Delete elimina un item por id.
func (uc *ItemUseCase) Delete(actor entity.User, id string) error {
	current, ok := uc.st.GetState().ItemByID(id)
	if !ok {
		return domain.ErrNotFound
	}
	uc.st.Dispatch(store.DeleteItem{ID: id})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityDelete,
		fmt.Sprintf("Eliminó el artículo %q", current.Name),
		map[string]string{"itemId": id},
	)})
	return nil
}

// Get obtiene un item por id.
func (uc *ItemUseCase) Get(id string) (*entity.Item, error) {
	item, ok := uc.st.GetState().ItemByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// List lista items con filtro opcional por texto libre y por categoría. Una
// búsqueda con texto deja rastro en el historial (kind search).
func (uc *ItemUseCase) List(actor entity.User, query, categoryID string) *dto.ItemListResponse {
	state := uc.st.GetState()
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entity.Item, 0, len(state.Items))
	for _, it := range state.Items {
		if categoryID != "" && it.CategoryID != categoryID {
			continue
		}
		if q != "" && !matchesQuery(it, q) {
			continue
		}
		out = append(out, it)
	}

	if q != "" {
		uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
			actor, entity.ActivitySearch,
			fmt.Sprintf("Buscó %q en el inventario", query),
			map[string]any{"query": query, "results": len(out)},
		)})
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}
}

// Import reemplaza la colección completa de items (SET_ITEMS). Los items
// sin id o sin categoría válida se normalizan en lugar de rechazarse.
func (uc *ItemUseCase) Import(actor entity.User, items []entity.Item) (int, error) {
	now := time.Now()
	normalized := make([]entity.Item, 0, len(items))
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return 0, domain.ErrInvalidInput
		}
		if it.Quantity.IsNegative() {
			return 0, domain.ErrInvalidInput
		}
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		it.CategoryID = uc.resolveCategory(it.CategoryID)
		it.Tags = normalizeTags(it.Tags)
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		it.UpdatedAt = now
		normalized = append(normalized, it)
	}

	uc.st.Dispatch(store.SetItems{Items: normalized})
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityCreate,
		fmt.Sprintf("Importó %d artículos", len(normalized)),
		map[string]int{"count": len(normalized)},
	)})
	return len(normalized), nil
}

// LowStock devuelve los items en o por debajo de su umbral de stock mínimo.
func (uc *ItemUseCase) LowStock() []entity.Item {
	state := uc.st.GetState()
	out := make([]entity.Item, 0)
	for _, it := range state.Items {
		if it.BelowMinStock() {
			out = append(out, it)
		}
	}
	return out
}

func (uc *ItemUseCase) validatePayload(in dto.ItemPayload) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.Quantity.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.MinStock != nil && in.MinStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

// resolveCategory devuelve la categoría si existe; vacía o desconocida cae
// en la reservada, nunca se deja un item huérfano.
func (uc *ItemUseCase) resolveCategory(categoryID string) string {
	if categoryID == "" {
		return entity.DefaultCategoryID
	}
	if _, ok := uc.st.GetState().CategoryByID(categoryID); !ok {
		return entity.DefaultCategoryID
	}
	return categoryID
}

func matchesQuery(it entity.Item, q string) bool {
	if strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(it.Waybill), q) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
