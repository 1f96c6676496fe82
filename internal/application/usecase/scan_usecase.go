package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ScanUseCase simulación de escaneo QR: resuelve un código contra el
// inventario por id, tag o remisión. Todo escaneo queda en el historial,
// encuentre o no un item.
type ScanUseCase struct {
	st *store.Store
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(st *store.Store) *ScanUseCase {
	return &ScanUseCase{st: st}
}

// Scan resuelve el código. El orden de resolución es id exacto, luego tag
// exacto, luego remisión exacta (sin distinguir mayúsculas).
func (uc *ScanUseCase) Scan(actor entity.User, code string) (*dto.ScanResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}

	item := uc.resolve(code)
	result := &dto.ScanResult{Code: code, Found: item != nil, Item: item}

	detail := map[string]any{"code": code, "found": result.Found}
	description := fmt.Sprintf("Escaneó el código %q sin coincidencias", code)
	if item != nil {
		detail["itemId"] = item.ID
		description = fmt.Sprintf("Escaneó el código %q: %s", code, item.Name)
	}
	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivityScan, description, detail,
	)})
	return result, nil
}

func (uc *ScanUseCase) resolve(code string) *entity.Item {
	state := uc.st.GetState()

	if item, ok := state.ItemByID(code); ok {
		return &item
	}
	for _, it := range state.Items {
		for _, tag := range it.Tags {
			if strings.EqualFold(tag, code) {
				found := it.Clone()
				return &found
			}
		}
	}
	for _, it := range state.Items {
		if it.Waybill != "" && strings.EqualFold(it.Waybill, code) {
			found := it.Clone()
			return &found
		}
	}
	return nil
}
