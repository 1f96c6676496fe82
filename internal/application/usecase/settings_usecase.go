package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// SettingsUseCase preferencias de la aplicación. La clave de administrador
// llega en claro y se hashea aquí antes de tocar el estado.
type SettingsUseCase struct {
	st *store.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(st *store.Store) *SettingsUseCase {
	return &SettingsUseCase{st: st}
}

// Get devuelve las preferencias visibles (sin el hash de la clave).
func (uc *SettingsUseCase) Get() dto.SettingsResponse {
	return dto.ToSettingsResponse(uc.st.GetState().Settings)
}

// Update aplica un patch parcial. Theme y Density se validan contra sus
// enumeraciones; una clave de administrador nueva se hashea con bcrypt.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if in.Theme != nil && !validTheme(*in.Theme) {
		return nil, domain.ErrInvalidInput
	}
	if in.Density != nil && !validDensity(*in.Density) {
		return nil, domain.ErrInvalidInput
	}

	patch := entity.SettingsPatch{
		Theme:           in.Theme,
		ColorScheme:     in.ColorScheme,
		Density:         in.Density,
		APIKey:          in.APIKey,
		Links:           in.Links,
		AutoLogout:      in.AutoLogout,
		RememberSession: in.RememberSession,
		NotifyLowStock:  in.NotifyLowStock,
		NotifyActivity:  in.NotifyActivity,
	}
	if in.AdminPasscode != nil {
		if len(*in.AdminPasscode) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.AdminPasscode), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		patch.AdminPasscode = &hashed
	}

	uc.st.Dispatch(store.UpdateSettings{Patch: patch})
	out := dto.ToSettingsResponse(uc.st.GetState().Settings)
	return &out, nil
}

func validTheme(t string) bool {
	switch t {
	case "light", "dark", "system":
		return true
	}
	return false
}

func validDensity(d string) bool {
	switch d {
	case "comfortable", "compact":
		return true
	}
	return false
}
