package dto

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// UpdateSettingsRequest actualización parcial de preferencias: solo los
// campos presentes se aplican. AdminPasscode llega en claro y el caso de
// uso la hashea antes de despachar.
type UpdateSettingsRequest struct {
	Theme           *string        `json:"theme,omitempty"`
	ColorScheme     *string        `json:"colorScheme,omitempty"`
	Density         *string        `json:"density,omitempty"`
	AdminPasscode   *string        `json:"adminPasscode,omitempty"`
	APIKey          *string        `json:"apiKey,omitempty"`
	Links           *[]entity.Link `json:"links,omitempty"`
	AutoLogout      *bool          `json:"autoLogout,omitempty"`
	RememberSession *bool          `json:"rememberSession,omitempty"`
	NotifyLowStock  *bool          `json:"notifyLowStock,omitempty"`
	NotifyActivity  *bool          `json:"notifyActivity,omitempty"`
}

// SettingsResponse preferencias visibles: nunca expone el hash de la clave
// de administrador, solo si hay una configurada.
type SettingsResponse struct {
	Theme           string        `json:"theme"`
	ColorScheme     string        `json:"colorScheme"`
	Density         string        `json:"density"`
	HasPasscode     bool          `json:"hasPasscode"`
	APIKeySet       bool          `json:"apiKeySet"`
	Links           []entity.Link `json:"links,omitempty"`
	AutoLogout      bool          `json:"autoLogout"`
	RememberSession bool          `json:"rememberSession"`
	NotifyLowStock  bool          `json:"notifyLowStock"`
	NotifyActivity  bool          `json:"notifyActivity"`
}

// ToSettingsResponse proyecta las preferencias al DTO visible.
func ToSettingsResponse(s entity.Settings) SettingsResponse {
	return SettingsResponse{
		Theme:           s.Theme,
		ColorScheme:     s.ColorScheme,
		Density:         s.Density,
		HasPasscode:     s.AdminPasscode != "",
		APIKeySet:       s.APIKey != "",
		Links:           s.Links,
		AutoLogout:      s.AutoLogout,
		RememberSession: s.RememberSession,
		NotifyLowStock:  s.NotifyLowStock,
		NotifyActivity:  s.NotifyActivity,
	}
}
