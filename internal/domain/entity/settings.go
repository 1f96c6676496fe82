package entity

import "golang.org/x/crypto/bcrypt"

// DefaultAdminPasscode es la clave de administrador inicial; se guarda
// hasheada con bcrypt y puede cambiarse desde Settings.
const DefaultAdminPasscode = "admin123"

// Link enlace informativo configurable (manuales, soporte, etc.).
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Settings preferencias de la aplicación. Singleton dentro del estado;
// se actualiza campo a campo vía SettingsPatch (merge, no reemplazo).
type Settings struct {
	Theme           string `json:"theme"`       // light | dark | system
	ColorScheme     string `json:"colorScheme"` // paleta de la UI
	Density         string `json:"density"`     // comfortable | compact
	AdminPasscode   string `json:"adminPasscode"` // hash bcrypt, nunca en claro
	APIKey          string `json:"apiKey,omitempty"` // clave del asistente externo
	Links           []Link `json:"links,omitempty"`
	AutoLogout      bool   `json:"autoLogout"`
	RememberSession bool   `json:"rememberSession"`
	NotifyLowStock  bool   `json:"notifyLowStock"`
	NotifyActivity  bool   `json:"notifyActivity"`
}

// SettingsPatch actualización parcial: solo los campos no nulos se aplican.
type SettingsPatch struct {
	Theme           *string `json:"theme,omitempty"`
	ColorScheme     *string `json:"colorScheme,omitempty"`
	Density         *string `json:"density,omitempty"`
	AdminPasscode   *string `json:"adminPasscode,omitempty"` // ya hasheada por el caller
	APIKey          *string `json:"apiKey,omitempty"`
	Links           *[]Link `json:"links,omitempty"`
	AutoLogout      *bool   `json:"autoLogout,omitempty"`
	RememberSession *bool   `json:"rememberSession,omitempty"`
	NotifyLowStock  *bool   `json:"notifyLowStock,omitempty"`
	NotifyActivity  *bool   `json:"notifyActivity,omitempty"`
}

// DefaultSettings construye las preferencias iniciales.
func DefaultSettings() Settings {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultAdminPasscode), bcrypt.DefaultCost)
	return Settings{
		Theme:           "light",
		ColorScheme:     "blue",
		Density:         "comfortable",
		AdminPasscode:   string(hash),
		AutoLogout:      true,
		RememberSession: true,
		NotifyLowStock:  true,
		NotifyActivity:  false,
	}
}

// Merge aplica el patch sobre una copia y la devuelve.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s.Clone()
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.ColorScheme != nil {
		out.ColorScheme = *p.ColorScheme
	}
	if p.Density != nil {
		out.Density = *p.Density
	}
	if p.AdminPasscode != nil {
		out.AdminPasscode = *p.AdminPasscode
	}
	if p.APIKey != nil {
		out.APIKey = *p.APIKey
	}
	if p.Links != nil {
		out.Links = append([]Link(nil), (*p.Links)...)
	}
	if p.AutoLogout != nil {
		out.AutoLogout = *p.AutoLogout
	}
	if p.RememberSession != nil {
		out.RememberSession = *p.RememberSession
	}
	if p.NotifyLowStock != nil {
		out.NotifyLowStock = *p.NotifyLowStock
	}
	if p.NotifyActivity != nil {
		out.NotifyActivity = *p.NotifyActivity
	}
	return out
}

// Clone devuelve una copia profunda de las preferencias.
func (s Settings) Clone() Settings {
	out := s
	if s.Links != nil {
		out.Links = append([]Link(nil), s.Links...)
	}
	return out
}
