package entity

import "time"

// Roles válidos para User.
const (
	RoleGuest = "guest"
	RoleTeam  = "team"
	RoleAdmin = "admin"
)

// ValidRole valida el rol contra la enumeración fija.
func ValidRole(r string) bool {
	switch r {
	case RoleGuest, RoleTeam, RoleAdmin:
		return true
	}
	return false
}

// User representa al usuario de la sesión actual (una sola sesión por proceso).
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // guest | team | admin
	CreatedAt time.Time `json:"createdAt"`
	LastLogin time.Time `json:"lastLogin"`
}

// AuthSession estado de autenticación. Invariante: User es no nulo si y
// solo si IsAuthenticated es true.
type AuthSession struct {
	IsAuthenticated bool       `json:"isAuthenticated"`
	User            *User      `json:"user,omitempty"`
	SessionExpiry   *time.Time `json:"sessionExpiry,omitempty"`
}

// Clone devuelve una copia profunda de la sesión.
func (a AuthSession) Clone() AuthSession {
	out := a
	if a.User != nil {
		u := *a.User
		out.User = &u
	}
	if a.SessionExpiry != nil {
		t := *a.SessionExpiry
		out.SessionExpiry = &t
	}
	return out
}
