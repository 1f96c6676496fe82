package dto

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// LoginRequest apertura de sesión. Passcode solo es obligatoria para admin.
type LoginRequest struct {
	Role     string `json:"role"` // guest | team | admin
	Name     string `json:"name"`
	Email    string `json:"email"`
	Passcode string `json:"passcode"`
}

// LoginResponse token para la capa HTTP + usuario y expiración de la sesión.
type LoginResponse struct {
	Token         string      `json:"token"`
	User          entity.User `json:"user"`
	SessionExpiry time.Time   `json:"sessionExpiry"`
}

// SessionResponse estado actual de la sesión.
type SessionResponse struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *entity.User `json:"user,omitempty"`
	SessionExpiry   *time.Time   `json:"sessionExpiry,omitempty"`
}
