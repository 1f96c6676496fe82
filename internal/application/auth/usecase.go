package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// defaultNames nombre por defecto cuando el login no trae uno.
var defaultNames = map[string]string{
	entity.RoleGuest: "Invitado",
	entity.RoleTeam:  "Equipo",
	entity.RoleAdmin: "Administrador",
}

// AuthUseCase casos de uso de sesión: login por rol, logout y refresh.
// El proceso sostiene una única sesión: un login pisa la anterior. El JWT
// es solo el portador de identidad de la capa HTTP; la verdad sobre la
// sesión vive en el estado del store.
type AuthUseCase struct {
	st     *store.Store
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(st *store.Store, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{st: st, jwtCfg: jwtCfg}
}

// Login abre sesión con el rol pedido. El rol admin exige la clave de
// administrador configurada en preferencias (bcrypt); guest y team entran
// sin clave.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}

	if role == entity.RoleAdmin {
		hash := uc.st.GetState().Settings.AdminPasscode
		if hash == "" {
			return nil, domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Passcode)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = defaultNames[role]
	}
	now := time.Now()
	user := entity.User{
		ID:        uuid.New().String(),
		Email:     strings.TrimSpace(in.Email),
		Name:      name,
		Role:      role,
		CreatedAt: now,
		LastLogin: now,
	}

	uc.st.Dispatch(store.Login{User: user})

	state := uc.st.GetState()
	if !state.Auth.IsAuthenticated || state.Auth.SessionExpiry == nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:         token,
		User:          user,
		SessionExpiry: *state.Auth.SessionExpiry,
	}, nil
}

// Logout cierra la sesión actual (idempotente).
func (uc *AuthUseCase) Logout() {
	uc.st.Dispatch(store.Logout{})
}

// Refresh extiende la expiración de la sesión activa.
func (uc *AuthUseCase) Refresh() (*dto.SessionResponse, error) {
	if !uc.st.GetState().Auth.IsAuthenticated {
		return nil, domain.ErrUnauthorized
	}
	uc.st.Dispatch(store.RefreshSession{})
	return uc.Session(), nil
}

// Session devuelve el estado actual de la sesión.
func (uc *AuthUseCase) Session() *dto.SessionResponse {
	a := uc.st.GetState().Auth
	return &dto.SessionResponse{
		IsAuthenticated: a.IsAuthenticated,
		User:            a.User,
		SessionExpiry:   a.SessionExpiry,
	}
}
