package store

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// DefaultPollInterval cadencia por defecto del monitor de sesión.
const DefaultPollInterval = time.Minute

// Monitor vigila la expiración de la sesión: una máquina de dos estados
// (armado/inactivo) gobernada por el propio estado del store. Se arma con
// LOGIN y se desarma con LOGOUT vía suscripción; REFRESH_SESSION solo mueve
// la frontera de expiración, no la cadencia. Cada tick, estando armado,
// compara el reloj con sessionExpiry y despacha Logout al vencer. Es la
// única fuente de dispatch reentrante del sistema.
type Monitor struct {
	store    *Store
	log      *logger.Logger
	interval time.Duration
	clock    func() time.Time

	mu    sync.Mutex
	armed bool
}

// NewMonitor construye el monitor y lo suscribe al store. El intervalo cero
// o negativo cae al valor por defecto (60 s).
func NewMonitor(st *Store, log *logger.Logger, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	m := &Monitor{
		store:    st,
		log:      log,
		interval: interval,
		clock:    time.Now,
	}
	m.setArmed(st.GetState().Auth.IsAuthenticated)
	st.Subscribe(func(s entity.State) {
		m.setArmed(s.Auth.IsAuthenticated)
	})
	return m
}

// Run ejecuta el bucle de sondeo hasta que el contexto se cancele.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check()
		}
	}
}

func (m *Monitor) setArmed(v bool) {
	m.mu.Lock()
	m.armed = v
	m.mu.Unlock()
}

// check evalúa la expiración una vez. Desarmado es un no-op; con auto-logout
// desactivado en Settings la sesión no se cierra sola aunque haya vencido.
func (m *Monitor) check() {
	m.mu.Lock()
	armed := m.armed
	m.mu.Unlock()
	if !armed {
		return
	}

	st := m.store.GetState()
	if !st.Auth.IsAuthenticated || st.Auth.SessionExpiry == nil {
		return
	}
	if !st.Settings.AutoLogout {
		return
	}
	if m.clock().Before(*st.Auth.SessionExpiry) {
		return
	}

	m.log.Info().Time("expiry", *st.Auth.SessionExpiry).Msg("sesión expirada: logout automático")
	m.store.Dispatch(Logout{})
}
