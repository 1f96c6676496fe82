package store

import (
	"sync"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Subscriber recibe un snapshot del estado tras cada transición. Los
// subscribers NO deben despachar de forma síncrona desde el callback (el
// mutex del store está tomado); el monitor de sesión, por ejemplo, solo
// actualiza su flag y despacha desde su propio ticker.
type Subscriber func(entity.State)

// Store es la fachada del estado: expone GetState y Dispatch y cablea
// reducer, persistencia y notificación. Dispatch es síncrono de punta a
// punta: reduce → notificar → persistir. El único escritor es este store;
// el mutex existe porque el monitor de sesión despacha desde su goroutine.
type Store struct {
	mu    sync.Mutex
	state entity.State

	repo  repository.StateRepository
	log   *logger.Logger
	clock func() time.Time

	subs          []Subscriber
	onThemeChange func(theme string)
}

// Option configura el store al construirlo.
type Option func(*Store)

// WithClock inyecta un reloj (tests).
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithThemeHook registra el efecto de presentación disparado cuando
// UPDATE_SETTINGS trae un tema (aplicar/quitar el marcador de modo oscuro
// es asunto de la capa de presentación, no del reducer).
func WithThemeHook(fn func(theme string)) Option {
	return func(s *Store) { s.onThemeChange = fn }
}

// New construye el store con el estado por defecto. Llamar a Restore para
// rehidratar desde el slot persistido.
func New(repo repository.StateRepository, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		state: entity.NewDefaultState(),
		repo:  repo,
		log:   log,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetState devuelve un snapshot profundo del estado actual; mutarlo no
// afecta al store.
func (s *Store) GetState() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registra un subscriber; se notifica tras cada transición.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch aplica la acción: reduce → notifica → persiste. Un fallo de
// persistencia se registra y se traga: el estado en memoria sigue siendo
// correcto aunque el slot se quede atrás.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, a, s.clock())

	snapshot := s.state.Clone()
	for _, fn := range s.subs {
		fn(snapshot)
	}

	if upd, ok := a.(UpdateSettings); ok && upd.Patch.Theme != nil && s.onThemeChange != nil {
		s.onThemeChange(*upd.Patch.Theme)
	}

	if err := s.repo.Save(s.state); err != nil {
		s.log.Warn().Err(err).Msg("persistir estado: fallo transitorio, se continúa en memoria")
	}
}

// Restore rehidrata el estado desde el slot persistido. Si hay una sesión
// recordada sin expirar, re-despacha un Login con el usuario guardado (lo
// que renueva la expiración); en cualquier otro caso el proceso arranca
// con la sesión cerrada. Nunca es fatal: ante un fallo de carga se queda
// el estado por defecto.
func (s *Store) Restore() {
	loaded, err := s.repo.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("cargar estado persistido: se usa el estado por defecto")
		return
	}
	if loaded == nil {
		s.log.Info().Msg("sin estado persistido: primer arranque")
		return
	}

	st := loaded.Clone()
	st.Categories = entity.EnsureDefaultCategory(st.Categories)

	var remembered *entity.User
	if st.Settings.RememberSession &&
		st.Auth.IsAuthenticated && st.Auth.User != nil &&
		st.Auth.SessionExpiry != nil && st.Auth.SessionExpiry.After(s.clock()) {
		u := *st.Auth.User
		remembered = &u
	}
	st.Auth = entity.AuthSession{}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	if remembered != nil {
		s.log.Info().Str("user", remembered.Name).Str("role", remembered.Role).Msg("sesión recordada: se reabre")
		s.Dispatch(Login{User: *remembered})
	}
}
