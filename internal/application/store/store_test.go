package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// repoFalso implementa repository.StateRepository en memoria para los tests.
type repoFalso struct {
	mu      sync.Mutex
	saves   int
	ultimo  *entity.State
	saveErr error

	cargado *entity.State
	loadErr error
}

func (f *repoFalso) Save(st entity.State) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	c := st.Clone()
	f.ultimo = &c
	return f.saveErr
}

func (f *repoFalso) Load() (*entity.State, error) {
	return f.cargado, f.loadErr
}

func relojFijo(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ──────────────────────────────────────────────────────────────────────────────
// Dispatch
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Dispatch_PersisteTrasCadaTransicion(t *testing.T) {
	repo := &repoFalso{}
	st := New(repo, logger.Nop(), WithClock(relojFijo(ahora)))

	st.Dispatch(AddItem{Item: itemDePrueba("i1", entity.DefaultCategoryID, 5)})
	st.Dispatch(AddItem{Item: itemDePrueba("i2", entity.DefaultCategoryID, 3)})

	assert.Equal(t, 2, repo.saves, "cada dispatch debe intentar persistir")
	require.NotNil(t, repo.ultimo)
	assert.Len(t, repo.ultimo.Items, 2)
}

func TestStore_Dispatch_FalloDePersistencia_SeTragaYElEstadoSigueCorrecto(t *testing.T) {
	repo := &repoFalso{saveErr: errors.New("disco lleno")}
	st := New(repo, logger.Nop(), WithClock(relojFijo(ahora)))

	// No debe entrar en pánico ni propagar el error.
	st.Dispatch(AddItem{Item: itemDePrueba("i1", entity.DefaultCategoryID, 5)})

	assert.Len(t, st.GetState().Items, 1, "el estado en memoria queda correcto aunque el slot falle")
}

func TestStore_Dispatch_NotificaConSnapshot(t *testing.T) {
	repo := &repoFalso{}
	st := New(repo, logger.Nop(), WithClock(relojFijo(ahora)))

	var recibidos []entity.State
	st.Subscribe(func(s entity.State) { recibidos = append(recibidos, s) })

	st.Dispatch(AddItem{Item: itemDePrueba("i1", entity.DefaultCategoryID, 5)})

	require.Len(t, recibidos, 1)
	// Mutar el snapshot recibido no afecta al store.
	recibidos[0].Items[0].Name = "mutado"
	assert.Equal(t, "Artículo i1", st.GetState().Items[0].Name)
}

func TestStore_GetState_DevuelveCopiaAislada(t *testing.T) {
	st := New(&repoFalso{}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Dispatch(AddItem{Item: itemDePrueba("i1", entity.DefaultCategoryID, 5)})

	snap := st.GetState()
	snap.Items[0].Name = "mutado"
	snap.Items = nil

	assert.Equal(t, "Artículo i1", st.GetState().Items[0].Name)
}

func TestStore_HookDeTema_SoloConTemaEnElPatch(t *testing.T) {
	var temas []string
	st := New(&repoFalso{}, logger.Nop(),
		WithClock(relojFijo(ahora)),
		WithThemeHook(func(tema string) { temas = append(temas, tema) }),
	)

	oscuro := "dark"
	densidad := "compact"
	st.Dispatch(UpdateSettings{Patch: entity.SettingsPatch{Theme: &oscuro}})
	st.Dispatch(UpdateSettings{Patch: entity.SettingsPatch{Density: &densidad}})

	assert.Equal(t, []string{"dark"}, temas, "el hook solo se dispara cuando el patch trae tema")
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Restore_SinEstadoGuardado_QuedaElDefault(t *testing.T) {
	st := New(&repoFalso{}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	s := st.GetState()
	assert.Empty(t, s.Items)
	_, ok := s.CategoryByID(entity.DefaultCategoryID)
	assert.True(t, ok)
	assert.False(t, s.Auth.IsAuthenticated)
}

func TestStore_Restore_SesionRecordadaVigente_ReabreConLogin(t *testing.T) {
	exp := ahora.Add(2 * time.Hour)
	u := usuarioDePrueba(entity.RoleTeam)
	guardado := entity.NewDefaultState()
	guardado.Auth = entity.AuthSession{IsAuthenticated: true, User: &u, SessionExpiry: &exp}

	repo := &repoFalso{cargado: &guardado}
	st := New(repo, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	s := st.GetState()
	require.True(t, s.Auth.IsAuthenticated)
	require.NotNil(t, s.Auth.User)
	assert.Equal(t, u.ID, s.Auth.User.ID)
	// El replay del LOGIN renueva la expiración a now + 8 h.
	require.NotNil(t, s.Auth.SessionExpiry)
	assert.Equal(t, ahora.Add(SessionTTL), *s.Auth.SessionExpiry)
	assert.Equal(t, 1, repo.saves, "el login re-despachado persiste el estado reabierto")
}

func TestStore_Restore_SesionExpirada_ArrancaDeslogueado(t *testing.T) {
	exp := ahora.Add(-time.Minute)
	u := usuarioDePrueba(entity.RoleAdmin)
	guardado := entity.NewDefaultState()
	guardado.Auth = entity.AuthSession{IsAuthenticated: true, User: &u, SessionExpiry: &exp}

	st := New(&repoFalso{cargado: &guardado}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	s := st.GetState()
	assert.False(t, s.Auth.IsAuthenticated)
	assert.Nil(t, s.Auth.User)
}

func TestStore_Restore_SinRememberSession_NoReabre(t *testing.T) {
	exp := ahora.Add(2 * time.Hour)
	u := usuarioDePrueba(entity.RoleTeam)
	guardado := entity.NewDefaultState()
	guardado.Settings.RememberSession = false
	guardado.Auth = entity.AuthSession{IsAuthenticated: true, User: &u, SessionExpiry: &exp}

	st := New(&repoFalso{cargado: &guardado}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	assert.False(t, st.GetState().Auth.IsAuthenticated)
}

func TestStore_Restore_ReinsertaLaCategoriaPorDefecto(t *testing.T) {
	guardado := entity.NewDefaultState()
	guardado.Categories = []entity.Category{{ID: "tools", Name: "Herramientas", CreatedAt: ahora}}

	st := New(&repoFalso{cargado: &guardado}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	_, ok := st.GetState().CategoryByID(entity.DefaultCategoryID)
	assert.True(t, ok, "la categoría reservada debe reinsertarse al restaurar")
}

func TestStore_Restore_FalloDeCarga_NoEsFatal(t *testing.T) {
	st := New(&repoFalso{loadErr: errors.New("blob corrupto")}, logger.Nop(), WithClock(relojFijo(ahora)))
	st.Restore()

	// Se queda el estado por defecto, sin pánico.
	_, ok := st.GetState().CategoryByID(entity.DefaultCategoryID)
	assert.True(t, ok)
}
