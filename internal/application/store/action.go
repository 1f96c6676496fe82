package store

import "github.com/jhoicas/inventario-local/internal/domain/entity"

// Action es la descripción inmutable de una transición de estado con nombre.
// El conjunto de acciones es cerrado (interfaz sellada): es toda la superficie
// de escritura sobre el estado. Un tipo no reconocido por el reducer devuelve
// el estado de entrada sin cambios, nunca un error.
type Action interface{ isAction() }

// ── Items ─────────────────────────────────────────────────────────────────────

// AddItem añade el item a la colección. La unicidad del id es responsabilidad
// del caller; el reducer no rechaza duplicados.
type AddItem struct{ Item entity.Item }

// UpdateItem reemplaza el registro completo cuyo id coincida (no es un patch).
type UpdateItem struct{ Item entity.Item }

// DeleteItem elimina el item; no-op si no existe.
type DeleteItem struct{ ID string }

// SetItems reemplaza la colección completa (importación/restauración).
type SetItems struct{ Items []entity.Item }

// ── Categorías ────────────────────────────────────────────────────────────────

// AddCategory añade la categoría.
type AddCategory struct{ Category entity.Category }

// UpdateCategory reemplaza la categoría completa cuyo id coincida.
type UpdateCategory struct{ Category entity.Category }

// DeleteCategory elimina la categoría. La protección de "default" y la
// reasignación de items huérfanos las hace el caller, no el reducer.
type DeleteCategory struct{ ID string }

// SetCategories reemplaza la colección completa.
type SetCategories struct{ Categories []entity.Category }

// ── Actividad ─────────────────────────────────────────────────────────────────

// AddActivity antepone el registro al log (más reciente primero).
type AddActivity struct{ Record entity.ActivityRecord }

// SetActivityLog reemplaza el log completo.
type SetActivityLog struct{ Records []entity.ActivityRecord }

// ── Preferencias y sesión ─────────────────────────────────────────────────────

// UpdateSettings hace merge campo a campo del patch sobre las preferencias.
// Es la única acción con un efecto observable adicional: si el patch trae
// tema, el store invoca el hook de presentación tras la reducción.
type UpdateSettings struct{ Patch entity.SettingsPatch }

// Login abre la sesión: usuario autenticado y expiración en now + SessionTTL.
type Login struct{ User entity.User }

// Logout cierra la sesión: limpia usuario y expiración.
type Logout struct{}

// RefreshSession extiende la expiración a now + SessionTTL; no-op sin sesión.
type RefreshSession struct{}

func (AddItem) isAction()        {}
func (UpdateItem) isAction()     {}
func (DeleteItem) isAction()     {}
func (SetItems) isAction()       {}
func (AddCategory) isAction()    {}
func (UpdateCategory) isAction() {}
func (DeleteCategory) isAction() {}
func (SetCategories) isAction()  {}
func (AddActivity) isAction()    {}
func (SetActivityLog) isAction() {}
func (UpdateSettings) isAction() {}
func (Login) isAction()          {}
func (Logout) isAction()         {}
func (RefreshSession) isAction() {}
