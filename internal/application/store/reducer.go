package store

import (
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// SessionTTL duración de una sesión autenticada desde el LOGIN o el último refresh.
const SessionTTL = 8 * time.Hour

// Reduce es la función de transición pura y total del estado: (estado, acción,
// ahora) → estado siguiente. Nunca muta el estado de entrada; las ramas que
// cambian algo trabajan sobre una copia profunda y las que no, devuelven el
// valor recibido tal cual. El reloj entra como parámetro para que la función
// sea determinista en tests.
func Reduce(s entity.State, a Action, now time.Time) entity.State {
	switch a := a.(type) {
	case AddItem:
		next := s.Clone()
		next.Items = append(next.Items, a.Item.Clone())
		return next

	case UpdateItem:
		for i, it := range s.Items {
			if it.ID == a.Item.ID {
				next := s.Clone()
				next.Items[i] = a.Item.Clone()
				return next
			}
		}
		return s

	case DeleteItem:
		for i, it := range s.Items {
			if it.ID == a.ID {
				next := s.Clone()
				next.Items = append(next.Items[:i], next.Items[i+1:]...)
				return next
			}
		}
		return s

	case SetItems:
		next := s.Clone()
		next.Items = make([]entity.Item, len(a.Items))
		for i, it := range a.Items {
			next.Items[i] = it.Clone()
		}
		return next

	case AddCategory:
		next := s.Clone()
		next.Categories = append(next.Categories, a.Category)
		return next

	case UpdateCategory:
		for i, c := range s.Categories {
			if c.ID == a.Category.ID {
				next := s.Clone()
				next.Categories[i] = a.Category
				return next
			}
		}
		return s

	case DeleteCategory:
		for i, c := range s.Categories {
			if c.ID == a.ID {
				next := s.Clone()
				next.Categories = append(next.Categories[:i], next.Categories[i+1:]...)
				return next
			}
		}
		return s

	case SetCategories:
		next := s.Clone()
		next.Categories = append([]entity.Category{}, a.Categories...)
		return next

	case AddActivity:
		next := s.Clone()
		next.ActivityLog = append([]entity.ActivityRecord{a.Record.Clone()}, next.ActivityLog...)
		return next

	case SetActivityLog:
		next := s.Clone()
		next.ActivityLog = make([]entity.ActivityRecord, len(a.Records))
		for i, r := range a.Records {
			next.ActivityLog[i] = r.Clone()
		}
		return next

	case UpdateSettings:
		next := s.Clone()
		next.Settings = next.Settings.Merge(a.Patch)
		return next

	case Login:
		next := s.Clone()
		u := a.User
		exp := now.Add(SessionTTL)
		next.Auth = entity.AuthSession{
			IsAuthenticated: true,
			User:            &u,
			SessionExpiry:   &exp,
		}
		return next

	case Logout:
		if !s.Auth.IsAuthenticated && s.Auth.User == nil && s.Auth.SessionExpiry == nil {
			return s
		}
		next := s.Clone()
		next.Auth = entity.AuthSession{}
		return next

	case RefreshSession:
		if !s.Auth.IsAuthenticated {
			return s
		}
		next := s.Clone()
		exp := now.Add(SessionTTL)
		next.Auth.SessionExpiry = &exp
		return next

	default:
		// Acción desconocida: estado sin cambios, sin error.
		return s
	}
}
