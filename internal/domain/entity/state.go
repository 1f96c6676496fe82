package entity

// State es el agregado completo de la aplicación: la única unidad de verdad
// y la única unidad de persistencia. Existe exactamente una instancia por
// proceso, propiedad del store; todo lo demás lee snapshots.
type State struct {
	Items       []Item           `json:"items"`
	Categories  []Category       `json:"categories"`
	ActivityLog []ActivityRecord `json:"activityLog"` // más reciente primero
	Settings    Settings         `json:"settings"`
	Auth        AuthSession      `json:"auth"`
}

// NewDefaultState construye el estado inicial: sin items, categoría "default"
// presente, log vacío, preferencias por defecto y sesión cerrada.
func NewDefaultState() State {
	return State{
		Items:       []Item{},
		Categories:  []Category{DefaultCategory()},
		ActivityLog: []ActivityRecord{},
		Settings:    DefaultSettings(),
		Auth:        AuthSession{},
	}
}

// Clone devuelve una copia profunda del estado.
func (s State) Clone() State {
	out := s
	out.Items = make([]Item, len(s.Items))
	for i, it := range s.Items {
		out.Items[i] = it.Clone()
	}
	out.Categories = append([]Category(nil), s.Categories...)
	out.ActivityLog = make([]ActivityRecord, len(s.ActivityLog))
	for i, r := range s.ActivityLog {
		out.ActivityLog[i] = r.Clone()
	}
	out.Settings = s.Settings.Clone()
	out.Auth = s.Auth.Clone()
	return out
}

// ItemByID busca un item por id; devuelve copia y si existe.
func (s State) ItemByID(id string) (Item, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it.Clone(), true
		}
	}
	return Item{}, false
}

// CategoryByID busca una categoría por id.
func (s State) CategoryByID(id string) (Category, bool) {
	for _, c := range s.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
