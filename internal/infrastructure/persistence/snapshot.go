package persistence

import (
	"encoding/json"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// rawSnapshot separa el blob en sus campos de primer nivel para poder
// decodificar cada uno por su cuenta (recuperación parcial).
type rawSnapshot struct {
	Items       json.RawMessage `json:"items"`
	Categories  json.RawMessage `json:"categories"`
	ActivityLog json.RawMessage `json:"activityLog"`
	Settings    json.RawMessage `json:"settings"`
	Auth        json.RawMessage `json:"auth"`
}

// encodeState serializa el estado al layout persistido (JSON, fechas ISO-8601).
// Con rememberSession desactivado el subárbol de auth se escribe deslogueado:
// la sesión nunca sobrevive a un reinicio salvo opt-in explícito.
func encodeState(st entity.State) ([]byte, error) {
	if !st.Settings.RememberSession {
		st.Auth = entity.AuthSession{}
	}
	return json.Marshal(st)
}

// decodeState reconstruye el estado campo a campo: un campo malformado cae a
// su valor por defecto sin invalidar el resto (nunca todo-o-nada). Al final
// se reparan los invariantes: la categoría reservada siempre presente y
// auth.user no nulo solo con isAuthenticated en true.
func decodeState(data []byte, log *logger.Logger) entity.State {
	st := entity.NewDefaultState()

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn().Err(err).Msg("blob de estado ilegible: se usa el estado por defecto")
		return st
	}

	if len(raw.Items) > 0 {
		var items []entity.Item
		if err := json.Unmarshal(raw.Items, &items); err != nil {
			log.Warn().Err(err).Msg("campo items malformado: se descarta")
		} else {
			st.Items = items
		}
	}

	if len(raw.Categories) > 0 {
		var categories []entity.Category
		if err := json.Unmarshal(raw.Categories, &categories); err != nil {
			log.Warn().Err(err).Msg("campo categories malformado: se descarta")
		} else {
			st.Categories = categories
		}
	}

	if len(raw.ActivityLog) > 0 {
		var records []entity.ActivityRecord
		if err := json.Unmarshal(raw.ActivityLog, &records); err != nil {
			log.Warn().Err(err).Msg("campo activityLog malformado: se descarta")
		} else {
			st.ActivityLog = records
		}
	}

	if len(raw.Settings) > 0 {
		// Decodificar sobre los defaults: los campos ausentes los conservan.
		settings := st.Settings
		if err := json.Unmarshal(raw.Settings, &settings); err != nil {
			log.Warn().Err(err).Msg("campo settings malformado: se descarta")
		} else {
			st.Settings = settings
		}
	}

	if len(raw.Auth) > 0 {
		var auth entity.AuthSession
		if err := json.Unmarshal(raw.Auth, &auth); err != nil {
			log.Warn().Err(err).Msg("campo auth malformado: se descarta")
		} else {
			st.Auth = auth
		}
	}

	st.Categories = entity.EnsureDefaultCategory(st.Categories)
	if st.Auth.User == nil || !st.Auth.IsAuthenticated {
		st.Auth = entity.AuthSession{}
	}
	return st
}
