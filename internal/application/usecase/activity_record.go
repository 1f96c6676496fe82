package usecase

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// newActivityRecord construye la entrada de historial para una mutación.
// detail es opcional; si no serializa se omite antes que perder el registro.
func newActivityRecord(actor entity.User, kind, description string, detail any) entity.ActivityRecord {
	rec := entity.ActivityRecord{
		ID:          uuid.New().String(),
		Kind:        kind,
		Description: description,
		Timestamp:   time.Now(),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
	}
	if detail != nil {
		if raw, err := json.Marshal(detail); err == nil {
			rec.Detail = raw
		}
	}
	return rec
}
