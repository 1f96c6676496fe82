package entity

import (
	"encoding/json"
	"time"
)

// Tipos válidos de ActivityRecord.
const (
	ActivityCreate = "create"
	ActivityUpdate = "update"
	ActivityDelete = "delete"
	ActivityScan   = "scan"
	ActivitySearch = "search"
)

// ActivityRecord es una entrada del historial de actividad. El log es
// append-only y se mantiene con la entrada más reciente primero.
type ActivityRecord struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"` // create | update | delete | scan | search
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	ActorID     string          `json:"actorId,omitempty"`
	ActorName   string          `json:"actorName,omitempty"`
	Detail      json.RawMessage `json:"detail,omitempty"`
}

// ValidActivityKind valida el tipo contra la enumeración fija.
func ValidActivityKind(k string) bool {
	switch k {
	case ActivityCreate, ActivityUpdate, ActivityDelete, ActivityScan, ActivitySearch:
		return true
	}
	return false
}

// Clone devuelve una copia del registro (payload incluido).
func (r ActivityRecord) Clone() ActivityRecord {
	out := r
	if r.Detail != nil {
		out.Detail = append(json.RawMessage(nil), r.Detail...)
	}
	return out
}
