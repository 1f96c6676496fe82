package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/ports"
	"github.com/jhoicas/inventario-local/internal/application/store"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// fallbackAnswer respuesta de cortesía cuando el modelo remoto no está
// disponible. El asistente nunca propaga el fallo como error HTTP.
const fallbackAnswer = "El asistente no está disponible en este momento. Intenta de nuevo en unos minutos."

// analyzeTimeout tope de espera por el modelo remoto.
const analyzeTimeout = 10 * time.Second

// AssistantUseCase chat de análisis de inventario sobre un modelo externo.
// El estado viaja como snapshot JSON de solo lectura: el asistente nunca
// muta el store más allá de su entrada en el historial.
type AssistantUseCase struct {
	st  *store.Store
	svc ports.AssistantService
	log *logger.Logger
}

// NewAssistantUseCase construye el caso de uso.
func NewAssistantUseCase(st *store.Store, svc ports.AssistantService, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{st: st, svc: svc, log: log}
}

// Chat responde una pregunta libre sobre el inventario actual.
func (uc *AssistantUseCase) Chat(ctx context.Context, actor entity.User, message string) (*dto.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	uc.st.Dispatch(store.AddActivity{Record: newActivityRecord(
		actor, entity.ActivitySearch,
		"Consultó al asistente de inventario",
		map[string]string{"message": message},
	)})

	snapshot, err := uc.snapshotJSON()
	if err != nil {
		uc.log.Error().Err(err).Msg("asistente: serializar snapshot")
		return &dto.ChatResponse{Answer: fallbackAnswer}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, analyzeTimeout)
	defer cancel()

	answer, err := uc.svc.Analyze(ctx, message, snapshot)
	if err != nil {
		uc.log.Warn().Err(err).Msg("asistente: el modelo remoto falló, se responde el mensaje de cortesía")
		return &dto.ChatResponse{Answer: fallbackAnswer}, nil
	}
	return &dto.ChatResponse{Answer: answer, FromModel: true}, nil
}

// snapshotJSON arma el contexto que ve el modelo: items y categorías, sin
// preferencias ni sesión.
func (uc *AssistantUseCase) snapshotJSON() (string, error) {
	state := uc.st.GetState()
	payload := struct {
		Items      []entity.Item     `json:"items"`
		Categories []entity.Category `json:"categories"`
	}{Items: state.Items, Categories: state.Categories}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
