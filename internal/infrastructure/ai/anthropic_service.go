package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa AssistantService.
var _ ports.AssistantService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Eres el asistente de un inventario local de una sola persona.
Recibes la pregunta del usuario y un snapshot JSON con los items y categorías actuales.
Responde en español, en texto plano (sin markdown), de forma concreta y breve:
- Usa solo los datos del snapshot; no inventes artículos ni cantidades.
- Si la pregunta no puede responderse con el snapshot, dilo claramente.
- Cantidades y valores siempre con su unidad o moneda cuando el snapshot la traiga.`
)

// AnthropicService adaptador que implementa AssistantService usando la API REST
// de Anthropic (Claude). Usa net/http de la librería estándar; no requiere SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client

	// keySource, si está configurado, tiene prioridad sobre apiKey. Permite
	// usar la clave guardada en las preferencias sin reconstruir el servicio.
	keySource func() string
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// UseKeySource registra un origen dinámico de API key (p. ej. las
// preferencias); una cadena vacía cae de vuelta a la clave de configuración.
func (s *AnthropicService) UseKeySource(fn func() string) {
	s.keySource = fn
}

func (s *AnthropicService) resolveKey() string {
	if s.keySource != nil {
		if k := s.keySource(); k != "" {
			return k
		}
	}
	return s.apiKey
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Analyze envía la pregunta y el snapshot del inventario a Claude y devuelve
// el análisis en texto libre.
func (s *AnthropicService) Analyze(ctx context.Context, question, snapshot string) (string, error) {
	apiKey := s.resolveKey()
	if apiKey == "" {
		return "", fmt.Errorf("asistente: API key no configurada")
	}

	userContent := fmt.Sprintf("Pregunta: %s\n\nSnapshot del inventario:\n%s", question, snapshot)

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("asistente: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("asistente: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("asistente: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("asistente: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("asistente: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("asistente: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("asistente: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("asistente: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("asistente: Claude devolvió respuesta vacía")
	}

	return anthResp.Content[0].Text, nil
}
