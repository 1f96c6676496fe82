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

// Verificar en tiempo de compilación que GeminiService implementa AssistantService.
var _ ports.AssistantService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	geminiSystemPrompt = `Eres el asistente de un inventario local de una sola persona.
Recibes la pregunta del usuario y un snapshot JSON con los items y categorías actuales.
Responde en español, en texto plano, de forma concreta y breve. Usa solo los datos del
snapshot; si la pregunta no puede responderse con ellos, dilo claramente.`
)

// GeminiService adaptador que implementa AssistantService llamando a la API REST
// de Google Gemini. Usa únicamente net/http para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client

	// keySource, si está configurado, tiene prioridad sobre apiKey.
	keySource func() string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// UseKeySource registra un origen dinámico de API key (p. ej. las
// preferencias); una cadena vacía cae de vuelta a la clave de configuración.
func (s *GeminiService) UseKeySource(fn func() string) {
	s.keySource = fn
}

func (s *GeminiService) resolveKey() string {
	if s.keySource != nil {
		if k := s.keySource(); k != "" {
			return k
		}
	}
	return s.apiKey
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Analyze envía la pregunta y el snapshot a Gemini y devuelve el análisis.
func (s *GeminiService) Analyze(ctx context.Context, question, snapshot string) (string, error) {
	apiKey := s.resolveKey()
	if apiKey == "" {
		return "", fmt.Errorf("asistente: API key no configurada")
	}

	userContent := fmt.Sprintf("Pregunta: %s\n\nSnapshot del inventario:\n%s", question, snapshot)

	payload := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: geminiSystemPrompt}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: userContent}}},
		},
		GenerationConfig: genConfig{
			Temperature:     0.2,
			MaxOutputTokens: 1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("asistente: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("asistente: crear HTTP request: %w", err)
	}
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

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("asistente: deserializar respuesta Gemini: %w", err)
	}
	if gemResp.Error != nil {
		return "", fmt.Errorf("asistente: Gemini error %d: %s", gemResp.Error.Code, gemResp.Error.Message)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("asistente: Gemini devolvió respuesta vacía")
	}

	return gemResp.Candidates[0].Content.Parts[0].Text, nil
}
