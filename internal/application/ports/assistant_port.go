package ports

import "context"

// AssistantService define el puerto de salida hacia el modelo remoto del
// asistente de inventario. Cualquier adaptador (Anthropic, Gemini, mock)
// implementa esta interfaz; la aplicación solo conoce este contrato.
//
// La llamada es fire-and-forget desde la perspectiva del store: su fallo se
// presenta como un mensaje de chat normal y jamás corrompe ni bloquea el
// estado. El contexto debe llevar un timeout.
type AssistantService interface {
	// Analyze recibe la pregunta libre del usuario y un snapshot serializado
	// de items/categorías, y devuelve el análisis en texto libre.
	Analyze(ctx context.Context, question, snapshot string) (string, error)
}
