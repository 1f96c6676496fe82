package dto

// ChatRequest pregunta libre para el asistente de inventario.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse respuesta del asistente. Cuando el modelo remoto falla,
// Answer trae un mensaje de cortesía y FromModel queda en false: el fallo
// se presenta como chat normal, nunca como error del store.
type ChatResponse struct {
	Answer    string `json:"answer"`
	FromModel bool   `json:"fromModel"`
}
