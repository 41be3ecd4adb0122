package dto

import "time"

// ChatRequest texto libre enviado al intérprete o al asistente.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ChatCommandResponse resultado del intérprete de comandos.
type ChatCommandResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Intent  string `json:"intent,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ChatAssistantResponse respuesta del asistente IA más el resultado ejecutado.
type ChatAssistantResponse struct {
	Intent  string              `json:"intent"`
	Message string              `json:"message"`
	Result  ChatCommandResponse `json:"result"`
}

// ChatMessageResponse un mensaje del historial.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
