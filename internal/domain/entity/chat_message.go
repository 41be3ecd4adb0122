package entity

import "time"

// Roles posibles de un mensaje de chat.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage una línea del historial de conversación.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
