package ports

import (
	"context"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// LLMService define el puerto de salida hacia los modelos de lenguaje.
// Cualquier adaptador (Anthropic, Gemini, OpenAI, Ollama, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación
// solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// Complete envía el prompt de sistema y el historial (roles user/assistant) y devuelve
	// el texto crudo de la respuesta. El contexto debe llevar un timeout.
	Complete(ctx context.Context, system string, history []entity.ChatMessage) (string, error)
}
