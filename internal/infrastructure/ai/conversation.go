package ai

import (
	"strings"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// turn mensaje ya normalizado para los proveedores: roles alternados y primer turno del usuario.
type turn struct {
	assistant bool
	text      string
}

// conversation descarta mensajes vacíos y asistentes iniciales, y fusiona turnos consecutivos
// del mismo rol (Anthropic y Gemini exigen alternancia).
func conversation(history []entity.ChatMessage) []turn {
	var out []turn
	for _, m := range history {
		text := strings.TrimSpace(m.Content)
		if text == "" {
			continue
		}
		isAssistant := m.Role == entity.RoleAssistant
		if len(out) == 0 && isAssistant {
			continue
		}
		if n := len(out); n > 0 && out[n-1].assistant == isAssistant {
			out[n-1].text += "\n\n" + text
			continue
		}
		out = append(out, turn{assistant: isAssistant, text: text})
	}
	return out
}
