package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/morefix-stock/internal/application/assistant"
	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/dto"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// ChatLog historial de conversación. Lo implementa *store.Store.
type ChatLog interface {
	ChatMessages() []entity.ChatMessage
}

// ChatHandler expone el intérprete de comandos y el asistente IA.
type ChatHandler struct {
	interp    *chatbot.Interpreter
	assistant *assistant.UseCase
	log       ChatLog
}

// NewChatHandler construye el handler. assistant puede ser nil (responde 503).
func NewChatHandler(interp *chatbot.Interpreter, asst *assistant.UseCase, log ChatLog) *ChatHandler {
	return &ChatHandler{interp: interp, assistant: asst, log: log}
}

// Command godoc
// @Summary      Ejecutar una orden en francés
// @Description  Interpreta el texto con las reglas del chatbot y aplica la acción al inventario.
// @Description  Las órdenes no reconocidas devuelven 200 con success=false.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Orden en texto libre"
// @Success      200   {object}  dto.ChatCommandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat/command [post]
func (h *ChatHandler) Command(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	return c.JSON(toCommandResponse(h.interp.Chat(in.Message)))
}

// Assistant godoc
// @Summary      Conversar con el asistente IA
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje"
// @Success      200   {object}  dto.ChatAssistantResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/chat/assistant [post]
func (h *ChatHandler) Assistant(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	reply, err := h.assistant.Chat(c.UserContext(), in.Message)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ChatAssistantResponse{
		Intent:  reply.Intent,
		Message: reply.Message,
		Result:  toCommandResponse(reply.Result),
	})
}

// Messages historial completo en orden cronológico.
func (h *ChatHandler) Messages(c *fiber.Ctx) error {
	msgs := h.log.ChatMessages()
	out := make([]dto.ChatMessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, dto.ChatMessageResponse{ID: m.ID, Role: m.Role, Content: m.Content, Timestamp: m.Timestamp})
	}
	return c.JSON(out)
}

func toCommandResponse(r chatbot.Result) dto.ChatCommandResponse {
	return dto.ChatCommandResponse{Success: r.Success, Message: r.Message, Action: r.Action, Intent: r.Intent, Data: r.Data}
}
