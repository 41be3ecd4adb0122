// Package assistant implementa el chat conversacional respaldado por un modelo de lenguaje.
// El modelo solo clasifica la intención; la mutación la aplica siempre el intérprete.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/ports"
	"github.com/jhoicas/morefix-stock/internal/domain"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

const (
	defaultTimeout = 30 * time.Second
	// historyWindow últimos mensajes enviados al modelo.
	historyWindow = 20
)

// Inventory lo que el asistente lee y escribe del store.
type Inventory interface {
	chatbot.Inventory
	ChatMessages() []entity.ChatMessage
}

// Reply respuesta del asistente: intención del modelo, texto a mostrar y resultado de la ejecución.
type Reply struct {
	Intent  string         `json:"intent"`
	Message string         `json:"message"`
	Result  chatbot.Result `json:"result"`
}

// UseCase orquesta prompt, llamada al modelo y ejecución de la intención.
type UseCase struct {
	llm     ports.LLMService
	inv     Inventory
	interp  *chatbot.Interpreter
	timeout time.Duration
	log     zerolog.Logger
}

// NewUseCase construye el caso de uso. Con llm nil el asistente queda deshabilitado
// y Chat devuelve domain.ErrAIUnavailable.
func NewUseCase(llm ports.LLMService, inv Inventory, interp *chatbot.Interpreter, timeout time.Duration, log zerolog.Logger) *UseCase {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UseCase{llm: llm, inv: inv, interp: interp, timeout: timeout, log: log}
}

// Enabled indica si hay un proveedor configurado.
func (uc *UseCase) Enabled() bool { return uc != nil && uc.llm != nil }

// Chat registra el mensaje del usuario, consulta al modelo, ejecuta la intención y registra la respuesta.
func (uc *UseCase) Chat(ctx context.Context, text string) (*Reply, error) {
	if !uc.Enabled() {
		return nil, domain.ErrAIUnavailable
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}

	uc.inv.AddChatMessage(entity.RoleUser, text)
	history := uc.inv.ChatMessages()
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	system := BuildSystemPrompt(uc.inv, uc.interp.LowStockThreshold())

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	raw, err := uc.llm.Complete(ctx, system, history)
	if err != nil {
		uc.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("fallo en la llamada al modelo")
		return nil, fmt.Errorf("assistant: %w", err)
	}

	reply, err := parseReply(raw)
	if err != nil {
		// texto libre sin JSON: se muestra tal cual como conversación
		uc.log.Warn().Err(err).Msg("respuesta del modelo sin JSON válido")
		reply = modelReply{Intent: IntentGeneralQuestion, Message: strings.TrimSpace(raw)}
	}

	intent := reply.toIntent()
	result := uc.interp.Execute(intent)
	message := result.Message
	if result.Success && strings.TrimSpace(reply.Message) != "" {
		message = reply.Message
	}
	if message == "" {
		message = "Je n'ai pas de réponse pour le moment."
	}
	uc.inv.AddChatMessage(entity.RoleAssistant, message)

	uc.log.Info().
		Str("intent", reply.Intent).
		Str("kind", intent.Kind()).
		Bool("success", result.Success).
		Dur("elapsed", time.Since(start)).
		Msg("respuesta del asistente")

	return &Reply{Intent: reply.Intent, Message: message, Result: result}, nil
}
