// Package repl ofrece el chat interactivo de inventario en la terminal (go-prompt).
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	prompt "github.com/c-bata/go-prompt"
	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/application/assistant"
	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/domain"
)

// Las líneas que empiezan con assistantPrefix van al asistente IA en lugar del intérprete.
const assistantPrefix = "?"

// quickCommands atajos mostrados por el autocompletado.
var quickCommands = []prompt.Suggest{
	{Text: "Quels produits sont en rupture ?", Description: "Ruptures"},
	{Text: "Stock faible", Description: "Produits à réapprovisionner"},
	{Text: "Valeur du stock", Description: "Valeur totale et unités"},
	{Text: "Liste les produits", Description: "Tous les produits"},
	{Text: "Liste les catégories", Description: "Toutes les catégories"},
	{Text: "aide", Description: "Commandes disponibles"},
	{Text: "exit", Description: "Quitter"},
}

// Session estado del chat interactivo.
type Session struct {
	interp    *chatbot.Interpreter
	assistant *assistant.UseCase
	out       io.Writer
	log       zerolog.Logger
	delay     func() time.Duration
}

// Option personaliza la sesión.
type Option func(*Session)

// WithAssistant habilita las preguntas al asistente con el prefijo "?".
func WithAssistant(uc *assistant.UseCase) Option {
	return func(s *Session) { s.assistant = uc }
}

// WithDelay reemplaza la pausa de "reflexión" antes de cada respuesta (0 la desactiva).
func WithDelay(d func() time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// NewSession construye la sesión. Por defecto espera entre 500 y 1000 ms antes de responder.
func NewSession(interp *chatbot.Interpreter, out io.Writer, log zerolog.Logger, opts ...Option) *Session {
	s := &Session{
		interp: interp,
		out:    out,
		log:    log,
		delay: func() time.Duration {
			return 500*time.Millisecond + rand.N(500*time.Millisecond)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle procesa una línea. Devuelve false cuando el usuario pide salir.
func (s *Session) Handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "":
		return true
	case "exit", "quit", "bye":
		fmt.Fprintln(s.out, "À bientôt !")
		return false
	}

	if d := s.delay(); d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return false
		}
	}

	if q, ok := strings.CutPrefix(line, assistantPrefix); ok {
		s.ask(ctx, strings.TrimSpace(q))
		return true
	}
	res := s.interp.Chat(line)
	fmt.Fprintln(s.out, res.Message)
	return true
}

func (s *Session) ask(ctx context.Context, q string) {
	reply, err := s.assistant.Chat(ctx, q)
	switch {
	case errors.Is(err, domain.ErrAIUnavailable):
		fmt.Fprintln(s.out, "L'assistant IA n'est pas configuré (AI_PROVIDER).")
	case err != nil:
		s.log.Error().Err(err).Msg("asistente")
		fmt.Fprintln(s.out, "L'assistant IA n'a pas pu répondre. Réessayez plus tard.")
	default:
		fmt.Fprintln(s.out, reply.Message)
	}
}

// Start muestra el mensaje de bienvenida y corre el prompt hasta "exit" o fin de entrada.
func (s *Session) Start(ctx context.Context) {
	fmt.Fprintln(s.out, chatbot.WelcomeMessage)
	if s.assistant.Enabled() {
		fmt.Fprintln(s.out, "Préfixez votre message par \"?\" pour interroger l'assistant IA.")
	}

	done := false
	p := prompt.New(
		func(in string) {
			if done {
				return
			}
			if !s.Handle(ctx, in) {
				done = true
			}
		},
		completer,
		prompt.OptionPrefix("morefix> "),
		prompt.OptionTitle("MoreFix Stock"),
		prompt.OptionSetExitCheckerOnInput(func(string, bool) bool { return done }),
	)
	p.Run()
}

func completer(d prompt.Document) []prompt.Suggest {
	return prompt.FilterFuzzy(quickCommands, d.TextBeforeCursor(), true)
}
