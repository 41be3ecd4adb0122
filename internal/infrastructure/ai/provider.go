package ai

import (
	"context"
	"fmt"

	"github.com/jhoicas/morefix-stock/internal/application/ports"
	"github.com/jhoicas/morefix-stock/pkg/config"
)

// NewFromConfig construye el adaptador del proveedor configurado en AI_PROVIDER.
// "none" devuelve (nil, nil): el asistente queda deshabilitado.
func NewFromConfig(ctx context.Context, cfg config.AIConfig) (ports.LLMService, error) {
	switch cfg.Provider {
	case "", "none":
		return nil, nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ai: ANTHROPIC_API_KEY no configurada")
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("ai: GEMINI_API_KEY no configurada")
		}
		return wrap(NewGeminiService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel))
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("ai: OPENAI_API_KEY no configurada")
		}
		return wrap(NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL))
	case "ollama":
		return wrap(NewOllamaService(cfg.OllamaURL, cfg.OllamaModel))
	default:
		return nil, fmt.Errorf("ai: proveedor desconocido %q", cfg.Provider)
	}
}

// wrap evita devolver un puntero nil dentro de una interfaz no nil.
func wrap[T ports.LLMService](svc T, err error) (ports.LLMService, error) {
	if err != nil {
		return nil, err
	}
	return svc, nil
}
