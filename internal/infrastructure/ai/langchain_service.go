package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jhoicas/morefix-stock/internal/application/ports"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// Verificar en tiempo de compilación que LangChainService implementa LLMService.
var _ ports.LLMService = (*LangChainService)(nil)

// LangChainService adaptador sobre langchaingo; cubre OpenAI (o compatibles) y Ollama local.
type LangChainService struct {
	llm      llms.Model
	provider string
}

// NewOpenAIService modelo OpenAI; baseURL vacío usa el endpoint oficial.
func NewOpenAIService(apiKey, model, baseURL string) (*LangChainService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("AI: OPENAI_API_KEY no configurado")
	}
	opts := []openai.Option{
		openai.WithModel(model),
		openai.WithToken(apiKey),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente OpenAI: %w", err)
	}
	return &LangChainService{llm: llm, provider: "openai"}, nil
}

// NewOllamaService modelo servido por Ollama; serverURL vacío usa localhost:11434.
func NewOllamaService(serverURL, model string) (*LangChainService, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("AI: crear cliente Ollama: %w", err)
	}
	return &LangChainService{llm: llm, provider: "ollama"}, nil
}

// NewLangChainService envuelve cualquier llms.Model (útil en tests con modelos falsos).
func NewLangChainService(llm llms.Model, provider string) *LangChainService {
	return &LangChainService{llm: llm, provider: provider}
}

// Complete traduce el historial a mensajes langchaingo y devuelve el contenido de la primera opción.
func (s *LangChainService) Complete(ctx context.Context, system string, history []entity.ChatMessage) (string, error) {
	turns := conversation(history)
	if len(turns) == 0 {
		return "", fmt.Errorf("AI: historial vacío")
	}
	messages := make([]llms.MessageContent, 0, len(turns)+1)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	for _, t := range turns {
		role := llms.ChatMessageTypeHuman
		if t.assistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, t.text))
	}

	resp, err := s.llm.GenerateContent(ctx, messages, llms.WithTemperature(0.2), llms.WithJSONMode())
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: %s: %w", s.provider, err)
	}
	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", fmt.Errorf("AI: %s devolvió respuesta vacía", s.provider)
	}
	return resp.Choices[0].Content, nil
}
