package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/infrastructure/ai"
	"github.com/jhoicas/morefix-stock/pkg/config"
)

func TestNewFromConfig_None(t *testing.T) {
	llm, err := ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "none"})

	require.NoError(t, err)
	assert.Nil(t, llm)
}

func TestNewFromConfig_AnthropicSinKey(t *testing.T) {
	_, err := ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "anthropic"})

	assert.ErrorContains(t, err, "ANTHROPIC_API_KEY")
}

func TestNewFromConfig_Anthropic(t *testing.T) {
	llm, err := ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "k", AnthropicModel: "m"})

	require.NoError(t, err)
	assert.IsType(t, &ai.AnthropicService{}, llm)
}

func TestNewFromConfig_Desconocido(t *testing.T) {
	_, err := ai.NewFromConfig(context.Background(), config.AIConfig{Provider: "mistral"})

	assert.Error(t, err)
}
