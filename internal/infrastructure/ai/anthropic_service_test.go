package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/ai"
)

func history(msgs ...string) []entity.ChatMessage {
	out := make([]entity.ChatMessage, 0, len(msgs))
	for i, m := range msgs {
		role := entity.RoleUser
		if i%2 == 1 {
			role = entity.RoleAssistant
		}
		out = append(out, entity.ChatMessage{Role: role, Content: m})
	}
	return out
}

func TestAnthropicService_Complete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"intent\":\"GET_STOCK_VALUE\",\"data\":{},\"message\":\"ok\"}"}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("test-key", "claude-test").WithBaseURL(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	text, err := svc.Complete(ctx, "system prompt", history("valeur du stock", "19 018,53€", "merci"))

	require.NoError(t, err)
	assert.Contains(t, text, "GET_STOCK_VALUE")
	assert.Equal(t, "system prompt", got["system"])
	assert.Equal(t, "claude-test", got["model"])
	msgs, ok := got["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, msgs, 3)
}

func TestAnthropicService_ErrorDeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("bad", "claude-test").WithBaseURL(srv.URL)

	_, err := svc.Complete(context.Background(), "s", history("bonjour"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropicService_SinAPIKey(t *testing.T) {
	svc := ai.NewAnthropicService("", "claude-test")

	_, err := svc.Complete(context.Background(), "s", history("bonjour"))

	assert.Error(t, err)
}

func TestAnthropicService_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	svc := ai.NewAnthropicService("k", "claude-test").WithBaseURL(srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := svc.Complete(ctx, "s", history("bonjour"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type entityMsg struct {
	role    string
	content string
}

type entityMsgs []entityMsg

func (ms entityMsgs) toHistory() []entity.ChatMessage {
	out := make([]entity.ChatMessage, 0, len(ms))
	for _, m := range ms {
		out = append(out, entity.ChatMessage{Role: m.role, Content: m.content})
	}
	return out
}
