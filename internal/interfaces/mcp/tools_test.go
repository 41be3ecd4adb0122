package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/store"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

func newTools(t *testing.T) (*ToolManager, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), nil, zerolog.Nop())
	return NewToolManager(chatbot.NewInterpreter(s), s, zerolog.Nop()), s
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestNewServer_RegistraHerramientas(t *testing.T) {
	tm, _ := newTools(t)

	s := NewServer("morefix-test", "0.0.0", tm)

	assert.NotNil(t, s)
}

func TestStockCommand_AplicaOrden(t *testing.T) {
	tm, s := newTools(t)

	res, err := tm.handleCommand(context.Background(), request(map[string]any{"text": "Change le stock de la RTX 3060 à 5"}))

	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "5")
	p, _ := s.GetProductByID("prod-8")
	assert.Equal(t, 5, p.Quantity)
	assert.Len(t, s.ChatMessages(), 2)
}

func TestStockCommand_SinTexto(t *testing.T) {
	tm, _ := newTools(t)

	res, err := tm.handleCommand(context.Background(), request(map[string]any{}))

	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestStockSnapshot_SinHistorialPorDefecto(t *testing.T) {
	tm, s := newTools(t)
	s.AddChatMessage(entity.RoleUser, "hola")

	res, err := tm.handleSnapshot(context.Background(), request(nil))
	require.NoError(t, err)

	var snap entity.Snapshot
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &snap))
	assert.Len(t, snap.Products, 12)
	assert.Empty(t, snap.ChatMessages)

	res, err = tm.handleSnapshot(context.Background(), request(map[string]any{"include_chat": true}))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &snap))
	assert.Len(t, snap.ChatMessages, 1)
}

func TestStockLowOutValue(t *testing.T) {
	tm, _ := newTools(t)

	res, err := tm.handleLow(context.Background(), request(map[string]any{"threshold": float64(2)}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "NVIDIA RTX 3060")
	assert.NotContains(t, text(t, res), "Intel Core i7-13700K")

	res, err = tm.handleOut(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "Souris Razer DeathAdder")

	res, err = tm.handleValue(context.Background(), request(nil))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "147")
}
