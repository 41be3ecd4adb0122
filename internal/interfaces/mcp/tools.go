// Package mcp expone el inventario como herramientas MCP (Model Context Protocol) sobre stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

// Snapshotter devuelve una copia del estado completo. Lo implementa *store.Store.
type Snapshotter interface {
	Snapshot() entity.Snapshot
}

// ToolManager registra y atiende las herramientas del inventario.
type ToolManager struct {
	interp *chatbot.Interpreter
	snap   Snapshotter
	log    zerolog.Logger
}

// NewToolManager crea el gestor de herramientas.
func NewToolManager(interp *chatbot.Interpreter, snap Snapshotter, log zerolog.Logger) *ToolManager {
	return &ToolManager{interp: interp, snap: snap, log: log}
}

// RegisterTools registra las herramientas en el servidor MCP.
func (tm *ToolManager) RegisterTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("stock_command",
		mcp.WithDescription("Exécute une commande d'inventaire en français (ex: \"Ajoute 10 claviers Logitech\", \"Valeur du stock\")"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("La commande en texte libre"),
		),
	), tm.handleCommand)

	s.AddTool(mcp.NewTool("stock_snapshot",
		mcp.WithDescription("Retourne l'état complet de l'inventaire (catégories, fournisseurs, produits, historique) en JSON"),
		mcp.WithBoolean("include_chat",
			mcp.Description("Inclure l'historique de conversation (défaut: false)"),
		),
	), tm.handleSnapshot)

	s.AddTool(mcp.NewTool("stock_low",
		mcp.WithDescription("Liste les produits en stock faible (0 < quantité <= seuil)"),
		mcp.WithNumber("threshold",
			mcp.Description("Seuil de stock faible (défaut: configuration)"),
		),
	), tm.handleLow)

	s.AddTool(mcp.NewTool("stock_out",
		mcp.WithDescription("Liste les produits en rupture de stock"),
	), tm.handleOut)

	s.AddTool(mcp.NewTool("stock_value",
		mcp.WithDescription("Valeur totale du stock et nombre d'unités"),
	), tm.handleValue)
}

func (tm *ToolManager) handleCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text ne peut pas être vide"), nil
	}
	res := tm.interp.Chat(text)
	tm.log.Info().Str("intent", res.Intent).Bool("success", res.Success).Msg("orden MCP")
	return mcp.NewToolResultText(res.Message), nil
}

func (tm *ToolManager) handleSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := tm.snap.Snapshot()
	if !request.GetBool("include_chat", false) {
		snap.ChatMessages = nil
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Impossible de sérialiser l'inventaire: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (tm *ToolManager) handleLow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	threshold := int(request.GetFloat("threshold", 0))
	return resultWithData(tm.interp.Execute(chatbot.LowStock{Threshold: threshold}))
}

func (tm *ToolManager) handleOut(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return resultWithData(tm.interp.Execute(chatbot.OutOfStock{}))
}

func (tm *ToolManager) handleValue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return resultWithData(tm.interp.Execute(chatbot.StockValue{}))
}

// resultWithData devuelve el mensaje legible seguido de los datos en JSON.
func resultWithData(res chatbot.Result) (*mcp.CallToolResult, error) {
	if res.Data == nil {
		return mcp.NewToolResultText(res.Message), nil
	}
	b, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(res.Message), nil
	}
	return mcp.NewToolResultText(res.Message + "\n\n" + string(b)), nil
}
