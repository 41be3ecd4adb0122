package main

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/morefix-stock/internal/interfaces/mcp"
)

// mcpCmd sirve las herramientas del inventario por MCP (stdio)
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Servidor MCP por stdin/stdout",
	Long: `Expone stock_command, stock_snapshot, stock_low, stock_out y stock_value
a clientes MCP. Los logs se escriben en stderr.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCore(core, log)

		tm := mcp.NewToolManager(core.Interpreter, core.Store, log.Component("mcp"))
		s := mcp.NewServer(core.Config.App.Name, version, tm)
		log.Info().Msg("servidor MCP escuchando en stdio")
		return mcp.ServeStdio(s)
	},
}
