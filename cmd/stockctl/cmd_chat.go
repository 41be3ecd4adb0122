package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/morefix-stock/internal/interfaces/repl"
)

// chatCmd abre el chat interactivo
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactivo con el inventario",
	Long: `Abre un prompt donde se escriben órdenes en francés ("Ajoute 5 Clavier Corsair",
"Quels produits sont en rupture ?"). Las líneas que empiezan por "?" van al asistente IA
si AI_PROVIDER está configurado. "exit" termina la sesión.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCore(core, log)

		session := repl.NewSession(core.Interpreter, os.Stdout, log.Component("repl"),
			repl.WithAssistant(core.Assistant))
		session.Start(cmd.Context())
		return nil
	},
}

// execCmd ejecuta una sola orden
var execCmd = &cobra.Command{
	Use:   "exec <orden>",
	Short: "Ejecuta una orden en francés y muestra la respuesta",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCore(core, log)

		res := core.Interpreter.Chat(strings.Join(args, " "))
		cmd.Println(res.Message)
		return nil
	},
}
