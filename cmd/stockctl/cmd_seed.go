package main

import (
	"github.com/spf13/cobra"
)

var seedYes bool

// seedCmd restablece el catálogo inicial
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reemplaza el inventario por el catálogo inicial",
	Long: `Borra categorías, proveedores, productos e historial de chat y carga
las 7 categorías, 3 proveedores y 12 productos iniciales.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !seedYes {
			cmd.PrintErrln("Se perderán los datos actuales. Repita con --yes para confirmar.")
			return nil
		}
		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		core.Store.Reset()
		closeCore(core, log)

		log.Info().Str("backend", core.Backend.Name).Msg("inventario restablecido")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedYes, "yes", false, "Confirmar el borrado")
}
