package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
)

var (
	importIn  string
	importYes bool
)

// importCmd carga un snapshot completo
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Reemplaza el inventario por un snapshot JSON",
	Long: `Carga categorías, proveedores, productos e historial desde un archivo con el
formato de "stockctl export --format snapshot" (el mismo que guardaba la aplicación web).
"--in -" lee de stdin.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if importIn == "" {
			return fmt.Errorf("falta --in")
		}
		if !importYes {
			cmd.PrintErrln("Se perderán los datos actuales. Repita con --yes para confirmar.")
			return nil
		}

		var r io.Reader = cmd.InOrStdin()
		if importIn != "-" {
			f, err := os.Open(importIn)
			if err != nil {
				return fmt.Errorf("abrir %s: %w", importIn, err)
			}
			defer f.Close()
			r = f
		}
		snap, err := readSnapshot(r)
		if err != nil {
			return err
		}

		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		core.Store.Replace(snap)
		closeCore(core, log)

		log.Info().
			Int("categories", len(snap.Categories)).
			Int("suppliers", len(snap.Suppliers)).
			Int("products", len(snap.Products)).
			Msg("inventario importado")
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importIn, "in", "i", "", "Archivo snapshot JSON (\"-\" para stdin)")
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Confirmar el reemplazo")
}

// readSnapshot decodifica un snapshot y rechaza ids vacíos o repetidos dentro de una colección.
func readSnapshot(r io.Reader) (entity.Snapshot, error) {
	var snap entity.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return entity.Snapshot{}, fmt.Errorf("decodificar snapshot: %w", err)
	}
	checks := []struct {
		name string
		ids  []string
	}{
		{"categories", idsOf(snap.Categories, func(c entity.Category) string { return c.ID })},
		{"suppliers", idsOf(snap.Suppliers, func(s entity.Supplier) string { return s.ID })},
		{"products", idsOf(snap.Products, func(p entity.Product) string { return p.ID })},
		{"chatMessages", idsOf(snap.ChatMessages, func(m entity.ChatMessage) string { return m.ID })},
	}
	for _, c := range checks {
		seen := make(map[string]bool, len(c.ids))
		for _, id := range c.ids {
			if id == "" {
				return entity.Snapshot{}, fmt.Errorf("snapshot: %s con id vacío", c.name)
			}
			if seen[id] {
				return entity.Snapshot{}, fmt.Errorf("snapshot: %s con id repetido %q", c.name, id)
			}
			seen[id] = true
		}
	}
	return snap, nil
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
