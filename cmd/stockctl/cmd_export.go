package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	infrapdf "github.com/jhoicas/morefix-stock/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/morefix-stock/internal/infrastructure/xlsx"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd exporta el estado del stock
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta el estado del stock (json, yaml, xlsx, pdf, snapshot)",
	Long: `Genera el reporte de inventario. Sin --out se escribe en
inventaire-AAAAMMDD.<formato>; "--out -" escribe en stdout.
El formato snapshot vuelca el estado completo, legible por "stockctl import".`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		core, log, err := openCore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeCore(core, log)

		uc := report.NewUseCase(core.Store,
			infrapdf.NewMarotoReportGenerator(core.Config.App.Name),
			infraxlsx.NewExcelReportGenerator(),
			core.Config.Store.LowStockThreshold,
		)
		data, filename, err := renderExport(cmd.Context(), uc, core.Store, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		path := exportOut
		if path == "" {
			path = filename
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", path, err)
		}
		log.Info().Str("file", path).Int("bytes", len(data)).Msg("reporte exportado")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Formato: json, yaml, xlsx, pdf, snapshot")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Archivo de salida (\"-\" para stdout)")
}

// snapshotter fuente del volcado completo del inventario.
type snapshotter interface {
	Snapshot() entity.Snapshot
}

// renderExport produce el contenido y el nombre de archivo sugerido para el formato pedido.
func renderExport(ctx context.Context, uc *report.UseCase, src snapshotter, format string) ([]byte, string, error) {
	switch strings.ToLower(format) {
	case "snapshot":
		b, err := json.MarshalIndent(src.Snapshot(), "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("snapshot: %w", err)
		}
		return append(b, '\n'), fmt.Sprintf("morefix-store-%s.json", time.Now().UTC().Format("20060102")), nil
	case "json":
		rep := uc.Build()
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("reporte json: %w", err)
		}
		return append(b, '\n'), exportName(rep, "json"), nil
	case "yaml", "yml":
		rep := uc.Build()
		b, err := yaml.Marshal(rep)
		if err != nil {
			return nil, "", fmt.Errorf("reporte yaml: %w", err)
		}
		return b, exportName(rep, "yaml"), nil
	case "xlsx":
		return uc.XLSX(ctx)
	case "pdf":
		return uc.PDF(ctx)
	default:
		return nil, "", fmt.Errorf("formato desconocido %q", format)
	}
}

func exportName(rep report.Report, ext string) string {
	return fmt.Sprintf("inventaire-%s.%s", rep.GeneratedAt.Format("20060102"), ext)
}

