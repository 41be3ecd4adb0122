package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/morefix-stock/internal/application/report"
	"github.com/jhoicas/morefix-stock/internal/application/store"
)

func newReportUC(t *testing.T) (*report.UseCase, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), nil, zerolog.Nop())
	return report.NewUseCase(s, nil, nil, 5), s
}

func render(t *testing.T, format string) ([]byte, string, error) {
	t.Helper()
	uc, s := newReportUC(t)
	return renderExport(context.Background(), uc, s, format)
}

func TestRenderExport_JSON(t *testing.T) {
	b, name, err := render(t, "json")
	require.NoError(t, err)
	assert.Regexp(t, `^inventaire-\d{8}\.json$`, name)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "MoreFix - État du stock", got["title"])
	assert.Equal(t, "19018.53", got["total_value"])
	assert.Len(t, got["rows"], 12)
}

func TestRenderExport_YAML(t *testing.T) {
	b, name, err := render(t, "YAML")
	require.NoError(t, err)
	assert.Regexp(t, `\.yaml$`, name)

	var got struct {
		TotalUnits int    `yaml:"total_units"`
		TotalValue string `yaml:"total_value"`
		OutOfStock int    `yaml:"out_of_stock"`
	}
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, 147, got.TotalUnits)
	assert.Equal(t, "19018.53", got.TotalValue)
	assert.Equal(t, 2, got.OutOfStock)
}

func TestRenderExport_FormatoDesconocido(t *testing.T) {
	_, _, err := render(t, "csv")
	assert.Error(t, err)
}

func TestRenderExport_PDFSinRenderer(t *testing.T) {
	_, _, err := render(t, "pdf")
	assert.Error(t, err)
}

func TestRenderExport_SnapshotSeLeeConImport(t *testing.T) {
	uc, s := newReportUC(t)
	s.AddCategory("Écrans", "Moniteurs")

	b, name, err := renderExport(context.Background(), uc, s, "snapshot")
	require.NoError(t, err)
	assert.Regexp(t, `^morefix-store-\d{8}\.json$`, name)

	snap, err := readSnapshot(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(s.Snapshot(), snap))

	other := store.New(context.Background(), nil, zerolog.Nop())
	other.Replace(snap)
	assert.Len(t, other.Categories(), 8)
	assert.Len(t, other.Products(), 12)
}

func TestReadSnapshot_Invalido(t *testing.T) {
	cases := map[string]string{
		"json roto":   `{"categories": [`,
		"id vacío":    `{"categories": [{"id": "", "name": "GPU"}]}`,
		"id repetido": `{"products": [{"id": "p1", "price": "1"}, {"id": "p1", "price": "2"}]}`,
		"chat sin id": `{"chatMessages": [{"role": "user", "content": "hola"}]}`,
	}
	for name, in := range cases {
		_, err := readSnapshot(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestReadSnapshot_FormatoWeb(t *testing.T) {
	in := `{"categories":[{"id":"cat-1","name":"Claviers","description":"","createdAt":"2024-01-15T10:00:00Z"}],
"suppliers":[],"products":[{"id":"prod-1","name":"Clavier","description":"","categoryId":"cat-1","supplierId":"sup-9",
"price":129.99,"quantity":15,"sku":"KB-1","createdAt":"2024-01-15T10:00:00Z"}],"chatMessages":[]}`

	snap, err := readSnapshot(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "cat-1", snap.Products[0].CategoryID)
	assert.Equal(t, "129.99", snap.Products[0].Price.String())
}
