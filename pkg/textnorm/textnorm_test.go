package textnorm_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Écrans":                 "ecrans",
		"  Crée une CATÉGORIE  ": "cree une categorie",
		"Câble HDMI 2.1 2m":      "cable hdmi 2.1 2m",
		"Bientôt épuisé":         "bientot epuise",
		"":                       "",
		"déjà":                   "deja",
	}
	for in, want := range cases {
		assert.Equal(t, want, textnorm.Normalize(in), "entrada %q", in)
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	once := textnorm.Normalize("Support écran ergonomique")
	assert.Equal(t, once, textnorm.Normalize(once))
}

func TestFormatEuro_SeparadorDecimalFrances(t *testing.T) {
	out := textnorm.FormatEuro(decimal.RequireFromString("19018.53"))

	assert.Contains(t, out, ",53")
	assert.Contains(t, out, "018")
	assert.NotContains(t, out, ".")
	assert.Equal(t, "€", out[len(out)-len("€"):])
}

func TestFormatEuro_Cero(t *testing.T) {
	assert.Equal(t, "0,00€", textnorm.FormatEuro(decimal.Zero))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "147", textnorm.FormatInt(147))
}
