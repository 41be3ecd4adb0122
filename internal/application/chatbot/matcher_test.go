package chatbot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/domain/seed"
	"github.com/jhoicas/morefix-stock/pkg/textnorm"
)

func TestFindProductByName_SimetriaSeed(t *testing.T) {
	products := seed.Default().Products
	for _, p := range products {
		got, ok := chatbot.FindProductByName(products, textnorm.Normalize(p.Name))
		require.True(t, ok, p.Name)
		assert.Equal(t, p.ID, got.ID)
	}
}

func TestFindProductByName_Bidireccional(t *testing.T) {
	products := seed.Default().Products

	sub, ok := chatbot.FindProductByName(products, "rtx 4070")
	require.True(t, ok)
	assert.Equal(t, "prod-7", sub.ID)

	super, ok := chatbot.FindProductByName(products, "la NVIDIA RTX 3060 de la vitrine")
	require.True(t, ok)
	assert.Equal(t, "prod-8", super.ID)
}

func TestFindProductByName_PrimeraCoincidencia(t *testing.T) {
	products := seed.Default().Products

	p, ok := chatbot.FindProductByName(products, "logitech")

	require.True(t, ok)
	assert.Equal(t, "prod-1", p.ID)
}

func TestFindProductByName_FragmentoVacio(t *testing.T) {
	products := seed.Default().Products

	_, ok := chatbot.FindProductByName(products, "   ")

	assert.False(t, ok)
}

func TestFindCategoryAndSupplier(t *testing.T) {
	s := seed.Default()

	c, ok := chatbot.FindCategoryByName(s.Categories, "CLAVIERS")
	require.True(t, ok)
	assert.Equal(t, "cat-1", c.ID)

	sp, ok := chatbot.FindSupplierByName(s.Suppliers, "infopro")
	require.True(t, ok)
	assert.Equal(t, "sup-2", sp.ID)

	_, ok = chatbot.FindCategoryByName(s.Categories, "Écrans")
	assert.False(t, ok)
}
