package repl_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/morefix-stock/internal/application/chatbot"
	"github.com/jhoicas/morefix-stock/internal/application/store"
	"github.com/jhoicas/morefix-stock/internal/interfaces/repl"
)

func newSession(t *testing.T, out *bytes.Buffer) (*repl.Session, *store.Store) {
	t.Helper()
	s := store.New(context.Background(), nil, zerolog.Nop())
	noDelay := func() time.Duration { return 0 }
	return repl.NewSession(chatbot.NewInterpreter(s), out, zerolog.Nop(), repl.WithDelay(noDelay)), s
}

func TestHandle_EjecutaOrden(t *testing.T) {
	var out bytes.Buffer
	sess, s := newSession(t, &out)

	assert.True(t, sess.Handle(context.Background(), "Ajoute 10 claviers Logitech"))

	p, _ := s.GetProductByID("prod-1")
	assert.Equal(t, 25, p.Quantity)
	assert.Contains(t, out.String(), "Stock actuel: 25")
}

func TestHandle_Salir(t *testing.T) {
	var out bytes.Buffer
	sess, _ := newSession(t, &out)

	assert.False(t, sess.Handle(context.Background(), "exit"))
	assert.True(t, sess.Handle(context.Background(), "   "))
	assert.Contains(t, out.String(), "À bientôt")
}

func TestHandle_AsistenteNoConfigurado(t *testing.T) {
	var out bytes.Buffer
	sess, s := newSession(t, &out)

	assert.True(t, sess.Handle(context.Background(), "? combien de claviers ?"))
	assert.Contains(t, out.String(), "pas configuré")
	assert.Empty(t, s.ChatMessages())
}

func TestHandle_ContextoCanceladoDuranteLaPausa(t *testing.T) {
	var out bytes.Buffer
	s := store.New(context.Background(), nil, zerolog.Nop())
	sess := repl.NewSession(chatbot.NewInterpreter(s), &out, zerolog.Nop(),
		repl.WithDelay(func() time.Duration { return time.Hour }))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, sess.Handle(ctx, "Valeur du stock"))
	assert.Empty(t, s.ChatMessages())
}
