package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/morefix-stock/internal/domain/seed"
	"github.com/jhoicas/morefix-stock/internal/infrastructure/memory"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := memory.NewSnapshotRepository()
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)

	want := seed.At(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(want, *got))

	got.Products[0].Quantity = 0
	again, _ := repo.Load(ctx)
	assert.Equal(t, 15, again.Products[0].Quantity)
}
