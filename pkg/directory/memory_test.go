package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/churchconnect/edge/pkg/directory"
	"github.com/churchconnect/edge/pkg/tenant"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	dir := directory.NewMemory(
		tenant.Tenant{Slug: "stmarys", Name: "St Mary's", Active: true},
		tenant.Tenant{Slug: "closed", Name: "Closed Chapel", Active: false},
	)
	require.Equal(t, 2, dir.Len())

	t.Run("active tenant is returned", func(t *testing.T) {
		t.Parallel()
		got, err := dir.FindActiveBySlug(context.Background(), "stmarys")
		require.NoError(t, err)
		require.Equal(t, "St Mary's", got.Name)
	})

	t.Run("inactive tenant is not found", func(t *testing.T) {
		t.Parallel()
		got, err := dir.FindActiveBySlug(context.Background(), "closed")
		require.ErrorIs(t, err, tenant.ErrNotFound)
		require.Nil(t, got)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		t.Parallel()
		_, err := dir.FindActiveBySlug(context.Background(), "ghost")
		require.ErrorIs(t, err, tenant.ErrNotFound)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		t.Parallel()
		got, err := dir.FindActiveBySlug(context.Background(), "stmarys")
		require.NoError(t, err)
		got.Name = "changed"

		again, err := dir.FindActiveBySlug(context.Background(), "stmarys")
		require.NoError(t, err)
		require.Equal(t, "St Mary's", again.Name)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := dir.FindActiveBySlug(ctx, "stmarys")
		require.ErrorIs(t, err, context.Canceled)
	})
}
