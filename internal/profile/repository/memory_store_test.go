package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

func sampleProfile() domain.Profile {
	return domain.Profile{
		Name:     "Asha Rao",
		Email:    "asha@example.com",
		Phone:    "+91 98765 43210",
		Location: "Pune",
		Skills:   []string{"Go", "PostgreSQL"},
		Links:    domain.Links{GitHub: "https://github.com/asha", LinkedIn: "https://linkedin.com/in/asha"},
	}
}

func mustPatch(t *testing.T, body string) domain.Patch {
	t.Helper()
	patch, err := domain.ParsePatch([]byte(body))
	require.NoError(t, err)
	return patch
}

// exerciseStore runs the behaviour every backend shares.
func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get missing profile", func(t *testing.T) {
		_, err := store.Get(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "u1", sampleProfile()))
		got, err := store.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, sampleProfile(), got)
	})

	t.Run("merge keeps untouched fields", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "u2", sampleProfile()))
		require.NoError(t, store.Merge(ctx, "u2", mustPatch(t, `{"phone":"555-0100","links":{"github":"https://github.com/asha-rao"}}`)))

		got, err := store.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, "Asha Rao", got.Name)
		assert.Equal(t, "555-0100", got.Phone)
		assert.Equal(t, "https://github.com/asha-rao", got.Links.GitHub)
		assert.Equal(t, "https://linkedin.com/in/asha", got.Links.LinkedIn)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, got.Skills)
	})

	t.Run("merge creates missing profile", func(t *testing.T) {
		require.NoError(t, store.Merge(ctx, "u3", mustPatch(t, `{"name":"Ravi"}`)))
		got, err := store.Get(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", got.Name)
		assert.Empty(t, got.Email)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "u4", sampleProfile()))
		require.NoError(t, store.Set(ctx, "u4", domain.Profile{Name: "Only Name"}))
		got, err := store.Get(ctx, "u4")
		require.NoError(t, err)
		assert.Equal(t, domain.Profile{Name: "Only Name"}, got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Get(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "u1", sampleProfile()), context.Canceled)
}
