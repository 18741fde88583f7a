package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spark-chat/backend/internal/store"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := st.Get(ctx, store.KeyChats)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Set(ctx, store.KeyChats, "[]"))
	val, err := st.Get(ctx, store.KeyChats)
	require.NoError(t, err)
	assert.Equal(t, "[]", val)

	// A second write fully replaces the value.
	require.NoError(t, st.Set(ctx, store.KeyChats, `[{"id":"a"}]`))
	val, err = st.Get(ctx, store.KeyChats)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, val)

	require.NoError(t, st.Delete(ctx, store.KeyChats))
	_, err = st.Get(ctx, store.KeyChats)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, st.Delete(ctx, "absent"))
}
