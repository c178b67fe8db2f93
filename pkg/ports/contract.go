package ports

import (
	"context"
	"testing"

	"github.com/aretw0/assistant/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunContactStoreContract runs a suite of tests to verify that a ContactStore implementation
// adheres to the defined interface contract. The store must start empty.
func RunContactStoreContract(t *testing.T, store ContactStore) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		contacts, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})

	t.Run("Insert and Get", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, "Alice", "123"))

		phone, err := store.Get(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "123", phone)
	})

	t.Run("Insert Existing", func(t *testing.T) {
		err := store.Insert(ctx, "Alice", "456")
		assert.ErrorIs(t, err, domain.ErrContactExists)

		// No overwrite on conflict
		phone, err := store.Get(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "123", phone)
	})

	t.Run("Update", func(t *testing.T) {
		require.NoError(t, store.Update(ctx, "Alice", "999"))

		phone, err := store.Get(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "999", phone)
	})

	t.Run("Update Missing", func(t *testing.T) {
		err := store.Update(ctx, "Bob", "456")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "Bob", nf.Name)

		_, err = store.Get(ctx, "Bob")
		assert.ErrorIs(t, err, domain.ErrNotFound, "Update on a missing name must not insert it")
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := store.Get(ctx, "Carol")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Insert(ctx, "Bob", "456"))

		contacts, err := store.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []domain.Contact{
			{Name: "Alice", Phone: "999"},
			{Name: "Bob", Phone: "456"},
		}, contacts)
	})
}
