package setdiff_test

import (
	"testing"

	"sales/internal/pkg/setdiff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type persistedItem struct {
	id        int64
	productID int64
}

type submittedItem struct {
	id        int64
	productID int64
	kilos     string
}

func persistedKey(i persistedItem) int64 { return i.id }
func submittedKey(i submittedItem) int64 { return i.id }

func TestDiff(t *testing.T) {
	t.Run("should classify deletes creates and updates", func(t *testing.T) {
		// Given
		old := []persistedItem{{id: 1, productID: 10}, {id: 2, productID: 20}, {id: 3, productID: 30}}
		next := []submittedItem{{id: 3, productID: 31, kilos: "5"}, {id: 0, productID: 40}, {id: 1, productID: 10, kilos: "2"}}

		// When
		result, err := setdiff.Diff(old, next, persistedKey, submittedKey)

		// Then
		require.NoError(t, err)
		assert.Equal(t, []persistedItem{{id: 2, productID: 20}}, result.ToDelete)
		assert.Equal(t, []submittedItem{{id: 0, productID: 40}}, result.ToCreate)
		require.Len(t, result.ToUpdate, 2)
		assert.Equal(t, persistedItem{id: 3, productID: 30}, result.ToUpdate[0].Old)
		assert.Equal(t, "5", result.ToUpdate[0].New.kilos)
		assert.Equal(t, int64(31), result.ToUpdate[0].New.productID)
		assert.Equal(t, persistedItem{id: 1, productID: 10}, result.ToUpdate[1].Old)
	})

	t.Run("should partition every input element exactly once", func(t *testing.T) {
		// Given
		old := []persistedItem{{id: 1}, {id: 2}, {id: 4}, {id: 8}}
		next := []submittedItem{{id: 2}, {id: 3}, {id: 8}, {id: 16}, {id: 32}}

		// When
		result, err := setdiff.Diff(old, next, persistedKey, submittedKey)

		// Then
		require.NoError(t, err)
		assert.Len(t, old, len(result.ToDelete)+len(result.ToUpdate))
		assert.Len(t, next, len(result.ToCreate)+len(result.ToUpdate))
	})

	t.Run("should only update when diffing a collection against itself", func(t *testing.T) {
		// Given
		items := []persistedItem{{id: 5}, {id: 6}, {id: 7}}

		// When
		result, err := setdiff.Diff(items, items, persistedKey, persistedKey)

		// Then
		require.NoError(t, err)
		assert.Empty(t, result.ToDelete)
		assert.Empty(t, result.ToCreate)
		assert.Len(t, result.ToUpdate, len(items))
		assert.False(t, result.IsEmpty())
	})

	t.Run("should create everything when old is empty", func(t *testing.T) {
		next := []submittedItem{{productID: 1}, {productID: 2}}

		result, err := setdiff.Diff(
			nil,
			next,
			persistedKey,
			func(i submittedItem) int64 { return i.productID },
		)

		require.NoError(t, err)
		assert.Empty(t, result.ToDelete)
		assert.Empty(t, result.ToUpdate)
		assert.Equal(t, next, result.ToCreate)
	})

	t.Run("should delete everything when new is empty", func(t *testing.T) {
		old := []persistedItem{{id: 1}, {id: 2}}

		result, err := setdiff.Diff(old, []submittedItem{}, persistedKey, submittedKey)

		require.NoError(t, err)
		assert.Equal(t, old, result.ToDelete)
		assert.Empty(t, result.ToCreate)
		assert.Empty(t, result.ToUpdate)
	})

	t.Run("should report an empty result for two empty inputs", func(t *testing.T) {
		result, err := setdiff.Diff([]persistedItem{}, []submittedItem{}, persistedKey, submittedKey)

		require.NoError(t, err)
		assert.True(t, result.IsEmpty())
	})

	t.Run("should compare composite keys field by field", func(t *testing.T) {
		type key struct {
			id        int64
			productID int64
		}
		old := []persistedItem{{id: 1, productID: 10}}
		next := []submittedItem{{id: 1, productID: 11}}

		result, err := setdiff.Diff(
			old,
			next,
			func(i persistedItem) key { return key{i.id, i.productID} },
			func(i submittedItem) key { return key{i.id, i.productID} },
		)

		require.NoError(t, err)
		assert.Len(t, result.ToDelete, 1)
		assert.Len(t, result.ToCreate, 1)
		assert.Empty(t, result.ToUpdate)
	})

	t.Run("should reject duplicate keys in old collection", func(t *testing.T) {
		old := []persistedItem{{id: 1}, {id: 1}}

		_, err := setdiff.Diff(old, []submittedItem{{id: 1}}, persistedKey, submittedKey)

		require.ErrorIs(t, err, setdiff.ErrDuplicateKey)
		assert.Contains(t, err.Error(), "old collection")
	})

	t.Run("should reject duplicate keys in new collection", func(t *testing.T) {
		next := []submittedItem{{id: 2}, {id: 2}}

		_, err := setdiff.Diff([]persistedItem{{id: 2}}, next, persistedKey, submittedKey)

		require.ErrorIs(t, err, setdiff.ErrDuplicateKey)
		assert.Contains(t, err.Error(), "new collection")
	})
}
