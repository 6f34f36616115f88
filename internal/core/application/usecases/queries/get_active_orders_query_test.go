package queries_test

import (
	"testing"

	"burritoops/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveOrdersQuery(t *testing.T) {
	t.Run("should be valid when built via constructor", func(t *testing.T) {
		query := queries.NewGetActiveOrdersQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("should reject default constructed query", func(t *testing.T) {
		query := queries.GetActiveOrdersQuery{}

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
	})
}
