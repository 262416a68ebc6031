package queries_test

import (
	"testing"

	"packing/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCartonsQuery_Valid(t *testing.T) {
	query := queries.NewGetCartonsQuery()
	require.NoError(t, query.Validate())
}

func TestGetCartonsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCartonsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCartonsQueryIsNotConstructed)
}
