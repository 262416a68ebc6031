package queries_test

import (
	"testing"

	"packing/internal/core/application/usecases/queries"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackSnapshotQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPackSnapshotQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetPackSnapshotQuery_EmptyPackID(t *testing.T) {
	_, err := queries.NewGetPackSnapshotQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPackSnapshotQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackSnapshotQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackSnapshotQueryIsNotConstructed)
}
