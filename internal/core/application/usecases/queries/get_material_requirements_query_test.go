package queries_test

import (
	"testing"

	"printstream/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetMaterialRequirementsQuery_Valid(t *testing.T) {
	query := queries.NewGetMaterialRequirementsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetMaterialRequirementsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMaterialRequirementsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMaterialRequirementsQueryIsNotConstructed)
}
