package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationIDs_Next(t *testing.T) {
	ids := NewOperationIDs()

	first := ids.Next()
	second := ids.Next()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)

	later, err := uuid.Parse(second)
	require.NoError(t, err)
	assert.Less(t, parsed.String(), later.String())
}

func TestOperationIDs_NextFallsBackToRandom(t *testing.T) {
	ids := &OperationIDs{newV7: func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}}

	parsed, err := uuid.Parse(ids.Next())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
