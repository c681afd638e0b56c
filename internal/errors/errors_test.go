package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTypeFollowsWrapChain(t *testing.T) {
	base := InvalidSurface(2, "door", "count must be positive")
	wrapped := fmt.Errorf("pricing quote q-1: %w", base)

	assert.True(t, IsType(wrapped, TypeInvalidSurface))
	assert.False(t, IsType(wrapped, TypeValidation))
	assert.Equal(t, TypeInvalidSurface, TypeOf(wrapped))
	assert.Equal(t, TypeInternal, TypeOf(fmt.Errorf("plain")))
}

func TestInvalidSurfaceCarriesContext(t *testing.T) {
	err := InvalidSurface(0, "wall", "area is required")

	require.NotNil(t, err.Context)
	assert.Equal(t, 0, err.Context["index"])
	assert.Equal(t, "wall", err.Context["surface_type"])
	assert.Equal(t, "[INVALID_SURFACE] surface 0 (wall): area is required", err.Error())
}

func TestOracleUnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: timeout")
	err := Oracle("openai", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "openai", err.Context["provider"])
}

func TestIsOfTypeLeavesStdlibIsAlone(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Config("failed to write rate card", cause)

	assert.True(t, err.IsOfType(TypeConfig))
	assert.False(t, err.IsOfType(TypeValidation))

	// errors.Is matches by identity along the chain, not by type
	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, err))
	assert.False(t, stderrors.Is(err, New(TypeConfig, "failed to write rate card")))
}
