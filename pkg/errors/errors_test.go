package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(CodeDependency, cause, "pinging database")

	require.NotNil(t, err)
	assert.Equal(t, CodeDependency, err.Code())
	assert.Equal(t, "pinging database", err.Message())
	assert.ErrorIs(t, err, cause)
}

func TestAsFindsTypedErrorThroughWrapping(t *testing.T) {
	inner := New(CodeNotFound, "order not found")
	outer := fmt.Errorf("loading order: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestChain(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeInternal, cause, "flushing")

	chain := Chain(err)
	require.Len(t, chain, 2)
	assert.Contains(t, chain[0], "flushing")
	assert.Equal(t, "disk full", chain[1])
}
