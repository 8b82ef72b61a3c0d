package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("reading body: %w", New(MalformedRequest, io.ErrUnexpectedEOF))

	assert.True(t, stderrors.Is(err, MalformedRequest))
	assert.False(t, stderrors.Is(err, NotFound))
	assert.True(t, stderrors.Is(err, io.ErrUnexpectedEOF))

	var e *Error
	assert.True(t, stderrors.As(err, &e))
	assert.Equal(t, MalformedRequest, e.Kind)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "empty request", New(EmptyRequest, nil).Error())
	assert.Equal(t, "not found: no such file", Newf(NotFound, "no such file").Error())
	assert.Equal(t, "unknown error kind: 42", Kind(42).Error())
}
