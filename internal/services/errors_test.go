package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError_Kinds(t *testing.T) {
	nf := notFoundError("Driver with id %d not found", 42)
	assert.Equal(t, "Driver with id 42 not found", nf.Error())
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsConflict(nf))

	wrapped := fmt.Errorf("handler: %w", conflictError("busy"))
	assert.True(t, IsConflict(wrapped))

	cause := errors.New("disk full")
	st := storageError("failed to create route", cause)
	assert.True(t, IsStorage(st))
	assert.True(t, errors.Is(st, cause))
	assert.Equal(t, "failed to create route: disk full", st.Error())

	// Already classified errors keep their kind.
	assert.True(t, IsValidation(storageError("ignored", validationError("bad"))))

	_, ok := KindOf(cause)
	assert.False(t, ok)
}
