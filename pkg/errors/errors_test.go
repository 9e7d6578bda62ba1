package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageErrorCarriesCause(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewStorageError("dynamodb put meal failed").WithCause(cause)

	assert.Equal(t, "dynamodb put meal failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestGetAppErrorThroughWrapping(t *testing.T) {
	inner := NewValidationError("calories must be greater than or equal to 0")
	wrapped := fmt.Errorf("create meal: %w", inner)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrorTypeValidation, got.Type)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)

	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestIsType(t *testing.T) {
	assert.True(t, IsType(NewStorageError("x"), ErrorTypeStorage))
	assert.False(t, IsType(NewStorageError("x"), ErrorTypeValidation))
	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeStorage))
}
