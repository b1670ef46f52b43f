package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAINotConfigured(t *testing.T) {
	err := AINotConfigured()

	assert.Equal(t, ErrAINotConfigured, err.Code)
	assert.Contains(t, err.Error(), "API key no configurada")
	assert.Contains(t, err.Hint, "GROQ_API_KEY")
}

func TestAIRequestFailed(t *testing.T) {
	cause := errors.New("connection refused")
	err := AIRequestFailed("HTTP 502", cause)

	assert.Equal(t, ErrAIRequestFailed, err.Code)
	assert.Contains(t, err.Error(), "AI request failed")
	assert.Contains(t, err.Error(), "HTTP 502")

	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}

func TestAIRequestFailed_NilCause(t *testing.T) {
	err := AIRequestFailed("unknown error", nil)

	assert.Equal(t, ErrAIRequestFailed, err.Code)
	assert.Nil(t, err.Unwrap())
}

func TestGenerationFailed(t *testing.T) {
	err := GenerationFailed(errors.New("boom"))

	assert.Equal(t, ErrGenerationFailed, err.Code)
	assert.Contains(t, err.Error(), GenerationFailedMessage)
	assert.Contains(t, err.Error(), "boom")
}

func TestInvalidField(t *testing.T) {
	err := InvalidField("detailLevel", "not a number")

	assert.Equal(t, ErrInvalidField, err.Code)
	assert.Contains(t, err.Error(), "detailLevel")
	assert.Contains(t, err.Hint, "objective")
}

func TestArchitectError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &ArchitectError{
			Code:    ErrExportFailed,
			Message: "test message",
		}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &ArchitectError{
			Code:    ErrExportFailed,
			Message: "test message",
			Cause:   cause,
		}
		assert.Equal(t, "test message: root cause", err.Error())
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("improving: %w", AITimeout(errors.New("deadline")))

	assert.True(t, Is(err, ErrAITimeout))
	assert.False(t, Is(err, ErrAIRequestFailed))
	assert.False(t, Is(errors.New("plain"), ErrAITimeout))
	assert.False(t, Is(nil, ErrAITimeout))
}

func TestNew(t *testing.T) {
	err := New(ErrUnknownEngine, "test message", "test hint")

	assert.Equal(t, ErrUnknownEngine, err.Code)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test hint", err.HintText())
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrClipboardFailed, "wrapper message", "wrapper hint", cause)

	assert.Equal(t, ErrClipboardFailed, err.Code)
	assert.Equal(t, "wrapper message", err.Message)
	assert.Equal(t, "wrapper hint", err.Hint)
	assert.Equal(t, cause, err.Cause)
}
