package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docufill/docpipe/constants"
)

func TestCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code constants.ErrorCode
	}{
		{"nil", nil, constants.ErrCodeNone},
		{"extraction", NewExtractionError("corrupt pdf", nil), constants.ErrCodeExtraction},
		{"transient", NewTransientServiceError("ocr", errors.New("down")), constants.ErrCodeTransientService},
		{"validation", &ValidationError{Message: "bad date"}, constants.ErrCodeValidation},
		{"merge conflict", &MergeConflictError{ClientID: "c"}, constants.ErrCodeMergeConflict},
		{"wrapped extraction", fmt.Errorf("stage: %w", NewExtractionError("corrupt", nil)), constants.ErrCodeExtraction},
		{"unknown defaults transient", errors.New("who knows"), constants.ErrCodeTransientService},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, CodeFor(tc.err))
		})
	}
}

func TestExtractionError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := NewExtractionError("bad bytes", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad bytes")
}

func TestTransientServiceError_Message(t *testing.T) {
	err := NewTransientServiceError("llm", errors.New("503"))
	assert.Contains(t, err.Error(), "llm unavailable")
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	inner := errors.New("inner")
	wrapped := WrapError(inner, "outer")
	assert.ErrorIs(t, wrapped, inner)
	assert.Contains(t, wrapped.Error(), "outer")
}
