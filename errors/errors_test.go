package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := ErrRecordNotFound("abc")
	assert.Equal(t, "[RECORD_NOT_FOUND] Meeting record not found", err.Error())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, "abc", err.Details["record_id"])

	wrapped := ErrStorageFailed("put", stdErrors.New("boom"))
	assert.Equal(t, "[INTEGRATION_STORAGE_FAILED] Storage operation failed: put: boom", wrapped.Error())
}

func TestAppError_UnwrapAndAs(t *testing.T) {
	raw := stdErrors.New("disk full")
	err := fmt.Errorf("save: %w", ErrProcessingFailed(raw))

	var appErr AppError
	assert.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, ErrorCode_TRANSCRIPT_PROCESSING_FAILED, appErr.Code)
	assert.ErrorIs(t, err, raw)
}

func TestAppError_WithDetailDoesNotShareMap(t *testing.T) {
	base := ErrInvalidArgument("bad")
	a := base.WithDetail("field", "format")
	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"field": "format"}, a.Details)
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "TRANSCRIPT_TOO_LARGE", ErrorCode_TRANSCRIPT_TOO_LARGE.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(9999).String())
}
