package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"standardized not found", ErrCodeNotFound, http.StatusNotFound},
		{"standardized conflict", ErrCodeAlreadyExists, http.StatusConflict},
		{"standardized gone", ErrCodeGone, http.StatusGone},
		{"domain invalid credentials", "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"domain account locked", "ACCOUNT_LOCKED", http.StatusForbidden},
		{"domain student not found", "STUDENT_NOT_FOUND", http.StatusNotFound},
		{"domain roll number exists", "ROLL_NUMBER_EXISTS", http.StatusConflict},
		{"domain self delete", "SELF_DELETE", http.StatusBadRequest},
		{"domain gone", "GONE", http.StatusGone},
		{"unknown code falls back to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	t.Run("maps shared codes", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
		assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("ALREADY_EXISTS"))
	})

	t.Run("keeps domain codes as-is", func(t *testing.T) {
		assert.Equal(t, "INVALID_CREDENTIALS", NormalizeErrorCode("INVALID_CREDENTIALS"))
		assert.Equal(t, "GONE", NormalizeErrorCode("GONE"))
	})

	t.Run("keeps standardized codes as-is", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, NormalizeErrorCode(ErrCodeInternal))
	})
}

func TestNewValidationErrorResponse(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-1", []ValidationDetail{
		{Field: "email", Message: "Invalid email format"},
	})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 1)
}
