package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{ErrAllFieldsRequired, http.StatusBadRequest, "MISSING_FIELDS"},
		{ErrMissingCredentials, http.StatusBadRequest, "MISSING_FIELDS"},
		{ErrUserAlreadyExists, http.StatusBadRequest, "USER_EXISTS"},
		{ErrUserNotFound, http.StatusBadRequest, "USER_NOT_FOUND"},
		{ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{ErrInvalidToken, http.StatusUnauthorized, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.err.Error(), httpErr.Message)
		})
	}
}

func TestMapErrorToHTTP_UnclassifiedDoesNotLeak(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "internal server error", httpErr.Message)
	assert.Equal(t, "INTERNAL_ERROR", httpErr.Code)
}
