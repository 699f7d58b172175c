package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrInvalidFormat, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{ErrExternalService, http.StatusBadGateway},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "something failed", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"success":false,"code":"`+tt.code+`","message":"something failed"}`, rec.Body.String())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, APIError{Code: ErrInternalServer, Message: "unknown error"}, FromError(nil, ErrInvalidRequest))
	assert.Equal(t, APIError{Code: ErrInvalidRequest, Message: "boom"}, FromError(errors.New("boom"), ErrInvalidRequest))
}
