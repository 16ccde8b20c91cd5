package res

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorResMessage(t *testing.T) {
	cause := errors.New("connection refused 10.0.0.4:27017")
	tests := []struct {
		name    string
		err     *ErrorRes
		status  int
		message string
	}{
		{"validation", NewValidationError(errors.New("Invalid id")), http.StatusBadRequest, "Invalid id"},
		{"not found", NewNotFoundError(errors.New("Subject not found")), http.StatusNotFound, "Subject not found"},
		{"internal", NewInternalError(cause), http.StatusInternalServerError, INTERNAL_MESSAGE},
		{"unavailable", NewUnavailableError(cause), http.StatusServiceUnavailable, UNAVAILABLE_MESSAGE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.status)
			}
			if got := tt.err.Message(); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}
}

func TestErrorResUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError(cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected ErrorRes to unwrap to its cause")
	}
}
