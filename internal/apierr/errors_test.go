package apierr_test

// Coverage Notes:
// - Every sentinel the generator packages export is mapped; wrapping is
//   exercised with fmt.Errorf("%s: %w", ...) the way handlers wrap them.

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/alnah/go-promptgen/internal/apierr"
	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// ---------------------------------------------------------------------------
// TestStatus - sentinel to HTTP status mapping
// ---------------------------------------------------------------------------

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", apierr.ErrNotFound, http.StatusNotFound},
		{"unknown template", template.ErrUnknown, http.StatusNotFound},
		{"missing field", form.ErrMissingField, http.StatusUnprocessableEntity},
		{"invalid choice", form.ErrInvalidChoice, http.StatusUnprocessableEntity},
		{"bad request", apierr.ErrBadRequest, http.StatusBadRequest},
		{"invalid input", request.ErrInvalidInput, http.StatusBadRequest},
		{"invalid tool", tool.ErrInvalid, http.StatusBadRequest},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := apierr.Status(tt.err); got != tt.want {
				t.Errorf("Status(%v) = %d, want %d", tt.err, got, tt.want)
			}
			if tt.err == nil {
				return
			}
			wrapped := fmt.Errorf("%s: %w", "handler context", tt.err)
			if got := apierr.Status(wrapped); got != tt.want {
				t.Errorf("Status(wrapped %v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMessage - client errors keep detail, server errors stay generic
// ---------------------------------------------------------------------------

func TestMessage(t *testing.T) {
	t.Parallel()

	client := fmt.Errorf("linkedin: %q: %w", "topic", form.ErrMissingField)
	if got := apierr.Message(client); got != client.Error() {
		t.Errorf("Message(client) = %q, want %q", got, client.Error())
	}

	server := errors.New("open /etc/secret: permission denied")
	if got := apierr.Message(server); got != "internal error" {
		t.Errorf("Message(server) = %q, want generic message", got)
	}

	if got := apierr.Message(nil); got != "" {
		t.Errorf("Message(nil) = %q, want empty", got)
	}
}
