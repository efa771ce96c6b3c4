package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/task-service/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func attrMap(headers http.Header) map[string]string {
	attrs := middleware.RedactHeaders(headers)
	out := make(map[string]string, len(attrs))
	for _, a := range attrs {
		out[a.Key] = a.Value.String()
	}
	return out
}

func TestRedactHeaders_RedactsSensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		value  string
	}{
		{header: "Authorization", value: "Bearer secret-token"},
		{header: "X-Api-Key", value: "key-123"},
		{header: "Cookie", value: "session=abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()

			got := attrMap(http.Header{tt.header: {tt.value}})
			if got[tt.header] != redactedValue {
				t.Errorf("%s = %q, want %q", tt.header, got[tt.header], redactedValue)
			}
		})
	}
}

func TestRedactHeaders_KeepsTaskRequestHeaders(t *testing.T) {
	t.Parallel()

	got := attrMap(http.Header{
		"Content-Type":     {"application/json"},
		"Accept":           {"application/json", "application/problem+json"},
		"X-Request-Id":     {"req-1"},
		"X-Correlation-Id": {"corr-1"},
		"Authorization":    {"Bearer secret"},
	})

	want := map[string]string{
		"Content-Type":     "application/json",
		"Accept":           "application/json,application/problem+json",
		"X-Request-Id":     "req-1",
		"X-Correlation-Id": "corr-1",
		"Authorization":    redactedValue,
	}
	if len(got) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestRedactHeaders_EmptyHeaders(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
