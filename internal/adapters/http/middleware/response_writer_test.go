package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	t.Parallel()

	sr := newStatusRecorder(httptest.NewRecorder())

	if sr.Status() != http.StatusOK {
		t.Errorf("Status() = %d, want %d", sr.Status(), http.StatusOK)
	}
	if sr.Committed() {
		t.Error("Committed() = true before any write")
	}
}

func TestStatusRecorder_FirstWriteHeaderWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	sr.WriteHeader(http.StatusCreated)
	sr.WriteHeader(http.StatusNotFound)

	if sr.Status() != http.StatusCreated {
		t.Errorf("Status() = %d, want %d", sr.Status(), http.StatusCreated)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("recorder Code = %d, want %d", rec.Code, http.StatusCreated)
	}
	if !sr.Committed() {
		t.Error("Committed() = false after WriteHeader")
	}
}

func TestStatusRecorder_CountsBodyBytes(t *testing.T) {
	t.Parallel()

	sr := newStatusRecorder(httptest.NewRecorder())

	_, _ = sr.Write([]byte(`{"id":`))
	n, err := sr.Write([]byte(`1}`))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Write() = %d, want 2", n)
	}
	if sr.BytesWritten() != 8 {
		t.Errorf("BytesWritten() = %d, want 8", sr.BytesWritten())
	}
	if !sr.Committed() {
		t.Error("Committed() = false after Write")
	}
}

func TestStatusRecorder_FlushCommits(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	sr.Flush()

	if !rec.Flushed {
		t.Error("underlying recorder was not flushed")
	}
	if !sr.Committed() {
		t.Error("Committed() = false after Flush")
	}
}

func TestStatusRecorder_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	if sr.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
