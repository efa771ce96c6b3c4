package middleware

import "net/http"

// statusRecorder wraps an http.ResponseWriter and remembers the status code
// and the number of body bytes sent. Recovery, OpenTelemetry and Logging all
// read from it after the downstream handler returns.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code and forwards it. Later calls are
// dropped, matching net/http's "superfluous WriteHeader" behaviour without
// the log noise.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.status = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Flush forwards to the wrapped writer when it supports flushing.
func (sr *statusRecorder) Flush() {
	sr.wroteHeader = true
	_ = http.NewResponseController(sr.ResponseWriter).Flush()
}

// Status returns the recorded status code, 200 when the handler never set one.
func (sr *statusRecorder) Status() int { return sr.status }

// BytesWritten returns the number of body bytes written so far.
func (sr *statusRecorder) BytesWritten() int64 { return sr.bytes }

// Committed reports whether the status line has been sent to the client.
func (sr *statusRecorder) Committed() bool { return sr.wroteHeader }

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
