package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getmockd/magemock/pkg/httputil"
	"github.com/getmockd/magemock/pkg/requestlog"
)

// loggingMiddleware logs every request with its status and duration and
// records the REST calls in the request log.
type loggingMiddleware struct {
	handler  http.Handler
	log      *slog.Logger
	requests requestlog.Logger
}

func newLoggingMiddleware(handler http.Handler, log *slog.Logger, requests requestlog.Logger) *loggingMiddleware {
	return &loggingMiddleware{handler: handler, log: log, requests: requests}
}

// ServeHTTP implements the http.Handler interface.
func (m *loggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusCapturingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	record := m.requests != nil && !strings.HasPrefix(r.URL.Path, AdminPrefix+"/")
	var body []byte
	if record && r.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(r.Body, httputil.MaxBodySize+1))
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))
	}

	m.handler.ServeHTTP(sw, r)

	if record {
		m.requests.Log(&requestlog.Entry{
			Timestamp:      start,
			Method:         r.Method,
			Path:           r.URL.Path,
			QueryString:    r.URL.RawQuery,
			Body:           requestlog.Truncate(body),
			BodySize:       len(body),
			RemoteAddr:     r.RemoteAddr,
			ResponseStatus: sw.statusCode,
			DurationMs:     int(time.Since(start).Milliseconds()),
		})
	}

	level := slog.LevelInfo
	if sw.statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	m.log.Log(r.Context(), level, "request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", sw.statusCode,
		"duration", time.Since(start),
	)
}

// statusCapturingResponseWriter wraps http.ResponseWriter to capture the status code.
type statusCapturingResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
}

// WriteHeader captures the status code before writing the header.
func (w *statusCapturingResponseWriter) WriteHeader(code int) {
	if !w.headerWritten {
		w.statusCode = code
		w.headerWritten = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// Write captures status code if not already written (implicit 200 OK).
func (w *statusCapturingResponseWriter) Write(b []byte) (int, error) {
	if !w.headerWritten {
		w.statusCode = http.StatusOK
		w.headerWritten = true
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController support.
func (w *statusCapturingResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
