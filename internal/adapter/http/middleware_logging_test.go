package adapthttp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := &Server{log: zap.New(core)}

	var sawLogger bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = loggerFromContext(r.Context(), nil) != nil
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("OK"))
	})

	req := httptest.NewRequest(http.MethodGet, "/test-path", nil)
	w := httptest.NewRecorder()
	s.loggingMiddleware(next).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if !sawLogger {
		t.Error("request-scoped logger missing from context")
	}
	reqID := w.Header().Get(requestIDHeader)
	if reqID == "" {
		t.Fatal("expected a generated request id")
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/test-path" || fields["status"] != int64(http.StatusTeapot) {
		t.Errorf("unexpected log fields: %v", fields)
	}
	if fields["request_id"] != reqID {
		t.Errorf("request_id = %v; want %q", fields["request_id"], reqID)
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := &Server{log: zap.New(core)}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.loggingMiddleware(http.NotFoundHandler()).ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("response request id = %q", got)
	}
	if got := logs.All()[0].ContextMap()["request_id"]; got != "abc-123" {
		t.Errorf("logged request id = %v", got)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer   ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.header != "" {
			r.Header.Set("Authorization", tt.header)
		}
		got, ok := bearerToken(r)
		if got != tt.want || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"", time.Time{}, false},
		{"2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, loc), false},
		{"2024-01-05T10:00:00Z", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), false},
		{"01/05/2024", time.Time{}, true},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in, loc)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}
