package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingLogger captures log calls so tests can inspect the attributes the
// middleware reports.
type recordingLogger struct {
	entries []logEntry
}

type logEntry struct {
	msg  string
	args []any
}

func (l *recordingLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *recordingLogger) Info(ctx context.Context, msg string, args ...any) {
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *recordingLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *recordingLogger) Error(ctx context.Context, msg string, err error, args ...any) {
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *recordingLogger) GetSlogLogger() *slog.Logger { return slog.Default() }

// loggedStatus pulls the "status" attribute out of the "completed" entry.
func (l *recordingLogger) loggedStatus(t *testing.T) int {
	t.Helper()

	for _, e := range l.entries {
		if e.msg != "completed" {
			continue
		}
		for i := 0; i+1 < len(e.args); i += 2 {
			if e.args[i] == "status" {
				status, ok := e.args[i+1].(int)
				require.True(t, ok, "status attribute is not an int")
				return status
			}
		}
	}
	t.Fatal("no completed entry with a status attribute")
	return 0
}

func TestLogging_ImplicitOKStatus(t *testing.T) {
	log := &recordingLogger{}
	m := NewMiddleware(log)

	// Handler writes a body without ever calling WriteHeader.
	h := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, http.StatusOK, log.loggedStatus(t))
}

func TestLogging_EmptyHandlerStatus(t *testing.T) {
	log := &recordingLogger{}
	m := NewMiddleware(log)

	// Handler neither writes a header nor a body; net/http answers 200.
	h := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, log.loggedStatus(t))
}

func TestLogging_ExplicitStatus(t *testing.T) {
	log := &recordingLogger{}
	m := NewMiddleware(log)

	h := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, http.StatusNotFound, log.loggedStatus(t))
}
