package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/blogem/logentry-manager/models"
	"github.com/blogem/logentry-manager/repositories/mocks"
)

func echoHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(status)
		w.Write(body)
	})
}

func TestAuditLoggerRecordsMutations(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)

	var recorded *models.AuditLogEntry
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.AuditLogEntry")).
		RunAndReturn(func(_ context.Context, entry *models.AuditLogEntry) error {
			recorded = entry
			return nil
		}).Once()

	handler := AuditLogger(repo, zap.NewNop())(echoHandler(http.StatusCreated))

	req := httptest.NewRequest(http.MethodPost, "/api/logentries", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	req.Header.Set("User-Agent", "audit-test")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, `{"name":"Alice"}`, rec.Body.String(), "body must still reach the handler")

	require.NotNil(t, recorded)
	assert.Equal(t, http.MethodPost, recorded.Method)
	assert.Equal(t, "/api/logentries", recorded.Path)
	assert.Equal(t, `{"name":"Alice"}`, recorded.Body)
	assert.Equal(t, http.StatusCreated, recorded.StatusCode)
	assert.Equal(t, "10.0.0.1", recorded.IPAddress)
	assert.Equal(t, "audit-test", recorded.UserAgent)
	assert.False(t, recorded.Timestamp.IsZero())
}

func TestAuditLoggerSkipsReads(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	handler := AuditLogger(repo, zap.NewNop())(echoHandler(http.StatusOK))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logentries", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuditLoggerFailureDoesNotAffectResponse(t *testing.T) {
	repo := mocks.NewMockAuditRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("database is locked")).Once()

	core, logs := observer.New(zapcore.WarnLevel)
	handler := AuditLogger(repo, zap.New(core))(echoHandler(http.StatusOK))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/logentries/1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("Failed to create audit log").Len())
}

func TestGetIPAddress(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.RemoteAddr = "192.168.1.5:51234"
	assert.Equal(t, "192.168.1.5", getIPAddress(req))

	req.Header.Set("X-Real-IP", "172.16.0.9")
	assert.Equal(t, "172.16.0.9", getIPAddress(req))
}

// countingReader records how many bytes were pulled from the client body
type countingReader struct {
	r    io.Reader
	read int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += n
	return n, err
}

func TestCaptureBodyBuffersOnlyAuditPrefix(t *testing.T) {
	const size = 8 << 20
	src := &countingReader{r: strings.NewReader(strings.Repeat("b", size))}
	req := httptest.NewRequest(http.MethodPost, "/", src)

	captured := captureBody(req)
	assert.Len(t, captured, maxAuditBody)
	assert.LessOrEqual(t, src.read, maxAuditBody, "body beyond the audit copy must stay unread")

	n, err := io.Copy(io.Discard, req.Body)
	require.NoError(t, err)
	assert.EqualValues(t, size, n)
	require.NoError(t, req.Body.Close())
}

func TestCaptureBodyTruncates(t *testing.T) {
	long := strings.Repeat("a", maxAuditBody+100)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(long))

	captured := captureBody(req)
	assert.Len(t, captured, maxAuditBody)

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Len(t, rest, len(long))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := chimiddleware.RequestID(RequestLogger(zap.New(core))(echoHandler(http.StatusNotFound)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/logentries/9", nil))

	entries := logs.FilterMessage("Request completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/api/logentries/9", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
}
