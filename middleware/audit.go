package middleware

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/logentry-manager/models"
	"github.com/blogem/logentry-manager/repositories"
)

// maxAuditBody bounds how much of a request body is copied into the audit log
const maxAuditBody = 4 << 10

// AuditLogger middleware records every POST/PUT/DELETE request with its response status.
// A failed audit write is logged and never affects the response.
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutation(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			body := captureBody(r)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			entry := &models.AuditLogEntry{
				Timestamp:  time.Now().UTC(),
				Method:     r.Method,
				Path:       r.URL.Path,
				Body:       body,
				StatusCode: status,
				UserAgent:  r.UserAgent(),
				IPAddress:  getIPAddress(r),
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), 5*time.Second)
			defer cancel()

			if err := auditRepo.Create(ctx, entry); err != nil {
				logger.Warn("Failed to create audit log",
					zap.String("method", entry.Method),
					zap.String("path", entry.Path),
					zap.Error(err),
				)
			}
		})
	}
}

func isMutation(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodDelete
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// captureBody copies up to maxAuditBody bytes of the request body. Only that
// prefix is buffered; the next handler reads it followed by the unread remainder.
func captureBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	prefix, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBody))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(prefix), r.Body), r.Body}
	if err != nil {
		return ""
	}
	return string(prefix)
}
