package api

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/airport/internal/cache"
	"github.com/Domenick1991/airport/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader   = "X-Request-ID"
	idempotencyHeader = "Idempotency-Key"
	pendingKeyTTL     = 30 * time.Second
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one slog line per request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(c.Request.Context(), level, "http request",
			slog.String("request_id", c.GetString(requestIDHeader)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}

// Instrument records request latency under the matched route pattern.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

type IdempotencyStore interface {
	ReserveIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error)
	IdempotentResponse(ctx context.Context, key string) (*cache.StoredResponse, error)
	SaveIdempotentResponse(ctx context.Context, key string, resp cache.StoredResponse, ttl time.Duration) error
	ReleaseIdempotencyKey(ctx context.Context, key string) error
}

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated Idempotency-Key.
// Keys are scoped to the authenticated user. A request still in flight under
// the same key gets 409. Only successful responses are remembered; failures
// release the key so the client can retry, and so does a panicking handler. Requests without the header, or
// arriving while the store is unavailable, pass through untouched.
func Idempotency(store IdempotencyStore, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(idempotencyHeader)
		if raw == "" {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := fmt.Sprintf("%d:%s", principal(c).UserID, raw)

		reserved, err := store.ReserveIdempotencyKey(ctx, key, pendingKeyTTL)
		if err != nil {
			slog.WarnContext(ctx, "idempotency store unavailable", "error", err)
			c.Next()
			return
		}
		if !reserved {
			stored, err := store.IdempotentResponse(ctx, key)
			switch {
			case err != nil:
				writeError(c, err)
			case stored == nil:
				c.JSON(http.StatusConflict, gin.H{"error": "a request with this idempotency key is in progress"})
			default:
				c.Header("Idempotent-Replayed", "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
			}
			c.Abort()
			return
		}

		// The request context may already be cancelled once the client has its answer.
		bg := context.WithoutCancel(ctx)
		defer func() {
			if r := recover(); r != nil {
				if err := store.ReleaseIdempotencyKey(bg, key); err != nil {
					slog.WarnContext(ctx, "failed to release idempotency key", "error", err)
				}
				panic(r)
			}
		}()

		rec := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := store.ReleaseIdempotencyKey(bg, key); err != nil {
				slog.WarnContext(ctx, "failed to release idempotency key", "error", err)
			}
			return
		}
		resp := cache.StoredResponse{Status: status, ContentType: rec.Header().Get("Content-Type"), Body: rec.body.Bytes()}
		if err := store.SaveIdempotentResponse(bg, key, resp, ttl); err != nil {
			slog.WarnContext(ctx, "failed to store idempotent response", "error", err)
		}
	}
}
