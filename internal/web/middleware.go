package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ipHasher turns client addresses into stable, non-reversible tokens for
// the lifetime of the process.
type ipHasher struct {
	salt string
}

func newIPHasher() ipHasher {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("web: failed to generate hashing salt: " + err.Error())
	}
	return ipHasher{salt: hex.EncodeToString(b)}
}

// Hash returns the first 16 hex characters of sha256(ip+salt).
func (h ipHasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func untrackedPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// requestLogger logs one line per request. Static assets are skipped, and
// visitors sending DNT are logged without a client token.
func requestLogger(logger zerolog.Logger, hasher ipHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if untrackedPath(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start))
		if c.GetHeader("DNT") != "1" {
			event = event.Str("client", hasher.Hash(c.ClientIP()))
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("request")
	}
}
