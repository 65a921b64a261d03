package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type loggingConfig struct {
	logger     *slog.Logger
	ignorePath []string
}

type LoggerOption func(*loggingConfig)

func WithIgnorePath(paths []string) LoggerOption {
	return func(c *loggingConfig) {
		c.ignorePath = paths
	}
}

// NewLogging returns a request logging middleware. Requests ending in 4xx
// are logged at warn level, 5xx at error level.
func NewLogging(logger *slog.Logger, options ...LoggerOption) gin.HandlerFunc {
	conf := &loggingConfig{logger: logger}
	for _, option := range options {
		option(conf)
	}

	ignore := make(map[string]struct{}, len(conf.ignorePath))
	for _, path := range conf.ignorePath {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
		}
		if c.Errors != nil {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}
		conf.logger.LogAttrs(c.Request.Context(), level,
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
