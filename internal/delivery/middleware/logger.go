package middleware

import (
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle logs after the handler ran. Health probes are only logged in debug mode.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		if m.debug || !strings.HasPrefix(c.Request().URL.Path, "/health") {
			m.logRequest(c, start, err)
		}

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if identity, ok := deliverycontext.GetIdentity(c); ok {
		fields = append(fields, slog.String("user_id", identity.UserID.String()))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
