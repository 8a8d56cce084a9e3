package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"recipeshare/internal/logging"
)

// Logger writes one JSON access-log line per request through the process logger.
func Logger() fiber.Handler {
	return accessLog(logging.Log)
}

// LoggerWithWriter is Logger with an explicit writer and timezone.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return accessLog(func(data map[string]any) {
		logging.Write(w, loc, data)
	})
}

func accessLog(emit func(map[string]any)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		entry := map[string]any{
			"msg":        "http_request",
			"request_id": GetRequestID(c),
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
			"ip":         c.IP(),
		}
		if n, ok := bytesOut(c.Response()); ok {
			entry["bytes_out"] = n
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			entry["trace_id"] = sc.TraceID().String()
		}
		if status >= fiber.StatusInternalServerError {
			entry["level"] = "error"
		}
		emit(entry)

		return err
	}
}

// bytesOut reports the response size without touching a streamed body.
// Reading Body() would drain the stream into memory.
func bytesOut(resp *fiber.Response) (int, bool) {
	if resp.IsBodyStream() {
		n := resp.Header.ContentLength()
		return n, n >= 0
	}
	return len(resp.Body()), true
}
