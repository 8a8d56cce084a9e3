// Package logging writes one JSON object per line, the format every
// component of the service uses for its logs.
package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
	loc           = time.UTC
)

// Setup sets the process-wide writer and timezone used by Info and Error.
func Setup(w io.Writer, l *time.Location) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		out = w
	}
	if l != nil {
		loc = l
	}
}

// Info logs data at info level.
func Info(data map[string]any) {
	data["level"] = "info"
	Log(data)
}

// Error logs data at error level, attaching err under "error".
func Error(err error, data map[string]any) {
	data["level"] = "error"
	if err != nil {
		data["error"] = err.Error()
	}
	Log(data)
}

// Log writes data to the process-wide writer. When "level" is absent it is
// derived from "status": "error" gives error, everything else info.
func Log(data map[string]any) {
	mu.Lock()
	w, l := out, loc
	mu.Unlock()
	Write(w, l, data)
}

// Write stamps data with "ts" and encodes it as a single line to w.
func Write(w io.Writer, l *time.Location, data map[string]any) {
	if l == nil {
		l = time.UTC
	}
	data["ts"] = time.Now().In(l).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		b, _ = json.Marshal(map[string]any{
			"ts":    data["ts"],
			"level": "error",
			"msg":   "log_marshal_failed",
			"error": err.Error(),
		})
	}
	b = append(b, '\n')
	mu.Lock()
	_, _ = w.Write(b)
	mu.Unlock()
}
