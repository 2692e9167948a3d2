package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogCommandHooks logs command invocations at debug level.
type LogCommandHooks struct {
	Logger *log.Logger
}

func (h LogCommandHooks) OnInvokeStart(_ context.Context, name string) {
	h.Logger.Debug("invoke", "command", name)
}

func (h LogCommandHooks) OnInvokeComplete(_ context.Context, name string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("invoke failed", "command", name, "duration", d.Round(time.Microsecond), "err", err)
		return
	}
	h.Logger.Debug("invoke done", "command", name, "duration", d.Round(time.Microsecond))
}

// LogHTTPHooks logs one line per HTTP response.
type LogHTTPHooks struct {
	Logger *log.Logger
}

func (h LogHTTPHooks) OnRequest(_ context.Context, id, method, path string) {
	h.Logger.Debug("request", "id", id, "method", method, "path", path)
}

func (h LogHTTPHooks) OnResponse(_ context.Context, id, method, path string, status int, d time.Duration) {
	h.Logger.Info("response", "id", id, "method", method, "path", path, "status", status, "duration", d.Round(time.Microsecond))
}
