package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// GoogleCloudHandler is a slog.Handler that serializes each record as a
// single JSON line with a Cloud-Logging-compatible severity field.
type GoogleCloudHandler struct {
	writer     *os.File
	level      slog.Level
	extraAttrs map[string]interface{}
}

// NewGoogleCloudHandler installs writer and level as the sink for a handler
// suitable for slog.SetDefault.
func NewGoogleCloudHandler(writer *os.File, level slog.Level) *GoogleCloudHandler {
	return &GoogleCloudHandler{
		writer: writer,
		level:  level,
	}
}

func (h *GoogleCloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *GoogleCloudHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]interface{}{}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	for k, v := range h.extraAttrs {
		attrs[k] = v
	}

	entry := map[string]interface{}{
		"severity": convertToSeverity(r.Level),
		"message":  r.Message,
		"time":     time.Now().Format(time.RFC3339Nano),
	}
	for k, v := range attrs {
		entry[k] = v
	}

	return json.NewEncoder(h.writer).Encode(entry)
}

func (h *GoogleCloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	if newHandler.extraAttrs == nil {
		newHandler.extraAttrs = map[string]interface{}{}
	} else {
		newHandler.extraAttrs = make(map[string]interface{}, len(h.extraAttrs))
		for k, v := range h.extraAttrs {
			newHandler.extraAttrs[k] = v
		}
	}
	for _, attr := range attrs {
		newHandler.extraAttrs[attr.Key] = attr.Value.Any()
	}
	return &newHandler
}

func (h *GoogleCloudHandler) WithGroup(name string) slog.Handler {
	return h
}

func convertToSeverity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
