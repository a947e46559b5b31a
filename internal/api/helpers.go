package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

const errInternalText = "Erro interno"

// ResponseError is the body of every non-2xx answer. Message is meant for the
// browser; Error carries the cause for whoever reads the relay logs.
type ResponseError struct {
	Message   string `json:"message"`
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	slog.Log(ctx, level, "api error", "error", err, "code", code)

	if msg == "" {
		msg = http.StatusText(code)
	}

	writeJSON(ctx, w, code, ResponseError{
		Message:   msg,
		Error:     err.Error(),
		RequestID: logger.RequestIDFromCtx(ctx),
	})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	writeJSON(ctx, w, code, data)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	b, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(ctx, "marshal response", "error", err)
		http.Error(w, errInternalText, http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_, err = w.Write(append(b, '\n'))
	if err != nil {
		slog.DebugContext(ctx, "write response", "error", err)
	}
}
