package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform response shape. Diagnostics carry the per-row
// data-quality issues a report computation skipped over.
type Envelope struct {
	Success     bool   `json:"success"`
	Data        any    `json:"data,omitempty"`
	Diagnostics any    `json:"diagnostics,omitempty"`
	Error       *Error `json:"error,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

// SuccessWithDiagnostics reports a best-effort result together with the
// anomalies encountered while computing it.
func SuccessWithDiagnostics(w http.ResponseWriter, data, diagnostics any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Diagnostics: diagnostics, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}
