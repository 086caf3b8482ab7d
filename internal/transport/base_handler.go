package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakshigoud44/back2campus/internal"
	"github.com/sakshigoud44/back2campus/internal/core/common/pagination"
	"github.com/sakshigoud44/back2campus/pkg/logger"
)

// Envelope is the uniform response wrapper every endpoint emits.
type Envelope struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Data       interface{}      `json:"data,omitempty"`
	Errors     []string         `json:"errors,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

func (h *BaseHandler) writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData writes a success envelope carrying a payload.
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.writeEnvelope(w, status, Envelope{Success: true, Data: data})
}

// WriteDataWithMessage writes a success envelope carrying a payload and a
// human-readable message.
func (h *BaseHandler) WriteDataWithMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	h.writeEnvelope(w, status, Envelope{Success: true, Message: message, Data: data})
}

// WriteList writes a success envelope for a paginated collection.
func (h *BaseHandler) WriteList(w http.ResponseWriter, status int, data interface{}, meta pagination.Meta) {
	h.writeEnvelope(w, status, Envelope{Success: true, Data: data, Pagination: &meta})
}

// WriteError writes a failure envelope.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.writeEnvelope(w, status, Envelope{Success: false, Message: message})
}

// HandleServiceError is the terminal error normalizer: every failure that
// reaches a handler funnels through here, so status codes and the envelope
// shape are decided in exactly one place. Anything that is not an AppError is
// reported as an opaque 500; internal detail never reaches the client.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	appErr, ok := internal.IsAppError(err)
	if !ok {
		h.Logger.Error("unclassified error", "error", err)
		h.writeEnvelope(w, http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		h.Logger.Error("internal error", "error", appErr.Error(), "code", appErr.Code)
	} else {
		h.Logger.Warn("request failed", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
	}

	h.writeEnvelope(w, appErr.StatusCode, Envelope{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.FieldMessages(),
	})
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
