// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging with the friendly error pages
// so handlers can report a failure in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs the underlying error and renders the invalid-
// request page with the user-facing message.
func (el *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	el.log.Warn(what,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogServerError logs the underlying error and renders the generic
// server-error page with the user-facing message.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	el.log.Error(what,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	RenderServerError(w, r, userMsg, backURL)
}
