package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/queryform/pkg/environment"
	"github.com/dmitrymomot/queryform/pkg/logger"
	"github.com/dmitrymomot/queryform/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts.
type ErrorToastParams struct {
	Message   string
	Type      string // "error" or "warning"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component
	// ErrorToast renders toast notification for Datastar requests.
	ErrorToast func(ErrorToastParams) templ.Component
	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
	}

	var detailStatus int
	detail := errorToDetail(err, &detailStatus)
	if detail.Code != "internal_error" {
		info.StatusCode = detailStatus
		info.Message = detail.Message
	}
	if ve, ok := asValidationError(err); ok {
		info.Message = ve.Error()
	}

	if info.StatusCode < http.StatusInternalServerError {
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	} else {
		info.Type = "error"
		info.LogLevel = slog.LevelError
	}
	return info
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// NewErrorHandler returns an error handler that logs every error and then
// renders a toast for Datastar requests or an error page otherwise.
// Client errors log at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		// Internal errors are only spelled out in development.
		if info.StatusCode >= http.StatusInternalServerError && environment.IsDevelopment(r.Context()) {
			info.Message = err.Error()
		}

		requestID := requestid.FromContext(r.Context())

		if IsDataStar(r) && cfg.ErrorToast != nil {
			toast := cfg.ErrorToast(ErrorToastParams{
				Message:   info.Message,
				Type:      info.Type,
				RequestID: requestID,
			})
			resp := Templ(toast, WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
			if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.ErrorContext(r.Context(), "failed to render error toast", logger.Error(renderErr))
			}
			return
		}

		if cfg.ErrorPage == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		page := cfg.ErrorPage(ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
			RetryURL:   r.URL.Path,
		})
		if renderErr := renderHTML(ctx.ResponseWriter(), r, info.StatusCode, page); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(renderErr))
		}
	}
}

// NewJSONErrorHandler returns an error handler that logs like
// NewErrorHandler and writes the JSON error envelope.
func NewJSONErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}
