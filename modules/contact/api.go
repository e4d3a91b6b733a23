package contact

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrymomot/queryform/handler"
	"github.com/dmitrymomot/queryform/pkg/binder"
	"github.com/dmitrymomot/queryform/pkg/logger"
	"github.com/dmitrymomot/queryform/pkg/ratelimiter"
	"github.com/dmitrymomot/queryform/pkg/requestid"
)

// APIService validates form input sent as JSON.
type APIService struct {
	validator      *Validator
	metrics        *Metrics
	log            *slog.Logger
	limiter        *ratelimiter.Limiter
	errorHandler   handler.ErrorHandler[handler.Context]
	allowedOrigins []string
}

// NewAPIService creates the JSON validation service.
func NewAPIService(opts ...Option) *APIService {
	cfg := newServiceConfig(opts)
	if cfg.errorHandler == nil {
		cfg.errorHandler = handler.NewJSONErrorHandler(cfg.log)
	}
	return &APIService{
		validator:      cfg.validator,
		metrics:        cfg.metrics,
		limiter:        cfg.limiter,
		log:            cfg.log.With(logger.Component("contact_api")),
		errorHandler:   cfg.errorHandler,
		allowedOrigins: cfg.allowedOrigins,
	}
}

// Handle returns the API routes, meant to be mounted at /api/contact.
// CORS is applied only when allowed origins are configured.
func (s *APIService) Handle() http.Handler {
	r := chi.NewRouter()

	if len(s.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}))
	}

	r.With(throttle(s.limiter, s.errorHandler)).Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, APIRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, APIRequest](s.errorHandler),
	))

	return r
}

// APIRequest is the JSON body of a validation request. The legacy
// "checkbox" key is accepted as an alias of "consent".
type APIRequest struct {
	FormInput
	Checkbox *bool `json:"checkbox,omitempty"`
}

// Input returns the form input with the consent alias applied.
func (r APIRequest) Input() FormInput {
	in := r.FormInput
	if r.Checkbox != nil && *r.Checkbox {
		in.Consent = true
	}
	return in
}

// APIResult is the data of a successful validation response.
type APIResult struct {
	Valid  bool             `json:"valid"`
	Errors ValidationResult `json:"errors"`
}

func (s *APIService) validate(ctx handler.Context, req APIRequest) handler.Response {
	result := s.validator.Validate(req.Input())
	s.metrics.Observe(result)

	if err := result.Err(); err != nil {
		s.log.DebugContext(ctx, "contact input rejected",
			logger.Event("contact.rejected"),
			slog.Any("fields", result.Fields()),
		)
		return handler.JSONError(err)
	}
	return handler.JSON(APIResult{Valid: true, Errors: result})
}
