package contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/queryform/handler"
	"github.com/dmitrymomot/queryform/pkg/binder"
	"github.com/dmitrymomot/queryform/pkg/clientip"
	"github.com/dmitrymomot/queryform/pkg/logger"
	"github.com/dmitrymomot/queryform/pkg/ratelimiter"
	"github.com/dmitrymomot/queryform/pkg/sanitizer"
)

// FormService serves the HTML contact form.
type FormService struct {
	validator    *Validator
	views        *Views
	metrics      *Metrics
	limiter      *ratelimiter.Limiter
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures FormService and APIService.
type Option func(*serviceConfig)

type serviceConfig struct {
	validator      *Validator
	metrics        *Metrics
	log            *slog.Logger
	errorHandler   handler.ErrorHandler[handler.Context]
	allowedOrigins []string
	limiter        *ratelimiter.Limiter
}

// WithValidator sets the validator. Defaults to NewValidator(DefaultQueryTypes()).
func WithValidator(v *Validator) Option {
	return func(c *serviceConfig) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithMetrics enables submission counters.
func WithMetrics(m *Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *serviceConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithErrorHandler sets the handler for bind and render failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(c *serviceConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithAllowedOrigins sets the CORS origins accepted by APIService.
// Ignored by FormService.
func WithAllowedOrigins(origins ...string) Option {
	return func(c *serviceConfig) {
		c.allowedOrigins = origins
	}
}

// WithSubmitLimiter throttles submissions per client address. Only the
// full-form endpoints are throttled; per-field validation is not.
func WithSubmitLimiter(l *ratelimiter.Limiter) Option {
	return func(c *serviceConfig) {
		c.limiter = l
	}
}

func newServiceConfig(opts []Option) serviceConfig {
	cfg := serviceConfig{
		validator: defaultValidator,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// NewFormService creates the HTML form service.
func NewFormService(views *Views, opts ...Option) *FormService {
	cfg := newServiceConfig(opts)
	if cfg.errorHandler == nil {
		cfg.errorHandler = handler.NewErrorHandler(cfg.log, handler.ErrorHandlerConfig{})
	}
	return &FormService{
		validator:    cfg.validator,
		views:        views,
		metrics:      cfg.metrics,
		limiter:      cfg.limiter,
		log:          cfg.log.With(logger.Component("contact")),
		errorHandler: cfg.errorHandler,
	}
}

// Handle returns the form routes, meant to be mounted at /contact.
func (s *FormService) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.show,
		handler.WithBinders[handler.Context, FormInput](binder.Query()),
		handler.WithErrorHandler[handler.Context, FormInput](s.errorHandler),
	))

	r.With(throttle(s.limiter, s.errorHandler)).Post("/", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, FormInput](binder.Form()),
		handler.WithErrorHandler[handler.Context, FormInput](s.errorHandler),
	))

	r.Post("/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, FieldRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, FieldRequest](s.errorHandler),
	))

	return r
}

// throttle returns a pass-through middleware when l is nil. Throttled
// requests are reported through eh, so Datastar clients get a toast.
func throttle(l *ratelimiter.Limiter, eh handler.ErrorHandler[handler.Context]) func(http.Handler) http.Handler {
	if l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(l, clientKey,
		ratelimiter.WithLimitedHandler(func(w http.ResponseWriter, r *http.Request, _ ratelimiter.Result) {
			eh(handler.NewContext(w, r), handler.ErrTooManyRequests)
		}),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			eh(handler.NewContext(w, r), err)
		}),
	)
}

func clientKey(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.FromRequest(r)
}

func (s *FormService) formParams(in FormInput, errs ValidationResult) FormParams {
	return FormParams{Input: in, Errors: errs, Options: s.validator.Options()}
}

// show renders the form at defaults, prefilled from the query string.
func (s *FormService) show(ctx handler.Context, in FormInput) handler.Response {
	form := s.formParams(in, nil)
	return handler.TemplPartial(
		s.views.Form(form),
		s.views.Page(PageParams{Form: form}),
		handler.WithTarget(FormTarget),
	)
}

func (s *FormService) submit(ctx handler.Context, in FormInput) handler.Response {
	result := s.validator.Validate(in)
	s.metrics.Observe(result)

	if !result.Valid() {
		s.log.DebugContext(ctx, "contact form rejected",
			logger.Event("contact.rejected"),
			slog.Any("fields", result.Fields()),
		)
		form := s.formParams(in, result)
		return handler.TemplPartialWithStatus(http.StatusUnprocessableEntity,
			s.views.Form(form),
			s.views.Page(PageParams{Form: form}),
			handler.WithTarget(FormTarget),
		)
	}

	clean := Normalize(in)
	s.log.InfoContext(ctx, "contact form accepted",
		logger.Event("contact.accepted"),
		slog.String("email", sanitizer.MaskEmail(clean.Email)),
		slog.String("query_type", clean.QueryType),
	)

	reset := s.formParams(DefaultInput(), nil)
	notice := SuccessNotice()

	if handler.IsDataStar(ctx.Request()) {
		return handler.TemplMulti(
			handler.Patch(s.views.Form(reset), handler.WithTarget(FormTarget)),
			handler.Patch(s.views.Toast(notice),
				handler.WithTarget(ToastTarget),
				handler.WithPatchMode(handler.PatchPrepend),
			),
		)
	}
	return handler.Templ(s.views.Page(PageParams{Form: reset, Notice: &notice}))
}

// FieldRequest is the body of a per-field validation request.
type FieldRequest struct {
	Field string `path:"field" form:"-" query:"-"`
	FormInput
}

func (s *FormService) validateField(ctx handler.Context, req FieldRequest) handler.Response {
	msg, ok, err := s.validator.ValidateField(req.Field, req.FormInput)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}
	if !ok {
		s.metrics.ObserveFields(ValidationResult{req.Field: msg})
	}

	field := FieldParams{
		Name:    req.Field,
		Input:   req.FormInput,
		Message: msg,
		Options: s.validator.Options(),
	}
	return handler.Templ(s.views.Field(field), handler.WithTarget("#"+field.BlockID()))
}
