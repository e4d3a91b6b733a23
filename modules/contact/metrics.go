package contact

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Submission outcomes recorded by Metrics.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

// Metrics counts form submissions and per-field failures.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	submissions *prometheus.CounterVec
	fieldErrors *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
// Collectors already registered with reg are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "queryform",
			Name:      "submissions_total",
			Help:      "Contact form submissions by result.",
		}, []string{"result"}),
		fieldErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "queryform",
			Name:      "field_errors_total",
			Help:      "Validation failures by form field.",
		}, []string{"field"}),
	}

	var err error
	if m.submissions, err = register(reg, m.submissions); err != nil {
		return nil, err
	}
	if m.fieldErrors, err = register(reg, m.fieldErrors); err != nil {
		return nil, err
	}
	return m, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

// Observe records a full-form submission and every field it failed on.
func (m *Metrics) Observe(result ValidationResult) {
	if m == nil {
		return
	}
	if result.Valid() {
		m.submissions.WithLabelValues(ResultAccepted).Inc()
		return
	}
	m.submissions.WithLabelValues(ResultRejected).Inc()
	m.ObserveFields(result)
}

// ObserveFields records field failures without counting a submission.
func (m *Metrics) ObserveFields(result ValidationResult) {
	if m == nil {
		return
	}
	for _, f := range result.Fields() {
		m.fieldErrors.WithLabelValues(f).Inc()
	}
}
