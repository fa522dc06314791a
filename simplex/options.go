package simplex

import (
	"io"

	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-9
)

// Iteration describes the tableau at one Evaluate step.
type Iteration struct {
	Index int
	// Objective is the ordinary objective value.
	Objective float64
	// Penalty is the M coefficient of the objective, zero once no artificial
	// variable is basic.
	Penalty    float64
	HasPenalty bool
	Optimal    bool
}

type options struct {
	maxIterations int
	tolerance     float64
	report        io.Writer
	logger        logrus.FieldLogger
	observer      func(Iteration)
}

type Option func(*options)

// WithMaxIterations bounds the number of evaluations of a solve.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithTolerance sets the tolerance of the optimality and ratio tests.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithReport writes the tableau of every iteration to w.
func WithReport(w io.Writer) Option {
	return func(o *options) {
		o.report = w
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver calls fn after every evaluation.
func WithObserver(fn func(Iteration)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func defaultOptions() options {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return options{
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		logger:        l,
	}
}
