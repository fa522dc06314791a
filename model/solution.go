package model

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsolvable is the common cause of every outcome without an optimum.
	ErrUnsolvable = errors.New("Model can't be solved")
	// ErrUnbounded is returned when the objective can be improved without limit.
	ErrUnbounded = errors.WithMessage(ErrUnsolvable, "objective is unbounded")
	// ErrInfeasible is returned when no point satisfies every constraint.
	ErrInfeasible = errors.WithMessage(ErrUnsolvable, "constraints are infeasible")

	ErrIterationLimit = errors.New("iteration limit reached")
	ErrInvalidModel   = errors.New("invalid model")
)

// Solution is an optimal point of a model.
type Solution struct {
	// Value is c1*x1 + c2*x2 at X.
	Value float64
	X     [NumVars]float64
	// Iterations is the number of pivots, those that drive artificial
	// variables out of the basis included, when the solver reports it.
	Iterations int
}

// Total returns the objective value including the constant term c3.
func (s *Solution) Total(o Objective) float64 {
	return s.Value + float64(o.C3)
}

func (s *Solution) String() string {
	return fmt.Sprintf("Solution found: %v\nx1: %v; x2: %v", s.Value, s.X[0], s.X[1])
}

// Solver finds an optimal solution of a model.
type Solver interface {
	Solve(ctx context.Context, m *Model) (*Solution, error)
}
