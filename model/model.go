package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// NumVars is the number of decision variables of every model. The objective
// and the reports are defined over x1 and x2 only.
const NumVars = 2

// Objective is c1*x1 + c2*x2 + c3. C3 is a constant offset and takes no part
// in the optimization itself.
type Objective struct {
	C1 int
	C2 int
	C3 int
}

// Coefs returns the objective coefficients of x1 and x2.
func (o Objective) Coefs() [NumVars]float64 {
	return [NumVars]float64{float64(o.C1), float64(o.C2)}
}

// Eval evaluates c1*x1 + c2*x2, without the constant term.
func (o Objective) Eval(x [NumVars]float64) float64 {
	return float64(o.C1)*x[0] + float64(o.C2)*x[1]
}

func (o Objective) String() string {
	return fmt.Sprintf("c1: %d; c2: %d; c3: %d;", o.C1, o.C2, o.C3)
}

// Constraint is c1*x1 + c2*x2 <sign> c3.
type Constraint struct {
	C1   int
	C2   int
	C3   int
	Sign Sign
}

// Coefs returns the left hand side coefficients of x1 and x2.
func (c Constraint) Coefs() [NumVars]float64 {
	return [NumVars]float64{float64(c.C1), float64(c.C2)}
}

// Normalized returns the constraint with a non-negative right hand side.
// A negative row is multiplied by -1 and its relation is mirrored.
func (c Constraint) Normalized() Constraint {
	if c.C3 >= 0 {
		return c
	}
	return Constraint{C1: -c.C1, C2: -c.C2, C3: -c.C3, Sign: c.Sign.Mirror()}
}

// Holds reports whether x satisfies the constraint within tol. Strict
// relations are checked as their closure.
func (c Constraint) Holds(x [NumVars]float64, tol float64) bool {
	lhs := float64(c.C1)*x[0] + float64(c.C2)*x[1]
	rhs := float64(c.C3)
	switch c.Sign {
	case GT, GTE:
		return lhs >= rhs-tol
	case LW, LWE:
		return lhs <= rhs+tol
	case EQ:
		return lhs >= rhs-tol && lhs <= rhs+tol
	default:
		panic(fmt.Sprintf("model: unknown sign %d", c.Sign))
	}
}

// Empty reports whether both coefficients are zero. Such a row holds
// everywhere or nowhere.
func (c Constraint) Empty() bool {
	return c.C1 == 0 && c.C2 == 0
}

func (c Constraint) String() string {
	return fmt.Sprintf("c1: %d; c2: %d; c3: %d; sign: %q", c.C1, c.C2, c.C3, c.Sign.String())
}

// Model is a two variable linear programming problem.
type Model struct {
	Name        string
	Sense       Sense
	Objective   Objective
	Constraints []Constraint
}

// Validate checks that the model is complete enough to be solved.
func (m *Model) Validate() error {
	if !m.Sense.Valid() {
		return errors.Wrap(ErrInvalidModel, "sense is not set")
	}
	if len(m.Constraints) == 0 {
		return errors.Wrap(ErrInvalidModel, "model has no constraints")
	}
	for i, c := range m.Constraints {
		if !c.Sign.Valid() {
			return errors.Wrapf(ErrInvalidModel, "constraint %d has no sign", i+1)
		}
	}
	return nil
}

// Feasible reports whether x is non-negative and satisfies every constraint.
func (m *Model) Feasible(x [NumVars]float64, tol float64) bool {
	for _, v := range x {
		if v < -tol {
			return false
		}
	}
	for _, c := range m.Constraints {
		if !c.Holds(x, tol) {
			return false
		}
	}
	return true
}

// Matrix returns the constraint matrix A (one row per constraint, one column
// per decision variable) and the right hand side b.
func (m *Model) Matrix() (*mat.Dense, []float64) {
	a := mat.NewDense(len(m.Constraints), NumVars, nil)
	b := make([]float64, len(m.Constraints))
	for r, c := range m.Constraints {
		coefs := c.Coefs()
		a.SetRow(r, coefs[:])
		b[r] = float64(c.C3)
	}
	return a, b
}

func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("Model:\n")
	if m.Name != "" {
		fmt.Fprintf(&sb, "\tProblem: %s\n", m.Name)
	}
	fmt.Fprintf(&sb, "\tSense: %s\n", m.Sense)
	fmt.Fprintf(&sb, "\tFun: %s\n", m.Objective)
	sb.WriteString("\tConstraints:\n")
	for _, c := range m.Constraints {
		fmt.Fprintf(&sb, "\t\t- %s\n", c)
	}
	return sb.String()
}
