//go:build !noglpk

package glpksolver

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/lpsolve/model"
)

// ReadMPS reads a free MPS file through GLPK and returns it as a model with
// the given sense. The file must have exactly two columns, non-negative
// lower bounds and integral coefficients. Column bounds other than x >= 0
// become constraints.
func ReadMPS(filename string, sense model.Sense) (*model.Model, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, filename); err != nil {
		return nil, errors.Wrapf(err, "read mps %s", filename)
	}

	if lp.NumCols() != model.NumVars {
		return nil, errors.Wrapf(model.ErrInvalidModel, "mps model has %d columns, want %d", lp.NumCols(), model.NumVars)
	}

	m := &model.Model{Name: lp.ProbName(), Sense: sense}

	//populate obj function
	var objCoefs [model.NumVars + 1]int
	for c := 0; c < model.NumVars+1; c++ {
		v, err := integral(lp.ObjCoef(c))
		if err != nil {
			return nil, errors.Wrapf(err, "objective coefficient %d", c)
		}
		objCoefs[c] = v
	}
	m.Objective = model.Objective{C1: objCoefs[1], C2: objCoefs[2], C3: objCoefs[0]}

	//populate constraints
	for r := 1; r <= lp.NumRows(); r++ {
		var coefs [model.NumVars]int
		idxs, row := lp.MatRow(r)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			coef, err := integral(row[i])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d", r)
			}
			coefs[v-1] = coef
		}

		lb, ub := lp.RowLB(r), lp.RowUB(r)
		cons, err := boundConstraints(coefs, lb, ub)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", r)
		}
		m.Constraints = append(m.Constraints, cons...)
	}

	for c := 0; c < model.NumVars; c++ {
		lb, ub := lp.ColLB(c+1), lp.ColUB(c+1)
		if lb < 0 {
			return nil, errors.Wrapf(model.ErrInvalidModel, "column %d has a negative lower bound", c+1)
		}
		var coefs [model.NumVars]int
		coefs[c] = 1
		if lb == 0 {
			lb = -math.MaxFloat64
		}
		cons, err := boundConstraints(coefs, lb, ub)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", c+1)
		}
		m.Constraints = append(m.Constraints, cons...)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// boundConstraints turns lb <= coefs*x <= ub into constraints. GLPK reports
// a missing bound as -+math.MaxFloat64; a free row yields nothing.
func boundConstraints(coefs [model.NumVars]int, lb, ub float64) ([]model.Constraint, error) {
	lower := lb != -math.MaxFloat64
	upper := ub != math.MaxFloat64
	if !lower && !upper {
		return nil, nil
	}

	var lo, hi int
	var err error
	if lower {
		if lo, err = integral(lb); err != nil {
			return nil, err
		}
	}
	if upper {
		if hi, err = integral(ub); err != nil {
			return nil, err
		}
	}

	mk := func(rhs int, sign model.Sign) model.Constraint {
		return model.Constraint{C1: coefs[0], C2: coefs[1], C3: rhs, Sign: sign}
	}
	switch {
	case lower && upper && lo == hi:
		return []model.Constraint{mk(lo, model.EQ)}, nil
	case lower && upper:
		return []model.Constraint{mk(lo, model.GTE), mk(hi, model.LWE)}, nil
	case lower:
		return []model.Constraint{mk(lo, model.GTE)}, nil
	default:
		return []model.Constraint{mk(hi, model.LWE)}, nil
	}
}

func integral(v float64) (int, error) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, errors.Errorf("value %v is not an integer", v)
	}
	return int(v), nil
}
