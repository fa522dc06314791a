// Package gonumlp solves models with the simplex implementation of
// gonum.org/v1/gonum/optimize/convex/lp.
package gonumlp

import (
	"context"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
	"q.log/lpsolve/model"
)

const DefaultTolerance = 1e-10

// rankTol is the relative size below which a singular value counts as zero.
const rankTol = 1e-9

type Solver struct {
	tol float64
}

// New returns a solver whose optimality test uses tol. A non-positive tol
// selects DefaultTolerance.
func New(tol float64) *Solver {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &Solver{tol: tol}
}

var _ model.Solver = (*Solver)(nil)

// Solve converts m to the general form min cᵀx, Gx <= h, Ax = b with the
// non-negativity of x1 and x2 written as rows of G, and hands it to lp.Simplex.
func (s *Solver) Solve(ctx context.Context, m *model.Model) (*model.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	obj := m.Objective.Coefs()
	c := make([]float64, model.NumVars)
	for j, v := range obj {
		if m.Sense == model.Maximize {
			v = -v
		}
		c[j] = v
	}

	a, rhs := m.Matrix()
	var gData, h []float64
	var eqs []int
	for r, con := range m.Constraints {
		if con.Empty() {
			if !con.Holds([model.NumVars]float64{}, s.tol) {
				return nil, errors.Wrapf(model.ErrInfeasible, "constraint %d", r+1)
			}
			continue
		}
		row := a.RawRowView(r)
		switch con.Sign {
		case model.LW, model.LWE:
			gData = append(gData, row...)
			h = append(h, rhs[r])
		case model.GT, model.GTE:
			gData = append(gData, -row[0], -row[1])
			h = append(h, -rhs[r])
		case model.EQ:
			eqs = append(eqs, r)
		default:
			return nil, errors.Errorf("unknown sign %d", con.Sign)
		}
	}
	for j := 0; j < model.NumVars; j++ {
		row := make([]float64, model.NumVars)
		row[j] = -1
		gData = append(gData, row...)
		h = append(h, 0)
	}
	g := mat.NewDense(len(h), model.NumVars, gData)

	aEq, b, err := independentRows(a, rhs, eqs)
	if err != nil {
		return nil, err
	}
	var eq mat.Matrix
	if len(b) > 0 {
		eq = aEq
	}

	cNew, aNew, bNew := lp.Convert(c, g, h, eq, b)
	_, x, err := lp.Simplex(cNew, aNew, bNew, s.tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, model.ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return nil, model.ErrUnbounded
	case err != nil:
		return nil, errors.Wrap(err, "gonum simplex")
	}

	// x is [x+, x-, slacks]
	var point [model.NumVars]float64
	for j := 0; j < model.NumVars; j++ {
		point[j] = x[j] - x[model.NumVars+j]
	}
	return &model.Solution{
		Value: m.Objective.Eval(point),
		X:     point,
	}, nil
}

// independentRows keeps the equality rows of a that are linearly independent
// of the rows kept before them, since lp.Simplex needs A to have full row
// rank. A dependent row that disagrees with the kept ones on its right hand
// side makes the model infeasible.
func independentRows(a *mat.Dense, rhs []float64, rows []int) (*mat.Dense, []float64, error) {
	var kept, keptAug, b []float64
	for _, r := range rows {
		row := a.RawRowView(r)
		n := len(b) + 1
		nextA := append(slices.Clone(kept), row...)
		nextAug := append(slices.Clone(keptAug), row[0], row[1], rhs[r])

		if rank(mat.NewDense(n, model.NumVars, nextA)) == n {
			kept, keptAug = nextA, nextAug
			b = append(b, rhs[r])
			continue
		}
		// kept rows are independent, so their augmented rank is len(b)
		if rank(mat.NewDense(n, model.NumVars+1, nextAug)) > len(b) {
			return nil, nil, errors.Wrapf(model.ErrInfeasible, "equality %d contradicts the ones before it", r+1)
		}
	}
	if len(b) == 0 {
		return nil, nil, nil
	}
	return mat.NewDense(len(b), model.NumVars, kept), b, nil
}

// rank counts the singular values of m above rankTol times the largest one.
func rank(m mat.Matrix) int {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return 0
	}
	vals := svd.Values(nil)
	if len(vals) == 0 || vals[0] == 0 {
		return 0
	}
	n := 0
	for _, v := range vals {
		if v > rankTol*vals[0] {
			n++
		}
	}
	return n
}
