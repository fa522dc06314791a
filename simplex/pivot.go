package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"q.log/lpsolve/model"
)

// LeavingRow runs the minimum ratio test on column col. Only rows with a
// strictly positive entry take part; the first minimal row wins. It returns
// false when the column has no positive entry, i.e. the objective is
// unbounded along it.
func (t *Tableau) LeavingRow(col int, tol float64) (int, bool) {
	row := -1
	best := math.Inf(1)
	for r, b := range t.Basis {
		e := t.A.At(r, col)
		if e <= tol {
			continue
		}
		ratio := b.Value / e
		if row == -1 || ratio < best-tol {
			row, best = r, ratio
		}
	}
	return row, row != -1
}

// Pivot exchanges the basic variable of row with the variable of col and
// returns the resulting tableau. Every new cell is computed from the old
// table, which is left untouched.
func (t *Tableau) Pivot(row, col int, tol float64) *Tableau {
	old := t.A
	e := old.At(row, col)

	a := mat.NewDense(t.Rows(), t.Cols(), nil)
	a.Apply(func(r, c int, v float64) float64 {
		if r == row {
			return clamp(v/e, tol)
		}
		return clamp((v*e-old.At(r, col)*old.At(row, c))/e, tol)
	}, old)

	basis := make([]BasisEntry, len(t.Basis))
	leaving := t.Basis[row].Value
	for r, b := range t.Basis {
		if r == row {
			continue
		}
		b.Value = clamp((b.Value*e-leaving*old.At(r, col))/e, tol)
		basis[r] = b
	}
	entering := t.Vars[col]
	basis[row] = BasisEntry{
		Name:  entering.Name,
		Var:   col,
		Cost:  entering.Cost,
		Value: clamp(leaving/e, tol),
	}

	return &Tableau{Vars: t.Vars, A: a, Basis: basis, sense: t.sense}
}

// DriveOutArtificials removes the artificial variables left in the basis
// once the penalty row is optimal. An artificial with a positive value
// proves the constraints infeasible. One at zero is pivoted out on the
// first non-artificial column with a non-zero entry in its row; when there
// is none the row is redundant and is dropped. It also returns the number of
// pivots made.
func (t *Tableau) DriveOutArtificials(tol float64) (*Tableau, int, error) {
	pivots := 0
	for {
		r := t.firstArtificialRow()
		if r == -1 {
			return t, pivots, nil
		}
		if t.Basis[r].Value > tol {
			return nil, pivots, model.ErrInfeasible
		}

		col := -1
		for j, v := range t.Vars {
			if v.Kind != Artificial && math.Abs(t.A.At(r, j)) > tol {
				col = j
				break
			}
		}
		if col == -1 {
			t = t.removeRow(r)
			continue
		}
		t = t.Pivot(r, col, tol)
		pivots++
	}
}

func clamp(v, tol float64) float64 {
	if math.Abs(v) < tol {
		return 0
	}
	return v
}
