package simplex

import (
	"q.log/lpsolve/model"

	"gonum.org/v1/gonum/mat"
)

// BasisEntry is the basic variable of one tableau row.
type BasisEntry struct {
	Name string
	// Var is the column of the variable in the tableau.
	Var   int
	Cost  Cost
	Value float64
}

// Tableau is the simplex table of a model in canonical form. For every row
// r, the column Basis[r].Var of A is the r-th unit vector.
//
// A Tableau is never modified once built; Pivot returns a new one.
type Tableau struct {
	Vars  []Variable
	A     *mat.Dense
	Basis []BasisEntry

	sense model.Sense
}

// NewTableau builds the initial tableau of m: constraints with a negative
// right hand side are normalized, slack, surplus and artificial columns are
// appended and each row gets the first unit column as its basic variable.
func NewTableau(m *model.Model) *Tableau {
	cons := make([]model.Constraint, len(m.Constraints))
	for i, c := range m.Constraints {
		cons[i] = c.Normalized()
	}

	vars := canonicalColumns(m.Objective, cons)
	vars = AddArtificialVariables(vars, len(cons))

	a := mat.NewDense(len(cons), len(vars), nil)
	for j, v := range vars {
		a.SetCol(j, v.Column)
	}

	basis := make([]BasisEntry, len(cons))
	for r := range cons {
		j := unitColumnFor(vars, r)
		basis[r] = BasisEntry{
			Name:  vars[j].Name,
			Var:   j,
			Cost:  vars[j].Cost,
			Value: float64(cons[r].C3),
		}
	}

	return &Tableau{
		Vars:  vars,
		A:     a,
		Basis: basis,
		sense: m.Sense,
	}
}

func (t *Tableau) Rows() int {
	r, _ := t.A.Dims()
	return r
}

func (t *Tableau) Cols() int {
	_, c := t.A.Dims()
	return c
}

// HasArtificialBasis reports whether an artificial variable is still basic.
func (t *Tableau) HasArtificialBasis() bool {
	return t.firstArtificialRow() != -1
}

func (t *Tableau) firstArtificialRow() int {
	for r, b := range t.Basis {
		if b.Cost.IsPenalty() {
			return r
		}
	}
	return -1
}

// Point returns the values of the decision variables. Non-basic variables
// are zero.
func (t *Tableau) Point() [model.NumVars]float64 {
	var x [model.NumVars]float64
	for _, b := range t.Basis {
		if b.Var < model.NumVars {
			x[b.Var] = b.Value
		}
	}
	return x
}

// removeRow drops row r together with its basis entry.
func (t *Tableau) removeRow(r int) *Tableau {
	rows, cols := t.A.Dims()
	a := mat.NewDense(rows-1, cols, nil)
	basis := make([]BasisEntry, 0, rows-1)
	i := 0
	for k := 0; k < rows; k++ {
		if k == r {
			continue
		}
		a.SetRow(i, t.A.RawRowView(k))
		basis = append(basis, t.Basis[k])
		i++
	}
	return &Tableau{Vars: t.Vars, A: a, Basis: basis, sense: t.sense}
}
