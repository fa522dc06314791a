package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"q.log/lpsolve/model"
)

// Evaluation holds the objective rows derived from a tableau.
type Evaluation struct {
	// Ordinary is the reduced cost z_j - c_j of every column over the
	// non-artificial basic rows. Artificial columns hold the M dominated
	// value (+Inf when maximizing, -Inf when minimizing).
	Ordinary []float64
	// Penalty is the reduced cost of the M part. It is nil when no
	// artificial variable is basic.
	Penalty []float64

	// Value is the ordinary objective at the current basis.
	Value float64
	// PenaltyValue is the M coefficient of the objective at the current basis.
	PenaltyValue float64
}

// Evaluate computes the objective rows of the tableau.
func (t *Tableau) Evaluate() Evaluation {
	w := penaltyWeight(t.sense)
	ev := Evaluation{Ordinary: make([]float64, t.Cols())}
	if t.HasArtificialBasis() {
		ev.Penalty = make([]float64, t.Cols())
	}

	for _, b := range t.Basis {
		if b.Cost.IsPenalty() {
			ev.PenaltyValue += w * b.Value
		} else {
			ev.Value += b.Cost.Value() * b.Value
		}
	}

	for j, v := range t.Vars {
		var sum, sumPenalty float64
		for r, b := range t.Basis {
			if b.Cost.IsPenalty() {
				sumPenalty += w * t.A.At(r, j)
			} else {
				sum += b.Cost.Value() * t.A.At(r, j)
			}
		}

		if v.Cost.IsPenalty() {
			ev.Ordinary[j] = math.Inf(-int(w))
			sumPenalty -= w
		} else {
			ev.Ordinary[j] = sum - v.Cost.Value()
		}
		if ev.Penalty != nil {
			ev.Penalty[j] = sumPenalty
		}
	}

	return ev
}

// HasPenalty reports whether the penalty row is present.
func (ev Evaluation) HasPenalty() bool {
	return ev.Penalty != nil
}

// row is the row that drives the current iteration: the penalty row while
// it exists, the ordinary row afterwards.
func (ev Evaluation) row() []float64 {
	if ev.Penalty != nil {
		return ev.Penalty
	}
	return ev.Ordinary
}

// Optimal reports whether no column can improve the objective: when
// maximizing the minimum of the row is non-negative, when minimizing its
// maximum is non-positive.
func (ev Evaluation) Optimal(sense model.Sense, tol float64) bool {
	switch sense {
	case model.Maximize:
		return floats.Min(ev.row()) >= -tol
	case model.Minimize:
		return floats.Max(ev.row()) <= tol
	}
	panic("simplex: unknown sense")
}

// Entering returns the column of the extreme value of the row, the first one
// on ties.
func (ev Evaluation) Entering(sense model.Sense) int {
	switch sense {
	case model.Maximize:
		return floats.MinIdx(ev.row())
	case model.Minimize:
		return floats.MaxIdx(ev.row())
	}
	panic("simplex: unknown sense")
}
