package simplex

import (
	"strconv"

	"q.log/lpsolve/model"
)

type costKind uint8

const (
	ordinary costKind = iota
	penalty
)

// Cost is the objective coefficient of a variable. It is either an ordinary
// finite value or the Big-M penalty carried by artificial variables. The
// penalty never takes part in float arithmetic: the evaluator accumulates it
// in a separate row.
type Cost struct {
	kind  costKind
	value float64
}

func OrdinaryCost(v float64) Cost {
	return Cost{kind: ordinary, value: v}
}

func PenaltyCost() Cost {
	return Cost{kind: penalty}
}

func (c Cost) IsPenalty() bool {
	return c.kind == penalty
}

// Value returns the ordinary part of the cost. It is zero for a penalty.
func (c Cost) Value() float64 {
	if c.kind == penalty {
		return 0
	}
	return c.value
}

// Format renders the cost for the tableau report. The penalty is -M when
// maximizing and M when minimizing.
func (c Cost) Format(sense model.Sense) string {
	if c.kind == penalty {
		if sense == model.Maximize {
			return "-M"
		}
		return "M"
	}
	return formatFloat(c.value)
}

// penaltyWeight is the sign of M in the objective for the given sense.
func penaltyWeight(sense model.Sense) float64 {
	if sense == model.Maximize {
		return -1
	}
	return 1
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
