package simplex

import (
	"fmt"

	"q.log/lpsolve/model"
)

// VarKind tells how a variable entered the canonical form.
type VarKind uint8

const (
	Decision VarKind = iota
	Slack
	Surplus
	Artificial
)

func (k VarKind) String() string {
	switch k {
	case Decision:
		return "decision"
	case Slack:
		return "slack"
	case Surplus:
		return "surplus"
	case Artificial:
		return "artificial"
	}
	return fmt.Sprintf("VarKind(%d)", uint8(k))
}

// Variable is a column of the tableau. Decision, slack, surplus and
// artificial variables only differ in their column and cost.
type Variable struct {
	Name   string
	Kind   VarKind
	Cost   Cost
	Column []float64
}

// canonicalColumns returns the decision columns x1 and x2 followed by one
// slack (+1) or surplus (-1) column per inequality constraint, named x3, x4...
// Equality constraints add no column.
func canonicalColumns(obj model.Objective, cons []model.Constraint) []Variable {
	rows := len(cons)
	coefs := obj.Coefs()

	vars := make([]Variable, 0, model.NumVars+rows)
	for j := 0; j < model.NumVars; j++ {
		col := make([]float64, rows)
		for r, c := range cons {
			col[r] = c.Coefs()[j]
		}
		vars = append(vars, Variable{
			Name:   fmt.Sprintf("x%d", j+1),
			Kind:   Decision,
			Cost:   OrdinaryCost(coefs[j]),
			Column: col,
		})
	}

	for r, c := range cons {
		var kind VarKind
		var coef float64
		switch c.Sign {
		case model.GT, model.GTE:
			kind, coef = Surplus, -1
		case model.LW, model.LWE:
			kind, coef = Slack, 1
		case model.EQ:
			continue
		default:
			panic(fmt.Sprintf("simplex: unknown sign %d", c.Sign))
		}
		col := make([]float64, rows)
		col[r] = coef
		vars = append(vars, Variable{
			Name:   fmt.Sprintf("x%d", len(vars)+1),
			Kind:   kind,
			Cost:   OrdinaryCost(0),
			Column: col,
		})
	}

	return vars
}
