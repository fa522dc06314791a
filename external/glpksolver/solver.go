//go:build !noglpk

// Package glpksolver solves models with GLPK and imports two variable
// models from MPS files.
package glpksolver

import (
	"context"
	"fmt"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"q.log/lpsolve/model"
)

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

var _ model.Solver = (*Solver)(nil)

// Solve builds a GLPK problem from m and runs the GLPK primal simplex.
func (s *Solver) Solve(ctx context.Context, m *model.Model) (*model.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()

	if m.Name != "" {
		lp.SetProbName(m.Name)
	}
	if m.Sense == model.Maximize {
		lp.SetObjDir(glpk.MAX)
	} else {
		lp.SetObjDir(glpk.MIN)
	}

	obj := m.Objective.Coefs()
	lp.AddCols(model.NumVars)
	for j := 0; j < model.NumVars; j++ {
		lp.SetColName(j+1, fmt.Sprintf("x%d", j+1))
		lp.SetColBnds(j+1, glpk.LO, 0, 0)
		lp.SetObjCoef(j+1, obj[j])
	}

	lp.AddRows(len(m.Constraints))
	for i, c := range m.Constraints {
		rhs := float64(c.C3)
		switch c.Sign {
		case model.LW, model.LWE:
			lp.SetRowBnds(i+1, glpk.UP, 0, rhs)
		case model.GT, model.GTE:
			lp.SetRowBnds(i+1, glpk.LO, rhs, 0)
		case model.EQ:
			lp.SetRowBnds(i+1, glpk.FX, rhs, rhs)
		default:
			return nil, errors.Errorf("unknown sign %d", c.Sign)
		}

		// GLPK arrays are 1-based, index 0 is ignored
		ind := []int32{0}
		val := []float64{0}
		for j, v := range c.Coefs() {
			if v == 0 {
				continue
			}
			ind = append(ind, int32(j+1))
			val = append(val, v)
		}
		lp.SetMatRow(i+1, ind, val)
	}

	smcp := glpk.NewSmcp()
	smcp.SetMsgLev(glpk.MSG_OFF)
	if err := lp.Simplex(smcp); err != nil {
		return nil, errors.Wrap(err, "glpk simplex")
	}

	switch st := lp.Status(); st {
	case glpk.OPT:
	case glpk.UNBND:
		return nil, model.ErrUnbounded
	case glpk.NOFEAS, glpk.INFEAS:
		return nil, model.ErrInfeasible
	default:
		return nil, errors.Errorf("glpk finished with status %v", st)
	}

	var x [model.NumVars]float64
	for j := 0; j < model.NumVars; j++ {
		x[j] = lp.ColPrim(j + 1)
	}
	return &model.Solution{
		Value: m.Objective.Eval(x),
		X:     x,
	}, nil
}
