package simplex

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"q.log/lpsolve/model"
)

// Solver solves two variable models with the Big-M tableau simplex method.
// A Solver holds no state between solves and may be shared.
type Solver struct {
	opts options
}

func New(opts ...Option) *Solver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Solver{opts: o}
}

var _ model.Solver = (*Solver)(nil)

// Solve builds the initial tableau of m and pivots until the objective row
// is optimal or the entering column proves the model unbounded.
// It returns model.ErrUnbounded or model.ErrInfeasible when the model has no
// optimum, and never a partial solution.
func (s *Solver) Solve(ctx context.Context, m *model.Model) (*model.Solution, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	tol := s.opts.tolerance
	log := s.opts.logger.WithField("sense", m.Sense.String())

	cons, err := dropEmptyRows(m.Constraints, tol)
	if err != nil {
		return nil, err
	}
	if len(cons) == 0 {
		log.Debug("no constraint with variables")
		return unconstrained(m)
	}
	reduced := *m
	reduced.Constraints = cons

	t := NewTableau(&reduced)
	log.WithFields(logrus.Fields{
		"rows":    t.Rows(),
		"columns": t.Cols(),
	}).Debugf("initial tableau\nA = %v", mat.Formatted(t.A, mat.Prefix("    "), mat.Squeeze()))

	pivots := 0
	for iter := 0; ; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "simplex")
		}
		if iter >= s.opts.maxIterations {
			return nil, errors.Wrapf(model.ErrIterationLimit, "simplex stopped after %d iterations", iter)
		}

		ev := t.Evaluate()
		optimal := ev.Optimal(m.Sense, tol)
		if err := s.report(t, ev, iter); err != nil {
			return nil, err
		}
		if s.opts.observer != nil {
			s.opts.observer(Iteration{
				Index:      iter,
				Objective:  ev.Value,
				Penalty:    ev.PenaltyValue,
				HasPenalty: ev.HasPenalty(),
				Optimal:    optimal,
			})
		}

		if optimal {
			if ev.HasPenalty() {
				var n int
				if t, n, err = t.DriveOutArtificials(tol); err != nil {
					log.WithField("iteration", iter).Debug("artificial variable left in the basis")
					return nil, err
				}
				pivots += n
				continue
			}
			log.WithFields(logrus.Fields{
				"iterations": iter,
				"pivots":     pivots,
				"value":      ev.Value,
			}).Debug("optimal tableau")
			return &model.Solution{
				Value:      ev.Value,
				X:          t.Point(),
				Iterations: pivots,
			}, nil
		}

		col := ev.Entering(m.Sense)
		row, ok := t.LeavingRow(col, tol)
		if !ok {
			log.WithFields(logrus.Fields{
				"iteration": iter,
				"entering":  t.Vars[col].Name,
			}).Debug("entering column has no positive entry")
			return nil, model.ErrUnbounded
		}

		log.WithFields(logrus.Fields{
			"iteration": iter,
			"entering":  t.Vars[col].Name,
			"leaving":   t.Basis[row].Name,
			"objective": ev.Value,
		}).Debug("pivot")
		t = t.Pivot(row, col, tol)
		pivots++
	}
}

func (s *Solver) report(t *Tableau, ev Evaluation, iter int) error {
	if s.opts.report == nil {
		return nil
	}
	if _, err := fmt.Fprintf(s.opts.report, "Iteration %d\n", iter); err != nil {
		return errors.Wrap(err, "write report")
	}
	return errors.Wrap(WriteTableau(s.opts.report, t, ev), "write report")
}

// dropEmptyRows removes the constraints without variables. Such a row holds
// at every point, unless it holds at none and the model is infeasible.
func dropEmptyRows(cons []model.Constraint, tol float64) ([]model.Constraint, error) {
	out := make([]model.Constraint, 0, len(cons))
	for i, c := range cons {
		if !c.Empty() {
			out = append(out, c)
			continue
		}
		if !c.Holds([model.NumVars]float64{}, tol) {
			return nil, errors.Wrapf(model.ErrInfeasible, "constraint %d", i+1)
		}
	}
	return out, nil
}

// unconstrained solves m over x >= 0 alone. The origin is optimal unless a
// coefficient improves the objective without limit.
func unconstrained(m *model.Model) (*model.Solution, error) {
	for _, c := range m.Objective.Coefs() {
		if (m.Sense == model.Maximize && c > 0) || (m.Sense == model.Minimize && c < 0) {
			return nil, model.ErrUnbounded
		}
	}
	return &model.Solution{}, nil
}
