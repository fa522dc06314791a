package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"
	"q.log/lpsolve/config"
	"q.log/lpsolve/model"
)

const agreementTol = 1e-6

type checkResult struct {
	solver string
	sol    *model.Solution
	err    error
}

func (r checkResult) status() string {
	switch {
	case r.err == nil:
		return "optimal"
	case errors.Is(r.err, model.ErrUnbounded):
		return "unbounded"
	case errors.Is(r.err, model.ErrInfeasible):
		return "infeasible"
	}
	return "error"
}

func newCheckCommand(opts *rootOptions) *cobra.Command {
	var solvers []string

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Solve a model with several solvers and compare the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(cfg.Log, cmd.ErrOrStderr())

			m, err := readModel(cfg, args[0])
			if err != nil {
				return err
			}

			var results []checkResult
			for _, name := range solvers {
				solver, err := newSolver(name, cfg, nil, log)
				if err != nil {
					return err
				}
				sol, err := solver.Solve(cmd.Context(), m)
				results = append(results, checkResult{solver: name, sol: sol, err: err})
			}

			writeResults(cmd.OutOrStdout(), results)
			if !agree(results) {
				return errors.New("solvers disagree")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "solvers agree")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&solvers, "solvers", []string{config.SolverSimplex, config.SolverGonum}, "solvers to compare")
	return cmd
}

func writeResults(out io.Writer, results []checkResult) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintf(w, "SOLVER\tSTATUS\tVALUE\tX1\tX2\n")
	for _, r := range results {
		if r.sol == nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\n", r.solver, r.status())
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%v\n", r.solver, r.status(), r.sol.Value, r.sol.X[0], r.sol.X[1])
	}
}

// agree reports whether every solver reached the same status and, when
// optimal, the same objective value. The points may differ on ties.
func agree(results []checkResult) bool {
	if len(results) < 2 {
		return true
	}
	first := results[0]
	for _, r := range results[1:] {
		if r.status() != first.status() {
			return false
		}
		if r.sol != nil && !scalar.EqualWithinAbsOrRel(r.sol.Value, first.sol.Value, agreementTol, agreementTol) {
			return false
		}
	}
	return true
}
