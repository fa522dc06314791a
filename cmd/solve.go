package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"q.log/lpsolve/config"
	"q.log/lpsolve/external/gonumlp"
	"q.log/lpsolve/instance"
	"q.log/lpsolve/model"
	"q.log/lpsolve/simplex"
)

func newSolveCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a model file",
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
			log.WithFields(logrus.Fields{
				"file":        args[0],
				"solver":      cfg.Solver,
				"constraints": len(m.Constraints),
			}).Debug("model loaded")

			out := cmd.OutOrStdout()
			var report io.Writer
			if !cfg.Quiet {
				report = out
			}
			solver, err := newSolver(cfg.Solver, cfg, report, log)
			if err != nil {
				return err
			}

			sol, err := solver.Solve(cmd.Context(), m)
			return printResult(out, log, m, sol, err)
		},
	}

	flags := cmd.Flags()
	flags.String("solver", config.SolverSimplex, "solver: simplex, glpk or gonum")
	flags.Int("max-iterations", simplex.DefaultMaxIterations, "iteration limit of the simplex solver")
	flags.Bool("quiet", false, "do not print the tableau of every iteration")
	return cmd
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return config.Load(v, opts.configFile)
}

func readModel(cfg *config.Config, path string) (*model.Model, error) {
	switch cfg.Format {
	case config.FormatMPS:
		sense, err := model.ParseSense(cfg.Sense)
		if err != nil {
			return nil, err
		}
		return readMPS(path, sense)
	default:
		return instance.NewReader(path).ConstructModelFromFile()
	}
}

func newSolver(name string, cfg *config.Config, report io.Writer, log logrus.FieldLogger) (model.Solver, error) {
	switch name {
	case config.SolverSimplex:
		opts := []simplex.Option{
			simplex.WithMaxIterations(cfg.MaxIterations),
			simplex.WithTolerance(cfg.Tolerance),
			simplex.WithLogger(log),
		}
		if report != nil {
			opts = append(opts, simplex.WithReport(report))
		}
		return simplex.New(opts...), nil
	case config.SolverGLPK:
		return newGLPKSolver()
	case config.SolverGonum:
		return gonumlp.New(cfg.Tolerance), nil
	}
	return nil, errors.Errorf("unknown solver %q", name)
}

// printResult prints the optimum, or the failure line when the model has
// none. Any other error is returned.
func printResult(out io.Writer, log logrus.FieldLogger, m *model.Model, sol *model.Solution, err error) error {
	if errors.Is(err, model.ErrUnsolvable) {
		log.WithError(err).Debug("no optimum")
		fmt.Fprintln(out, "Model can't be solved")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, sol)
	if m.Objective.C3 != 0 {
		fmt.Fprintf(out, "Objective with constant term: %v\n", sol.Total(m.Objective))
	}
	return nil
}
