package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"q.log/lpsolve/config"
	"q.log/lpsolve/simplex"
)

type rootOptions struct {
	configFile string
}

// NewRootCommand returns the lpsolve command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve two variable linear programming models",
		Long: `lpsolve reads a model description and finds the optimal value of its
objective together with the values of x1 and x2.

The built-in solver is a Big-M tableau simplex which prints every tableau it
goes through. GLPK and gonum can be used instead to solve the same model.`,
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("format", config.FormatText, "model file format: text or mps")
	flags.String("sense", "MAX", "sense of MPS models: MAX or MIN")
	flags.Float64("tolerance", simplex.DefaultTolerance, "tolerance of the optimality and ratio tests")

	cmd.AddCommand(
		newSolveCommand(opts),
		newCheckCommand(opts),
	)
	return cmd
}

func newLogger(c config.LogConfig, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if lvl, err := logrus.ParseLevel(c.Level); err == nil {
		l.SetLevel(lvl)
	}
	if c.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}
