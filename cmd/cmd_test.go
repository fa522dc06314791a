package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const furniture = `Problem: furniture
Sense: MAX;
Fun: c1: 3; c2: 2; c3: 5;
Constraint: c1: 1; c2: 1; c3: 4; sign: "lwe";
Constraint: c1: 1; c2: 0; c3: 3; sign: "lwe";
Constraint: c1: 0; c2: 1; c3: 2; sign: "lwe";
`

const unbounded = `Problem: unbounded
Sense: MAX;
Fun: c1: 1; c2: 1;
Constraint: c1: 1; c2: -1; c3: 1; sign: "lwe";
`

const redundant = `Problem: redundant
Sense: MAX;
Fun: c1: 1; c2: 0;
Constraint: c1: 1; c2: 1; c3: 2; sign: "eq";
Constraint: c1: 2; c2: 2; c3: 4; sign: "eq";
`

func writeModel(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	c := NewRootCommand(&out)
	c.SetErr(io.Discard)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestSolveSimplex(t *testing.T) {
	out, err := run("solve", writeModel(t, furniture))
	require.NoError(t, err)
	assert.Contains(t, out, "Iteration 0")
	assert.Contains(t, out, "m+1")
	assert.Contains(t, out, "Solution found: 11")
	assert.Contains(t, out, "x1: 3; x2: 1")
	assert.Contains(t, out, "Objective with constant term: 16")
}

func TestSolveQuiet(t *testing.T) {
	out, err := run("solve", "--quiet", writeModel(t, furniture))
	require.NoError(t, err)
	assert.NotContains(t, out, "m+1")
	assert.Contains(t, out, "Solution found: 11")
}

func TestSolveUnbounded(t *testing.T) {
	for _, solver := range []string{"simplex", "gonum"} {
		out, err := run("solve", "--quiet", "--solver", solver, writeModel(t, unbounded))
		require.NoError(t, err, solver)
		assert.Contains(t, out, "Model can't be solved", solver)
	}
}

func TestSolveBadInput(t *testing.T) {
	_, err := run("solve", writeModel(t, "Sense: MAX;\n"))
	assert.Error(t, err)

	_, err = run("solve", "--solver", "cplex", writeModel(t, furniture))
	assert.Error(t, err)
}

func TestSolveGonum(t *testing.T) {
	out, err := run("solve", "--solver", "gonum", writeModel(t, furniture))
	require.NoError(t, err)
	assert.NotContains(t, out, "m+1")
	assert.Contains(t, out, "Solution found: ")
	assert.Contains(t, out, "x1: ")
}

func TestCheck(t *testing.T) {
	out, err := run("check", writeModel(t, furniture))
	require.NoError(t, err)
	assert.Contains(t, out, "SOLVER")
	assert.Contains(t, out, "solvers agree")

	out, err = run("check", writeModel(t, redundant))
	require.NoError(t, err)
	assert.Contains(t, out, "solvers agree")

	out, err = run("check", writeModel(t, unbounded))
	require.NoError(t, err)
	assert.Contains(t, out, "unbounded")
}
