//go:build !noglpk

package cmd

import (
	"q.log/lpsolve/external/glpksolver"
	"q.log/lpsolve/model"
)

func newGLPKSolver() (model.Solver, error) {
	return glpksolver.New(), nil
}

func readMPS(path string, sense model.Sense) (*model.Model, error) {
	return glpksolver.ReadMPS(path, sense)
}
