//go:build noglpk

package cmd

import (
	"github.com/pkg/errors"
	"q.log/lpsolve/model"
)

// errNoGLPK is returned by the GLPK solver and MPS reader of binaries built
// with the noglpk tag.
var errNoGLPK = errors.New("built without GLPK support")

func newGLPKSolver() (model.Solver, error) {
	return nil, errNoGLPK
}

func readMPS(string, model.Sense) (*model.Model, error) {
	return nil, errNoGLPK
}
