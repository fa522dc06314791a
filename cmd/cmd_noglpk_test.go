//go:build noglpk

package cmd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSolveWithoutGLPK(t *testing.T) {
	_, err := run("solve", "--solver", "glpk", writeModel(t, furniture))
	assert.True(t, errors.Is(err, errNoGLPK))

	_, err = run("solve", "--format", "mps", writeModel(t, furniture))
	assert.True(t, errors.Is(err, errNoGLPK))
}
