package instance

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/lpsolve/model"
)

const furniture = `Problem: furniture
Sense: MAX;
Fun: c1: 3; c2: 2; c3: 0;
Constraint: c1: 1; c2: 1; c3: 4; sign: "lwe";
Constraint: c1: 1; c2: 0; c3: 3; sign: "lwe";
# comment lines are ignored
Constraint: c1: 0; c2: 1; c3: 2; sign: "lwe";
`

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader(furniture))
	require.NoError(t, err)

	assert.Equal(t, "furniture", m.Name)
	assert.Equal(t, model.Maximize, m.Sense)
	assert.Equal(t, model.Objective{C1: 3, C2: 2}, m.Objective)
	require.Len(t, m.Constraints, 3)
	assert.Equal(t, model.Constraint{C1: 1, C2: 1, C3: 4, Sign: model.LWE}, m.Constraints[0])
	assert.Equal(t, model.Constraint{C1: 0, C2: 1, C3: 2, Sign: model.LWE}, m.Constraints[2])
}

func TestParseNegativeAndSigns(t *testing.T) {
	src := `Problem:
Sense: MIN;
Fun: c1: -1; c2: 4;
Constraint: c1: -2; c2: 1; c3: -3; sign: "gte";
Constraint: c1: 1; c2: 1; c3: 5; sign: "eq";
Constraint: c1: 1; c2: 0; c3: 1; sign: "gt";
`
	m, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, model.Minimize, m.Sense)
	assert.Equal(t, model.Objective{C1: -1, C2: 4}, m.Objective)
	assert.Equal(t, model.Constraint{C1: -2, C2: 1, C3: -3, Sign: model.GTE}, m.Constraints[0])
	assert.Equal(t, model.EQ, m.Constraints[1].Sign)
	assert.Equal(t, model.GT, m.Constraints[2].Sign)
}

func TestParseErrors(t *testing.T) {
	for name, src := range map[string]string{
		"no problem tag": "Sense: MAX;\nFun: c1: 1; c2: 1;\n",
		"empty":          "",
		"bad sense":      "Problem:\nSense: UP;\n",
		"bad number":     "Problem:\nSense: MAX;\nFun: c1: x; c2: 1;\n",
		"bad sign":       "Problem:\nSense: MAX;\nFun: c1: 1; c2: 1;\nConstraint: c1: 1; c2: 1; c3: 1; sign: \"<=\";\n",
		"missing sign":   "Problem:\nSense: MAX;\nFun: c1: 1; c2: 1;\nConstraint: c1: 1; c2: 1; c3: 1;\n",
		"missing c3":     "Problem:\nSense: MAX;\nFun: c1: 1; c2: 1;\nConstraint: c1: 1; c2: 1; sign: \"lwe\";\n",
		"unknown token":  "Problem:\nSense: MAX;\nFun: c1: 1; c2: 1; c4: 2;\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestParseIncompleteModel(t *testing.T) {
	_, err := Parse(strings.NewReader("Problem:\nFun: c1: 1; c2: 1;\nConstraint: c1: 1; c2: 1; c3: 1; sign: \"lwe\";\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidModel))

	_, err = Parse(strings.NewReader("Problem:\nSense: MAX;\nConstraint: c1: 1; c2: 1; c3: 1; sign: \"lwe\";\n"))
	assert.True(t, errors.Is(err, model.ErrInvalidModel))
}

func TestParseErrorLine(t *testing.T) {
	_, err := Parse(strings.NewReader("Problem:\nSense: MAX;\nFun: c1: 1; c2: 1;\nConstraint: c1: 1; c2: 1; c3: z; sign: \"lwe\";\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestConstructModelFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	require.NoError(t, os.WriteFile(path, []byte(furniture), 0o600))

	m, err := NewReader(path).ConstructModelFromFile()
	require.NoError(t, err)
	assert.Len(t, m.Constraints, 3)

	_, err = NewReader(filepath.Join(t.TempDir(), "missing.txt")).ConstructModelFromFile()
	assert.Error(t, err)
}
