package model

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSense(t *testing.T) {
	s, err := ParseSense("MAX")
	require.NoError(t, err)
	assert.Equal(t, Maximize, s)

	s, err = ParseSense("MIN")
	require.NoError(t, err)
	assert.Equal(t, Minimize, s)

	_, err = ParseSense("max")
	assert.Error(t, err)
}

func TestParseSign(t *testing.T) {
	for name, want := range map[string]Sign{"gt": GT, "gte": GTE, "lw": LW, "lwe": LWE, "eq": EQ} {
		got, err := ParseSign(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
	_, err := ParseSign("<=")
	assert.Error(t, err)
}

func TestNormalized(t *testing.T) {
	c := Constraint{C1: 1, C2: -2, C3: -4, Sign: GTE}
	n := c.Normalized()
	assert.Equal(t, Constraint{C1: -1, C2: 2, C3: 4, Sign: LWE}, n)

	eq := Constraint{C1: 1, C2: 1, C3: -1, Sign: EQ}
	assert.Equal(t, EQ, eq.Normalized().Sign)

	pos := Constraint{C1: 1, C2: 1, C3: 3, Sign: LW}
	assert.Equal(t, pos, pos.Normalized())
}

func TestHolds(t *testing.T) {
	x := [NumVars]float64{1, 2}
	assert.True(t, Constraint{C1: 1, C2: 1, C3: 3, Sign: LWE}.Holds(x, 1e-9))
	assert.True(t, Constraint{C1: 1, C2: 1, C3: 3, Sign: EQ}.Holds(x, 1e-9))
	assert.True(t, Constraint{C1: 1, C2: 1, C3: 3, Sign: GT}.Holds(x, 1e-9))
	assert.False(t, Constraint{C1: 1, C2: 1, C3: 2, Sign: LW}.Holds(x, 1e-9))
	assert.False(t, Constraint{C1: 2, C2: 0, C3: 3, Sign: GTE}.Holds(x, 1e-9))
}

func TestValidate(t *testing.T) {
	m := &Model{Constraints: []Constraint{{C1: 1, C3: 1, Sign: LWE}}}
	err := m.Validate()
	assert.True(t, errors.Is(err, ErrInvalidModel))

	m.Sense = Maximize
	assert.NoError(t, m.Validate())

	m.Constraints = nil
	assert.True(t, errors.Is(m.Validate(), ErrInvalidModel))
}

func TestValidateEmptyConstraint(t *testing.T) {
	m := &Model{
		Sense:       Minimize,
		Constraints: []Constraint{{C3: 5, Sign: LWE}},
	}
	assert.NoError(t, m.Validate())

	c := m.Constraints[0]
	assert.True(t, c.Empty())
	assert.True(t, c.Holds([NumVars]float64{7, 3}, 1e-9))
	assert.False(t, Constraint{C3: 5, Sign: GTE}.Holds([NumVars]float64{}, 1e-9))
}

func TestMatrix(t *testing.T) {
	m := &Model{
		Sense: Maximize,
		Constraints: []Constraint{
			{C1: 1, C2: 1, C3: 4, Sign: LWE},
			{C1: 1, C2: 0, C3: 3, Sign: LWE},
		},
	}
	a, b := m.Matrix()
	r, c := a.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, NumVars, c)
	assert.Equal(t, []float64{1, 1}, a.RawRowView(0))
	assert.Equal(t, []float64{4, 3}, b)
}

func TestUnsolvableErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrUnbounded, ErrUnsolvable))
	assert.True(t, errors.Is(ErrInfeasible, ErrUnsolvable))
	assert.False(t, errors.Is(ErrIterationLimit, ErrUnsolvable))
}
