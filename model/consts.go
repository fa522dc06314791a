package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sense is the optimization direction.
type Sense int

const (
	// starts at 1 so that an unset sense fails Validate
	Maximize Sense = iota + 1
	Minimize
)

// ParseSense translates MAX or MIN.
func ParseSense(s string) (Sense, error) {
	switch s {
	case "MAX":
		return Maximize, nil
	case "MIN":
		return Minimize, nil
	}
	return 0, errors.Errorf("unknown sense %q", s)
}

func (s Sense) Valid() bool {
	return s == Maximize || s == Minimize
}

func (s Sense) String() string {
	switch s {
	case Maximize:
		return "MAX"
	case Minimize:
		return "MIN"
	}
	return fmt.Sprintf("Sense(%d)", int(s))
}

// Sign is the relation of a constraint.
type Sign int

const (
	GT Sign = iota + 1
	GTE
	LW
	LWE
	EQ
)

var signNames = map[string]Sign{
	"gt":  GT,
	"gte": GTE,
	"lw":  LW,
	"lwe": LWE,
	"eq":  EQ,
}

// ParseSign translates gt, gte, lw, lwe or eq.
func ParseSign(s string) (Sign, error) {
	sign, ok := signNames[s]
	if !ok {
		return 0, errors.Errorf("unknown sign %q", s)
	}
	return sign, nil
}

func (s Sign) Valid() bool {
	return s >= GT && s <= EQ
}

// Mirror returns the relation obtained by multiplying both sides by -1.
func (s Sign) Mirror() Sign {
	switch s {
	case GT:
		return LW
	case GTE:
		return LWE
	case LW:
		return GT
	case LWE:
		return GTE
	case EQ:
		return EQ
	}
	panic(fmt.Sprintf("model: unknown sign %d", s))
}

func (s Sign) String() string {
	switch s {
	case GT:
		return "gt"
	case GTE:
		return "gte"
	case LW:
		return "lw"
	case LWE:
		return "lwe"
	case EQ:
		return "eq"
	}
	return fmt.Sprintf("Sign(%d)", int(s))
}
