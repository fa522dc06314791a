package instance

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"q.log/lpsolve/model"
)

const (
	problemTag    = "Problem:"
	senseTag      = "Sense:"
	objectiveTag  = "Fun:"
	constraintTag = "Constraint:"

	c1Token   = "c1:"
	c2Token   = "c2:"
	c3Token   = "c3:"
	signToken = "sign:"
)

// Reader reads a model description file to construct a model
type Reader struct {
	filename string
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
	}
}

// ConstructModelFromFile parses the file the reader was created for.
func (r *Reader) ConstructModelFromFile() (*model.Model, error) {
	f, err := os.Open(r.filename)
	if err != nil {
		return nil, errors.Wrap(err, "open model file")
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", r.filename)
	}
	return m, nil
}

// Parse reads a model description. The first line must carry the
// "Problem:" tag; every later line is matched against the Sense, Fun and
// Constraint tags and ignored when it has none of them.
func Parse(rd io.Reader) (*model.Model, error) {
	sc := bufio.NewScanner(rd)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read model")
		}
		return nil, errors.New("empty model description")
	}
	first := sc.Text()
	idx := strings.Index(first, problemTag)
	if idx == -1 {
		return nil, errors.Errorf("line 1: model files should start with %q tag", problemTag)
	}

	m := &model.Model{Name: strings.TrimSpace(first[idx+len(problemTag):])}
	hasObjective := false
	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		var err error
		switch {
		case strings.Contains(line, senseTag):
			m.Sense, err = parseSense(after(line, senseTag))
		case strings.Contains(line, objectiveTag):
			m.Objective, err = parseObjective(after(line, objectiveTag))
			hasObjective = true
		case strings.Contains(line, constraintTag):
			var c model.Constraint
			c, err = parseConstraint(after(line, constraintTag))
			m.Constraints = append(m.Constraints, c)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read model")
	}

	if !hasObjective {
		return nil, errors.Wrapf(model.ErrInvalidModel, "missing %q line", objectiveTag)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func after(line, tag string) string {
	return line[strings.Index(line, tag)+len(tag):]
}

func parseSense(s string) (model.Sense, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	return model.ParseSense(s)
}

// expression is the set of tokens found in a Fun or Constraint line.
type expression struct {
	values  map[string]int
	sign    model.Sign
	hasSign bool
}

func (e expression) require(tokens ...string) error {
	for _, tok := range tokens {
		if _, ok := e.values[tok]; !ok {
			return errors.Errorf("missing %q", tok)
		}
	}
	return nil
}

func parseExpression(s string) (expression, error) {
	e := expression{values: map[string]int{}}
	for _, token := range strings.Split(s, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.HasPrefix(token, signToken) {
			v := strings.TrimSpace(strings.TrimPrefix(token, signToken))
			sign, err := model.ParseSign(strings.Trim(v, `"`))
			if err != nil {
				return e, err
			}
			e.sign = sign
			e.hasSign = true
			continue
		}

		matched := false
		for _, name := range []string{c1Token, c2Token, c3Token} {
			if !strings.HasPrefix(token, name) {
				continue
			}
			v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(token, name)))
			if err != nil {
				return e, errors.Wrapf(err, "value of %q", name)
			}
			e.values[name] = v
			matched = true
		}
		if !matched {
			return e, errors.Errorf("unexpected token %q", token)
		}
	}
	return e, nil
}

func parseObjective(s string) (model.Objective, error) {
	e, err := parseExpression(s)
	if err != nil {
		return model.Objective{}, err
	}
	if err := e.require(c1Token, c2Token); err != nil {
		return model.Objective{}, err
	}
	if e.hasSign {
		return model.Objective{}, errors.New("objective function takes no sign")
	}
	return model.Objective{
		C1: e.values[c1Token],
		C2: e.values[c2Token],
		C3: e.values[c3Token],
	}, nil
}

func parseConstraint(s string) (model.Constraint, error) {
	e, err := parseExpression(s)
	if err != nil {
		return model.Constraint{}, err
	}
	if err := e.require(c1Token, c2Token, c3Token); err != nil {
		return model.Constraint{}, err
	}
	if !e.hasSign {
		return model.Constraint{}, errors.Errorf("missing %q", signToken)
	}
	return model.Constraint{
		C1:   e.values[c1Token],
		C2:   e.values[c2Token],
		C3:   e.values[c3Token],
		Sign: e.sign,
	}, nil
}
