package simplex

import "fmt"

// isUnitColumn reports whether col is the r-th standard basis vector.
func isUnitColumn(col []float64, r int) bool {
	for i, v := range col {
		if i == r && v != 1 {
			return false
		}
		if i != r && v != 0 {
			return false
		}
	}
	return true
}

// unitColumnFor returns the index of the first variable whose column is a
// unit column for row r, or -1.
func unitColumnFor(vars []Variable, r int) int {
	for j, v := range vars {
		if isUnitColumn(v.Column, r) {
			return j
		}
	}
	return -1
}

// AddArtificialVariables appends an artificial variable y1, y2... for every
// row that no existing column covers with a unit vector. After it returns,
// every row has a unit column, so an initial basis always exists.
func AddArtificialVariables(vars []Variable, rows int) []Variable {
	var missing []int
	for r := 0; r < rows; r++ {
		if unitColumnFor(vars, r) == -1 {
			missing = append(missing, r)
		}
	}

	for i, r := range missing {
		col := make([]float64, rows)
		col[r] = 1
		vars = append(vars, Variable{
			Name:   fmt.Sprintf("y%d", i+1),
			Kind:   Artificial,
			Cost:   PenaltyCost(),
			Column: col,
		})
	}
	return vars
}
