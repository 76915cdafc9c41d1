package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse builds a matrix from a MATLAB-style literal.
//
// Rows are separated by semicolons or newlines, columns by spaces
// and/or commas. Blank rows are skipped. Values are parsed as float64,
// so scientific notation is accepted.
//
// Example:
//
//	a, err := matrix.Parse("1 2 3; 4 5 6")
//	b, err := matrix.Parse("1,2,3\n4,5,6")
func Parse(expr string) (*Matrix, error) {
	rows := strings.Split(strings.ReplaceAll(expr, "\n", ";"), ";")

	var data []float64
	cols := 0
	nrows := 0
	for _, row := range rows {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(row, ",", " "))
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", nrows+1, len(fields), cols)
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: invalid number %q", nrows+1, i+1, f)
			}
			data = append(data, v)
		}
		nrows++
	}

	if nrows == 0 {
		return nil, fmt.Errorf("empty matrix literal")
	}
	return New(nrows, cols, data)
}

// MustParse is like Parse but panics on error. Intended for literals
// written directly in source.
//
// Example:
//
//	identityish := matrix.MustParse("1 0; 0 1")
func MustParse(expr string) *Matrix {
	m, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return m
}
