package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		rows  int
		cols  int
		check func(t *testing.T, m *Matrix)
	}{
		{
			name: "space separated",
			expr: "1 2 3; 4 5 6",
			rows: 2,
			cols: 3,
			check: func(t *testing.T, m *Matrix) {
				assert.Equal(t, 1.0, m.At(1, 1))
				assert.Equal(t, 6.0, m.At(2, 3))
			},
		},
		{
			name: "comma separated",
			expr: "1,2,3;4,5,6",
			rows: 2,
			cols: 3,
			check: func(t *testing.T, m *Matrix) {
				assert.Equal(t, 2.0, m.At(1, 2))
			},
		},
		{
			name: "mixed separators",
			expr: "1,2; 3 4",
			rows: 2,
			cols: 2,
			check: func(t *testing.T, m *Matrix) {
				assert.Equal(t, 3.0, m.At(2, 1))
			},
		},
		{
			name: "newline row separator",
			expr: "1 2\n3 4",
			rows: 2,
			cols: 2,
		},
		{
			name: "trailing semicolon ignored",
			expr: "1 2; 3 4;",
			rows: 2,
			cols: 2,
		},
		{
			name: "blank rows skipped",
			expr: "\n1 2\n\n3 4\n",
			rows: 2,
			cols: 2,
		},
		{
			name: "single row vector",
			expr: "1 2 3 4",
			rows: 1,
			cols: 4,
		},
		{
			name: "single element",
			expr: "42",
			rows: 1,
			cols: 1,
			check: func(t *testing.T, m *Matrix) {
				assert.Equal(t, 42.0, m.At(1, 1))
			},
		},
		{
			name: "scientific notation and negatives",
			expr: "1e3 -2.5; 0.5 1e-2",
			rows: 2,
			cols: 2,
			check: func(t *testing.T, m *Matrix) {
				assert.Equal(t, 1000.0, m.At(1, 1))
				assert.Equal(t, -2.5, m.At(1, 2))
				assert.Equal(t, 0.01, m.At(2, 2))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.expr)
			require.NoError(t, err)
			r, c := m.Dims()
			assert.Equal(t, tt.rows, r)
			assert.Equal(t, tt.cols, c)
			if tt.check != nil {
				tt.check(t, m)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "empty literal",
			expr: "",
			want: "empty matrix literal",
		},
		{
			name: "only separators",
			expr: " ; ; ",
			want: "empty matrix literal",
		},
		{
			name: "ragged rows",
			expr: "1 2; 3",
			want: "row 2 has 1 columns, expected 2",
		},
		{
			name: "bad token",
			expr: "1 x; 3 4",
			want: `row 1, column 2: invalid number "x"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMustParse(t *testing.T) {
	m := MustParse("1 2; 3 4")
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	assert.Panics(t, func() { MustParse("1 2; 3") })
}
