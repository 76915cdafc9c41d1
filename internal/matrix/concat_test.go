package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHCat(t *testing.T) {
	a := MustParse("1 2; 3 4")
	b := MustParse("5; 6")

	assertMatEqual(t, MustParse("1 2 5; 3 4 6"), HCat(a, b))
	assertMatEqual(t, MustParse("1 2 5 1 2; 3 4 6 3 4"), HCat(a, b, a))

	// Single argument is a copy.
	single := HCat(a)
	single.Set(1, 1, 99)
	assert.Equal(t, 1.0, a.At(1, 1))

	assert.Panics(t, func() { HCat() })
	assert.Panics(t, func() { HCat(a, MustParse("1 2 3")) }, "row counts must match")
}

func TestVCat(t *testing.T) {
	a := MustParse("1 2")
	b := MustParse("3 4")

	c := VCat(a, b)
	r, cols := c.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 1.0, c.At(1, 1))
	assert.Equal(t, 3.0, c.At(2, 1))

	assertMatEqual(t, MustParse("1 2; 3 4; 1 2"), VCat(a, b, a))

	assert.Panics(t, func() { VCat() })
	assert.Panics(t, func() { VCat(a, MustParse("1; 2")) }, "column counts must match")
}

func TestBlock(t *testing.T) {
	a := MustParse("1 2; 3 4")
	b := MustParse("5 6; 7 8")
	c := MustParse("9 10; 11 12")
	d := MustParse("13 14; 15 16")

	m, err := Block([][]*Matrix{
		{a, b},
		{c, d},
	})
	require.NoError(t, err)
	assertMatEqual(t, MustParse(`
		1 2 5 6
		3 4 7 8
		9 10 13 14
		11 12 15 16`), m)
}

func TestBlock_Errors(t *testing.T) {
	_, err := Block(nil)
	require.Error(t, err)

	_, err = Block([][]*Matrix{{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 is empty")
}

func TestConcatRoundTrip(t *testing.T) {
	// [A B] stacked under itself equals the block [[A B]; [A B]].
	a := MustParse("1 2; 3 4")
	b := MustParse("5 6; 7 8")

	ab := HCat(a, b)
	viaBlock, err := Block([][]*Matrix{{a, b}, {a, b}})
	require.NoError(t, err)
	assertMatEqual(t, VCat(ab, ab), viaBlock)
}
