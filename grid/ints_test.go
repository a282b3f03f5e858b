package grid_test

import (
	"testing"

	"github.com/katalvlaran/ridgegrid/grid"
	"github.com/stretchr/testify/assert"
)

// TestSq checks squaring on both signs.
func TestSq(t *testing.T) {
	assert.Equal(t, 9, grid.Sq(3))
	assert.Equal(t, 9, grid.Sq(-3))
	assert.Equal(t, 0, grid.Sq(0))
}

// TestCeilDiv walks the round-up division ladder around two divisors.
func TestCeilDiv(t *testing.T) {
	cases := []struct {
		dividend, divisor, want int
	}{
		{9, 3, 3}, {8, 3, 3}, {7, 3, 3}, {6, 3, 2},
		{20, 4, 5}, {19, 4, 5}, {18, 4, 5}, {17, 4, 5}, {16, 4, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.CeilDiv(tc.dividend, tc.divisor),
			"CeilDiv(%d, %d)", tc.dividend, tc.divisor)
	}
}
