package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectCombinations(n, k int) [][]int {
	var out [][]int
	c := newCombinations(n, k)
	for {
		pick, ok := c.next()
		if !ok {
			return out
		}
		out = append(out, append([]int(nil), pick...))
	}
}

func TestCombinations_LexicographicOrder(t *testing.T) {
	want := [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}
	assert.Equal(t, want, collectCombinations(4, 2))
}

func TestCombinations_ChooseAll(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}}, collectCombinations(3, 3))
}

func TestCombinations_ChooseOne(t *testing.T) {
	assert.Equal(t, [][]int{{0}, {1}, {2}}, collectCombinations(3, 1))
}

func TestCombinations_KLargerThanN(t *testing.T) {
	assert.Empty(t, collectCombinations(2, 3))
}

func TestCombinations_ZeroK(t *testing.T) {
	assert.Empty(t, collectCombinations(3, 0))
}
