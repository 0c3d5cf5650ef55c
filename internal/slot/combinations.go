package slot

// combinations enumerates all k-element index subsets of {0..n-1} in
// lexicographic order. The zero value is not usable; construct with
// newCombinations.
type combinations struct {
	n, k    int
	indices []int
	done    bool
}

func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k, done: k > n || k <= 0}
}

// next returns the following index subset. The returned slice is reused
// between calls and must not be retained. The second return value is false
// once the enumeration is exhausted.
func (c *combinations) next() ([]int, bool) {
	if c.done {
		return nil, false
	}

	if c.indices == nil {
		c.indices = make([]int, c.k)
		for i := range c.indices {
			c.indices[i] = i
		}
		return c.indices, true
	}

	// Find the rightmost index that can still move up.
	i := c.k - 1
	for i >= 0 && c.indices[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true
		return nil, false
	}

	c.indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return c.indices, true
}
