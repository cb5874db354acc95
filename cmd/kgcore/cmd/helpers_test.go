package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgcore/kgcore/internal/vertexset"
)

func TestSortedVertexLine(t *testing.T) {
	set := vertexset.VertexSetOf(3, 1, 2)
	assert.Equal(t, "1 2 3", sortedVertexLine(set))
}

func TestSortedVertexLine_Nil(t *testing.T) {
	assert.Equal(t, "", sortedVertexLine(nil))
}

func TestParseKG(t *testing.T) {
	cases := []struct {
		in   string
		k, g int
		ok   bool
	}{
		{"2 3", 2, 3, true},
		{"2,3", 2, 3, true},
		{"  4\t5  ", 4, 5, true},
		{"", 0, 0, false},
		{"only-one", 0, 0, false},
		{"a b", 0, 0, false},
	}
	for _, c := range cases {
		k, g, ok := parseKG(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if ok {
			assert.Equal(t, c.k, k)
			assert.Equal(t, c.g, g)
		}
	}
}
