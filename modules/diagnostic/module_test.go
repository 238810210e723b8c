package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

const example = `00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010`

func TestExample(t *testing.T) {
	p1, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 198, p1)

	p2, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 230, p2)
}

func TestErrors(t *testing.T) {
	for _, input := range []string{"", "101\n10", "102"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, textutil.ErrSyntax, input)
	}

	_, err := Part2("101\n101")
	assert.ErrorIs(t, err, registry.ErrNoSolution, "duplicates never narrow to one value")
}
