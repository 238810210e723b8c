package toboggan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/textutil"
)

const example = `..##.......
#...#...#..
.#....#..#.
..#.#...#.#
.#...##..#.
..#.##.....
.#.#.#....#
.#........#
#.##...#...
#...##....#
.#..#...#.#`

func TestExample(t *testing.T) {
	p1, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 7, p1)

	p2, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 336, p2)
}

func TestMap_Trees(t *testing.T) {
	m, err := ParseMap(example)
	require.NoError(t, err)

	want := map[Slope]int{{1, 1}: 2, {3, 1}: 7, {5, 1}: 3, {7, 1}: 4, {1, 2}: 2}
	for _, s := range Slopes {
		assert.Equal(t, want[s], m.Trees(s), "slope %+v", s)
	}
}

func TestParseMap_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":        "",
		"ragged":       "..#\n.#",
		"unknown cell": "..x",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMap(input)
			assert.ErrorIs(t, err, textutil.ErrSyntax)
		})
	}
}
