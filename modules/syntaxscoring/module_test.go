package syntaxscoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

const example = `[({(<(())[]>[[{[]{<()<>>
[(()[<>])]({[<{<<[]>>(
{([(<{}[<>[]}>{[]{[(<()>
(((({<>}<{<{<>}{[]{[]{}
[[<[([]))<([[{}[[()]]]
[{[{({}]{}}([{[{{{}}([]
{<[[]]>}<{[{[{[]{()[[[]
[<(<(<(<{}))><([]([]()
<{([([[(<>()){}]>(<<{{
<{([{{}}[<[[[<>{}]]]>[]]`

func TestExample(t *testing.T) {
	p1, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, 26397, p1)

	p2, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, 288957, p2)
}

func TestCheck(t *testing.T) {
	illegal, missing, err := Check("[({(<(())[]>[[{[]{<()<>>")
	require.NoError(t, err)
	assert.Zero(t, illegal)
	assert.Equal(t, "}}]])})]", string(missing))

	illegal, _, err = Check("{([(<{}[<>[]}>{[]{[(<()>")
	require.NoError(t, err)
	assert.Equal(t, byte('}'), illegal)

	illegal, missing, err = Check("([]{})")
	require.NoError(t, err)
	assert.Zero(t, illegal)
	assert.Empty(t, missing)
}

func TestErrors(t *testing.T) {
	_, err := Part1("(a)")
	assert.ErrorIs(t, err, textutil.ErrSyntax)

	_, err = Part2("(\n[")
	assert.ErrorIs(t, err, registry.ErrNoSolution)
}
