package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "whitespace only", input: " \n\t\n", expected: nil},
		{name: "crlf", input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "surrounding blank lines", input: "\n\na\nb\n\n", expected: []string{"a", "b"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Lines(tc.input))
		})
	}
}

func TestBlocks(t *testing.T) {
	blocks := Blocks("abc\n\na\nb\n\n\n\nc\n")
	assert.Equal(t, [][]string{{"abc"}, {"a", "b"}, {"c"}}, blocks)
}

func TestInts(t *testing.T) {
	ints, err := Ints("3,4, 3\n1 2")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 3, 1, 2}, ints)

	_, err = Ints("1,x")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestDigitGrid(t *testing.T) {
	grid, err := DigitGrid("123\n456")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, grid)

	_, err = DigitGrid("12\n345")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = DigitGrid("1a")
	assert.ErrorIs(t, err, ErrSyntax)
}
