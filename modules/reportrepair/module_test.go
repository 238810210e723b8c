package reportrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

const example = `1721
979
366
299
675
1456`

func TestPart1(t *testing.T) {
	got, err := Part1(example, 2020)
	require.NoError(t, err)
	assert.Equal(t, 514579, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(example, 2020)
	require.NoError(t, err)
	assert.Equal(t, 241861950, got)
}

func TestErrors(t *testing.T) {
	_, err := Part1(example, 1)
	assert.ErrorIs(t, err, registry.ErrNoSolution)

	_, err = Part2("1010\n1010", 2020)
	assert.ErrorIs(t, err, registry.ErrNoSolution, "two entries cannot form a triple")

	_, err = Part1("1721\nabc", 2020)
	assert.ErrorIs(t, err, textutil.ErrSyntax)

	_, err = Part1("", 2020)
	assert.ErrorIs(t, err, textutil.ErrSyntax)
}

func TestPart1_DoesNotReuseEntry(t *testing.T) {
	_, err := Part1("1010\n5", 2020)
	assert.ErrorIs(t, err, registry.ErrNoSolution)

	got, err := Part1("1010\n1010", 2020)
	require.NoError(t, err)
	assert.Equal(t, 1010*1010, got)
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	p, ok := r.Lookup("2020/01")
	require.True(t, ok)
	params, err := p.BindParams(nil)
	require.NoError(t, err)
	target, err := params.Int("target")
	require.NoError(t, err)
	assert.Equal(t, 2020, target)
}
