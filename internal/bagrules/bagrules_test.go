package bagrules

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/internal/textutil"
)

const example = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.`

const darkChain = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.`

var shinyGold = BagSpec{Modifier: "shiny", Color: "gold"}

func mustParse(t *testing.T, text string) *Graph {
	t.Helper()
	g, err := Parse(text)
	require.NoError(t, err)
	return g
}

func TestParse_Example(t *testing.T) {
	g := mustParse(t, example)

	assert.Len(t, g.Keys(), 9)
	assert.Equal(t, 9, g.Len())
	assert.Equal(t, []Edge{
		{Quantity: 1, Bag: BagSpec{"bright", "white"}},
		{Quantity: 2, Bag: BagSpec{"muted", "yellow"}},
	}, g.Edges(BagSpec{"light", "red"}))
	assert.Empty(t, g.Edges(BagSpec{"faded", "blue"}))
	assert.Nil(t, g.Edges(BagSpec{"no", "such"}))
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		line  int
	}{
		{name: "missing period", input: "light red bags contain 1 bright white bag", line: 1},
		{name: "missing contain", input: "light red bags hold 1 bright white bag.", line: 1},
		{name: "zero quantity", input: "light red bags contain 0 bright white bags.", line: 1},
		{name: "missing quantity", input: "light red bags contain bright white bags.", line: 1},
		{name: "three word color", input: "light red bags contain 1 very bright white bag.", line: 1},
		{name: "bad second line", input: "faded blue bags contain no other bags.\n\nlight red bags contain 1 bag.", line: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tc.line, syntaxErr.Line)
			assert.ErrorIs(t, err, textutil.ErrSyntax)
		})
	}
}

func TestParse_ToleratesWhitespace(t *testing.T) {
	g := mustParse(t, "\r\n  faded blue bags contain no other bags.\r\n\r\nshiny gold bags contain 1 faded blue bag.\r\n")
	assert.Equal(t, []BagSpec{{"faded", "blue"}, shinyGold}, g.Keys())
}

func TestParse_RepeatedSubjectAccumulates(t *testing.T) {
	g := mustParse(t, "shiny gold bags contain 1 faded blue bag.\nshiny gold bags contain 2 dark red bags.")
	assert.Len(t, g.Keys(), 1)
	assert.Len(t, g.Edges(shinyGold), 2)
}

func TestCountContainers(t *testing.T) {
	g := mustParse(t, example)
	assert.Equal(t, 4, g.CountContainers(shinyGold))
}

func TestContainers(t *testing.T) {
	g := mustParse(t, example)

	got := g.Containers(shinyGold)
	assert.Equal(t, []BagSpec{
		{"bright", "white"},
		{"dark", "orange"},
		{"light", "red"},
		{"muted", "yellow"},
	}, got)
	assert.Len(t, got, g.CountContainers(shinyGold))
	assert.Empty(t, g.Containers(BagSpec{"light", "red"}))
}

func TestContains(t *testing.T) {
	g := mustParse(t, example)

	assert.True(t, g.Contains(BagSpec{"light", "red"}, shinyGold))
	assert.True(t, g.Contains(BagSpec{"light", "red"}, BagSpec{"dotted", "black"}))
	assert.False(t, g.Contains(shinyGold, BagSpec{"light", "red"}))
	assert.False(t, g.Contains(shinyGold, shinyGold))
	assert.False(t, g.Contains(BagSpec{"no", "such"}, shinyGold))
}

func TestTotalContained(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "example", input: example, expected: 32},
		{name: "dark chain", input: darkChain, expected: 126},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.input)
			total, err := g.TotalContained(shinyGold)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, total)
		})
	}
}

func TestLeafRoot(t *testing.T) {
	g := mustParse(t, example)
	leaf := BagSpec{"faded", "blue"}

	total, err := g.TotalContained(leaf)
	require.NoError(t, err)
	assert.Zero(t, total)

	for _, needle := range g.Keys() {
		assert.False(t, g.Contains(leaf, needle), "leaf should not contain %s", needle)
	}

	total, err = g.TotalContained(BagSpec{"no", "such"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestParse_Idempotent(t *testing.T) {
	a := mustParse(t, example)
	b := mustParse(t, example)

	for _, k := range a.Keys() {
		ta, err := a.TotalContained(k)
		require.NoError(t, err)
		tb, err := b.TotalContained(k)
		require.NoError(t, err)
		assert.Equal(t, ta, tb, "total for %s", k)
		assert.Equal(t, a.Contains(k, shinyGold), b.Contains(k, shinyGold), "contains for %s", k)
	}
	assert.Equal(t, a.CountContainers(shinyGold), b.CountContainers(shinyGold))
}

func TestString_RoundTrip(t *testing.T) {
	for name, input := range map[string]string{"example": example, "dark chain": darkChain} {
		t.Run(name, func(t *testing.T) {
			g := mustParse(t, input)
			again := mustParse(t, g.String())

			sortEdges := cmpopts.SortSlices(func(a, b Edge) bool {
				return a.Bag.String() < b.Bag.String()
			})
			if diff := cmp.Diff(g.Rules(), again.Rules(), sortEdges); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestString_Grammar(t *testing.T) {
	g := mustParse(t, "shiny gold bags contain 1 dark olive bags, 2 vibrant plum bag.\nvibrant plum bags contain no other bags.")
	lines := strings.Split(strings.TrimSpace(g.String()), "\n")
	assert.Equal(t, []string{
		"shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.",
		"vibrant plum bags contain no other bags.",
	}, lines)
}

func TestReverse(t *testing.T) {
	g := mustParse(t, example)
	rev := g.Reverse()

	var parents []string
	for _, e := range rev.Edges(shinyGold) {
		parents = append(parents, e.Bag.String())
	}
	sort.Strings(parents)
	assert.Equal(t, []string{"bright white", "muted yellow"}, parents)
	assert.Empty(t, rev.Edges(BagSpec{"light", "red"}))
}

func TestCycles(t *testing.T) {
	cyclic := mustParse(t, `shiny gold bags contain 1 dark red bag.
dark red bags contain 2 dark blue bags.
dark blue bags contain 1 shiny gold bag.
light red bags contain 1 shiny gold bag.`)

	err := cyclic.DetectCycles()
	assert.ErrorIs(t, err, ErrCycle)

	_, err = cyclic.TotalContained(BagSpec{"light", "red"})
	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)

	assert.True(t, cyclic.Contains(shinyGold, shinyGold))
	assert.True(t, cyclic.Contains(BagSpec{"light", "red"}, BagSpec{"dark", "blue"}))
	assert.Equal(t, 3, cyclic.CountContainers(shinyGold))
	assert.Equal(t, []BagSpec{{"dark", "blue"}, {"dark", "red"}, {"light", "red"}}, cyclic.Containers(shinyGold))

	require.ErrorAs(t, cyclic.DetectCycles(), &cycleErr)
	assert.Equal(t, shinyGold, cycleErr.Bag, "the first bag mentioned on a cycle is named")

	assert.NoError(t, mustParse(t, example).DetectCycles())
}

func TestCycles_SelfLoop(t *testing.T) {
	g := mustParse(t, `light red bags contain 1 shiny gold bag.
shiny gold bags contain 2 shiny gold bags.`)

	var cycleErr *CycleError
	require.ErrorAs(t, g.DetectCycles(), &cycleErr)
	assert.Equal(t, shinyGold, cycleErr.Bag)
	assert.Equal(t, []BagSpec{{"light", "red"}}, g.Containers(shinyGold))
}

func TestParallelEdges(t *testing.T) {
	g := mustParse(t, `light red bags contain 1 shiny gold bag.
light red bags contain 2 shiny gold bags.
shiny gold bags contain no other bags.`)

	assert.NoError(t, g.DetectCycles())
	assert.Equal(t, []BagSpec{{"light", "red"}}, g.Containers(shinyGold))
	assert.Len(t, g.Edges(BagSpec{"light", "red"}), 2)

	total, err := g.TotalContained(BagSpec{"light", "red"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestTotalContained_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		err   error
	}{
		{
			name: "product wraps past max int",
			input: `shiny gold bags contain 4611686018427387904 dark red bags.
dark red bags contain 3 dark blue bags.
dark blue bags contain no other bags.`,
			err: ErrOverflow,
		},
		{
			name: "sum of siblings wraps past max int",
			input: `shiny gold bags contain 9223372036854775807 dark red bags, 1 dark blue bag.
dark red bags contain no other bags.
dark blue bags contain no other bags.`,
			err: ErrOverflow,
		},
		{
			name: "large total that still fits",
			input: `shiny gold bags contain 1099511627776 dark red bags.
dark red bags contain 3 dark blue bags.
dark blue bags contain no other bags.`,
			want: 1099511627776 * 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.input)
			got, err := g.TotalContained(shinyGold)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseBagSpec(t *testing.T) {
	b, err := ParseBagSpec("  shiny   gold ")
	require.NoError(t, err)
	assert.Equal(t, shinyGold, b)
	assert.Equal(t, "shiny gold", b.String())

	_, err = ParseBagSpec("gold")
	assert.Error(t, err)
}
