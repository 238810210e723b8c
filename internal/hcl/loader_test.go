package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "puzzles.hcl")
	writeFile(t, manifest, `
puzzle "2020/07" {
  title  = "Handy Haversacks"
  input  = "inputs/2020-07.txt"
  params = { bag = "shiny gold" }

  expect {
    part1 = 4
    part2 = 32
  }
}

puzzle "2021/01" {
  text = <<EOT
199
200
EOT
  expect {
    part1 = 1
  }
}

puzzle "2021/06" {
  input = "/abs/fish.txt"
}
`)

	puzzles, err := NewLoader().LoadFile(context.Background(), manifest)
	require.NoError(t, err)
	require.Len(t, puzzles, 3)

	first := puzzles[0]
	assert.Equal(t, "2020/07", first.ID)
	assert.Equal(t, "Handy Haversacks", first.Title)
	assert.Equal(t, filepath.Join(dir, "inputs", "2020-07.txt"), first.Input)
	assert.Equal(t, manifest, first.Source)
	require.Contains(t, first.Params, "bag")
	assert.True(t, first.Params["bag"].RawEquals(cty.StringVal("shiny gold")))
	require.NotNil(t, first.Expect.Part1)
	require.NotNil(t, first.Expect.Part2)
	assert.Equal(t, 4, *first.Expect.Part1)
	assert.Equal(t, 32, *first.Expect.Part2)

	second := puzzles[1]
	assert.Equal(t, "199\n200\n", second.Text)
	assert.Empty(t, second.Input)
	assert.Nil(t, second.Params)
	require.NotNil(t, second.Expect.Part1)
	assert.Equal(t, 1, *second.Expect.Part1)
	assert.Nil(t, second.Expect.Part2)

	third := puzzles[2]
	assert.Equal(t, "/abs/fish.txt", third.Input)
	assert.Nil(t, third.Expect.Part1)
}

func TestLoader_LoadSource_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		errContains string
	}{
		{
			name:        "syntax error",
			src:         `puzzle "2020/01" {`,
			errContains: "failed to parse HCL file",
		},
		{
			name:        "params not an object",
			src:         `puzzle "2020/01" { params = 3 }`,
			errContains: "params must be an object",
		},
		{
			name:        "fractional answer",
			src:         "puzzle \"2020/01\" {\n  expect {\n    part1 = 1.5\n  }\n}\n",
			errContains: "expected part1 must be a whole number",
		},
		{
			name:        "string answer",
			src:         "puzzle \"2020/01\" {\n  expect {\n    part2 = \"many\"\n  }\n}\n",
			errContains: "expected part2 must be a whole number",
		},
		{
			name:        "unknown attribute",
			src:         `puzzle "2020/01" { colour = "red" }`,
			errContains: "failed to decode HCL file",
		},
		{
			name:        "variables are not available",
			src:         `puzzle "2020/01" { params = { target = var.x } }`,
			errContains: "invalid params",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().LoadSource(context.Background(), "test.hcl", []byte(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoader_Load_MergesInPathOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hcl"), `puzzle "2020/01" { text = "1" }`)
	writeFile(t, filepath.Join(dir, "nested", "b.hcl"), `puzzle "2020/02" { text = "2" }`)
	writeFile(t, filepath.Join(dir, "ignored.txt"), `not a manifest`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 2)
	assert.Equal(t, "2020/01", model.Puzzles[0].ID)
	assert.Equal(t, "2020/02", model.Puzzles[1].ID)
}

func TestLoader_Load_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
