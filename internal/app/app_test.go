package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/puzzlegrid/modules/haversacks"
	"github.com/vk/puzzlegrid/modules/sonarsweep"
)

const bagRules = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNewConfig(t *testing.T) {
	valid := Config{ManifestPaths: []string{"m.hcl"}, LogFormat: "text", LogLevel: "info", WorkerCount: 1}

	cfg, err := NewConfig(valid)
	require.NoError(t, err)
	assert.Equal(t, valid, *cfg)

	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log-format"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log-level"},
		{"no workers", func(c *Config) { c.WorkerCount = 0 }, "invalid workers"},
		{"bad only id", func(c *Config) { c.Only = []string{"2020/7"} }, "invalid puzzle id"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			_, err := NewConfig(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestApp_Run(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "inputs", "bags.txt"), bagRules)
	manifest := filepath.Join(dir, "puzzles.hcl")
	writeFile(t, manifest, `
puzzle "2020/07" {
  input = "inputs/bags.txt"
  expect {
    part1 = 4
    part2 = 32
  }
}

puzzle "2021/01" {
  text = "199 200 208 210 200 207 240 269 260 263"
  expect {
    part1 = 7
  }
}
`)

	a, out, logs := SetupAppTest(t, &Config{ManifestPaths: []string{manifest}, NoColor: true},
		&haversacks.Module{}, &sonarsweep.Module{})
	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "2020/07 part 1: 4 ok"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2020/07 part 2: 32 ok"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2021/01 part 1: 7 ok"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "2021/01 part 2: 5 unchecked"), lines[3])
	assert.Equal(t, "4 parts: 3 ok, 0 mismatch, 1 unchecked, 0 failed", lines[4])

	_, err := uuid.Parse(a.RunID())
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "run_id="+a.RunID())
}

func TestApp_Run_Mismatch(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "puzzles.yaml")
	writeFile(t, manifest, "puzzles:\n  - id: \"2021/01\"\n    text: \"1 2 3\"\n    expect: {part1: 5}\n")

	a, out, _ := SetupAppTest(t, &Config{ManifestPaths: []string{manifest}, NoColor: true}, &sonarsweep.Module{})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRunFailed))
	assert.Contains(t, out.String(), "2021/01 part 1: 2 expected 5")
}

func TestApp_Run_Only(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "puzzles.toml")
	writeFile(t, manifest, `
[[puzzle]]
id = "2021/01"
text = "1 2 3"

[[puzzle]]
id = "2020/07"
text = "faded blue bags contain no other bags."
`)

	a, out, _ := SetupAppTest(t, &Config{ManifestPaths: []string{manifest}, Only: []string{"2021/01"}, NoColor: true},
		&haversacks.Module{}, &sonarsweep.Module{})
	require.NoError(t, a.Run(context.Background()))
	assert.NotContains(t, out.String(), "2020/07")
	assert.Contains(t, out.String(), "2021/01 part 1: 2 unchecked")

	a, _, _ = SetupAppTest(t, &Config{ManifestPaths: []string{manifest}, Only: []string{"2021/11"}},
		&haversacks.Module{}, &sonarsweep.Module{})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent from the manifests: 2021/11")
}

func TestApp_Run_ManifestErrors(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		file     string
		content  string
		contains []string
	}{
		{
			name:     "invalid entries",
			file:     "invalid.hcl",
			content:  "puzzle \"2020/7\" {\n  text = \"x\"\n}\npuzzle \"2021/01\" {\n}\n",
			contains: []string{"manifest validation failed", "must be YYYY/DD", "one of input or text is required"},
		},
		{
			name:     "unknown puzzle",
			file:     "unknown.hcl",
			content:  "puzzle \"2021/25\" {\n  text = \"x\"\n}\n",
			contains: []string{"registry validation failed", "puzzle '2021/25': no solver registered"},
		},
		{
			name:     "bad param",
			file:     "param.hcl",
			content:  "puzzle \"2021/01\" {\n  text = \"1\"\n  params = { depth = 3 }\n}\n",
			contains: []string{"does not accept param(s): depth"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			writeFile(t, path, tc.content)
			a, out, _ := SetupAppTest(t, &Config{ManifestPaths: []string{path}}, &sonarsweep.Module{})
			err := a.Run(context.Background())
			require.Error(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
			assert.Empty(t, out.String(), "no solver runs on an invalid manifest")
		})
	}
}

func TestApp_List(t *testing.T) {
	a, out, _ := SetupAppTest(t, &Config{})
	require.NoError(t, a.List())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(coreModules))
	assert.Equal(t, "2020/01  Report Repair", lines[0])
	assert.Equal(t, "2021/11  Dumbo Octopus", lines[len(lines)-1])
}

func TestNewLogger_JSON(t *testing.T) {
	buf := &SafeBuffer{}
	logger := newLogger("warn", "json", buf)
	logger.Info("Hidden.")
	logger.Warn("Shown.", "k", "v")
	assert.NotContains(t, buf.String(), "Hidden.")
	assert.Contains(t, buf.String(), `"msg":"Shown."`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestNewLogger_UnknownLevelIsInfo(t *testing.T) {
	buf := &SafeBuffer{}
	logger := newLogger("verbose", "text", buf)
	logger.Debug("Hidden.")
	logger.Info("Shown.")
	assert.NotContains(t, buf.String(), "Hidden.")
	assert.Contains(t, buf.String(), "msg=Shown.")
}

func TestDefaultLogFormat(t *testing.T) {
	assert.Equal(t, "json", DefaultLogFormat(&SafeBuffer{}))
}
