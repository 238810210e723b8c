package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	hcl2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/ctxlog"
	"github.com/vk/puzzlegrid/internal/fsutil"
)

// Extension is the file extension of HCL manifests.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Puzzles []*puzzleBlock `hcl:"puzzle,block"`
	Remain  hcl2.Body      `hcl:",remain"`
}

// puzzleBlock is the raw decoded form of a `puzzle "<id>" { ... }` block.
type puzzleBlock struct {
	ID     string          `hcl:"id,label"`
	Title  string          `hcl:"title,optional"`
	Input  string          `hcl:"input,optional"`
	Text   string          `hcl:"text,optional"`
	Params hcl2.Expression `hcl:"params,optional"`
	Expect *expectBlock    `hcl:"expect,block"`
}

type expectBlock struct {
	Part1 hcl2.Expression `hcl:"part1,optional"`
	Part2 hcl2.Expression `hcl:"part2,optional"`
}

// Load discovers every .hcl file under the given paths and translates all
// puzzle blocks into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		puzzles, err := l.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Puzzles = append(model.Puzzles, puzzles...)
	}

	logger.Debug("HCL loading complete.", "puzzles", len(model.Puzzles))
	return model, nil
}

// LoadFile parses a single HCL manifest file.
func (l *Loader) LoadFile(ctx context.Context, filename string) ([]*config.Puzzle, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, hclFile, filename)
}

// LoadSource parses HCL manifest source held in memory. Relative input paths
// resolve against the directory of filename.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) ([]*config.Puzzle, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, hclFile, filename)
}

func (l *Loader) decode(ctx context.Context, hclFile *hcl2.File, filename string) ([]*config.Puzzle, error) {
	var root fileRoot
	diags := gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	puzzles := make([]*config.Puzzle, 0, len(root.Puzzles))
	for _, block := range root.Puzzles {
		p, err := l.translatePuzzle(ctx, block, filename)
		if err != nil {
			return nil, fmt.Errorf("%s: puzzle '%s': %w", filename, block.ID, err)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

func (l *Loader) translatePuzzle(ctx context.Context, block *puzzleBlock, filename string) (*config.Puzzle, error) {
	params, err := translateParams(ctx, block.Params)
	if err != nil {
		return nil, err
	}

	p := &config.Puzzle{
		ID:     block.ID,
		Title:  block.Title,
		Input:  block.Input,
		Text:   block.Text,
		Params: params,
		Source: filename,
	}
	if p.Input != "" && !filepath.IsAbs(p.Input) {
		p.Input = filepath.Join(filepath.Dir(filename), p.Input)
	}

	if block.Expect != nil {
		if p.Expect.Part1, err = translateAnswer(ctx, block.Expect.Part1, "part1"); err != nil {
			return nil, err
		}
		if p.Expect.Part2, err = translateAnswer(ctx, block.Expect.Part2, "part2"); err != nil {
			return nil, err
		}
	}
	return p, nil
}
