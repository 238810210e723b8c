package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/vk/puzzlegrid/internal/config"
)

// entry is the shape shared by the TOML and YAML formats.
type entry struct {
	ID     string         `toml:"id" yaml:"id"`
	Title  string         `toml:"title" yaml:"title"`
	Input  string         `toml:"input" yaml:"input"`
	Text   string         `toml:"text" yaml:"text"`
	Params map[string]any `toml:"params" yaml:"params"`
	Expect *expect        `toml:"expect" yaml:"expect"`
}

type expect struct {
	Part1 *int `toml:"part1" yaml:"part1"`
	Part2 *int `toml:"part2" yaml:"part2"`
}

func (e *entry) toPuzzle(source string) (*config.Puzzle, error) {
	params, err := config.ToCtyParams(e.Params)
	if err != nil {
		return nil, fmt.Errorf("%s: puzzle '%s': %w", source, e.ID, err)
	}

	p := &config.Puzzle{
		ID:     e.ID,
		Title:  e.Title,
		Input:  e.Input,
		Text:   e.Text,
		Params: params,
		Source: source,
	}
	if p.Input != "" && !filepath.IsAbs(p.Input) {
		p.Input = filepath.Join(filepath.Dir(source), p.Input)
	}
	if e.Expect != nil {
		p.Expect = config.Expect{Part1: e.Expect.Part1, Part2: e.Expect.Part2}
	}
	return p, nil
}

func toPuzzles(entries []entry, source string) ([]*config.Puzzle, error) {
	puzzles := make([]*config.Puzzle, 0, len(entries))
	for i := range entries {
		p, err := entries[i].toPuzzle(source)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}
