package manifest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vk/puzzlegrid/internal/config"
)

type tomlRoot struct {
	Puzzles []entry `toml:"puzzle"`
}

func loadTOML(path string) ([]*config.Puzzle, error) {
	var root tomlRoot
	md, err := toml.DecodeFile(path, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			// Params are free-form; the registry checks them.
			if len(k) > 2 && k[0] == "puzzle" && k[1] == "params" {
				continue
			}
			keys = append(keys, k.String())
		}
		if len(keys) > 0 {
			return nil, fmt.Errorf("TOML file %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}
	return toPuzzles(root.Puzzles, path)
}
