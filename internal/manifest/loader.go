package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/ctxlog"
	"github.com/vk/puzzlegrid/internal/fsutil"
	"github.com/vk/puzzlegrid/internal/hcl"
)

const (
	extTOML = ".toml"
	extYAML = ".yaml"
	extYML  = ".yml"
)

// Extensions lists every manifest file extension the loader understands.
var Extensions = []string{hcl.Extension, extTOML, extYAML, extYML}

// Loader dispatches each manifest file to the decoder for its format.
type Loader struct {
	hcl *hcl.Loader
}

// NewLoader creates a multi-format manifest loader.
func NewLoader() *Loader {
	return &Loader{hcl: hcl.NewLoader()}
}

var _ config.Loader = (*Loader)(nil)

// Load discovers manifest files under paths and merges their puzzles in
// discovery order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found in %s", strings.Join(paths, ", "))
	}

	model := &config.Model{}
	for _, file := range files {
		puzzles, err := l.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded manifest file.", "file", file, "puzzles", len(puzzles))
		model.Puzzles = append(model.Puzzles, puzzles...)
	}
	return model, nil
}

// LoadFile decodes a single manifest file.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]*config.Puzzle, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case hcl.Extension:
		return l.hcl.LoadFile(ctx, path)
	case extTOML:
		return loadTOML(path)
	case extYAML, extYML:
		return loadYAML(path)
	}
	return nil, fmt.Errorf("unsupported manifest format: %s", path)
}
