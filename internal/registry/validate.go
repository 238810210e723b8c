package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/puzzlegrid/internal/config"
	"github.com/vk/puzzlegrid/internal/ctxlog"
)

// ValidateModel performs a strict parity check between the manifest and the
// compiled solvers: every entry must name a registered puzzle and its params
// must bind to the declared types.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, entry := range model.Puzzles {
		p, ok := r.Lookup(entry.ID)
		if !ok {
			errs = append(errs, fmt.Sprintf("puzzle '%s': no solver registered for this id", entry.ID))
			continue
		}
		if _, err := p.BindParams(entry.Params); err != nil {
			errs = append(errs, err.Error())
		}
		if entry.Expect.Part1 == nil && entry.Expect.Part2 == nil {
			logger.Warn("Manifest entry has no expected answers; results will be unchecked.", "puzzle", entry.ID, "source", entry.Source)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
