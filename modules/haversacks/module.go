// Package haversacks solves 2020/07 on top of the bag rule graph: how many
// bag colors can eventually hold a given bag, and how many bags it must
// itself contain.
package haversacks

import (
	"context"

	"github.com/vk/puzzlegrid/internal/bagrules"
	"github.com/vk/puzzlegrid/internal/ctxlog"
	"github.com/vk/puzzlegrid/internal/registry"
)

// DefaultBag is the bag the puzzle asks about.
const DefaultBag = "shiny gold"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:     "2020/07",
		Title:  "Handy Haversacks",
		Params: []registry.ParamDef{registry.StringParam("bag", DefaultBag, "bag to count containers and contents of")},
		Part1:  withBag(Part1),
		Part2:  withBag(Part2),
	})
}

func withBag(fn func(string, bagrules.BagSpec) (int, error)) registry.SolveFunc {
	return func(ctx context.Context, input string, p registry.Params) (int, error) {
		name, err := p.String("bag")
		if err != nil {
			return 0, err
		}
		bag, err := bagrules.ParseBagSpec(name)
		if err != nil {
			return 0, err
		}
		ctxlog.FromContext(ctx).Debug("Solving for bag.", "bag", bag.String())
		return fn(input, bag)
	}
}

// Part1 counts the bag colors that can eventually contain bag.
func Part1(input string, bag bagrules.BagSpec) (int, error) {
	g, err := bagrules.Parse(input)
	if err != nil {
		return 0, err
	}
	return g.CountContainers(bag), nil
}

// Part2 counts the bags required inside bag.
func Part2(input string, bag bagrules.BagSpec) (int, error) {
	g, err := bagrules.Parse(input)
	if err != nil {
		return 0, err
	}
	return g.TotalContained(bag)
}
