// Package dive solves 2021/02: follow a planned course of submarine commands.
package dive

import (
	"strconv"
	"strings"

	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/internal/textutil"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the puzzle with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		ID:    "2021/02",
		Title: "Dive!",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Direction is the verb of a command.
type Direction string

const (
	Forward Direction = "forward"
	Down    Direction = "down"
	Up      Direction = "up"
)

// Command moves the submarine by Units in a Direction.
type Command struct {
	Direction Direction
	Units     int
}

// Parse reads one "direction units" command per line.
func Parse(input string) ([]Command, error) {
	var cmds []Command
	for i, line := range textutil.Lines(input) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, textutil.Syntaxf("line %d: %q", i+1, line)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return nil, textutil.Syntaxf("line %d: invalid units %q", i+1, fields[1])
		}
		d := Direction(fields[0])
		switch d {
		case Forward, Down, Up:
		default:
			return nil, textutil.Syntaxf("line %d: unknown direction %q", i+1, fields[0])
		}
		cmds = append(cmds, Command{Direction: d, Units: n})
	}
	return cmds, nil
}

// Position is the submarine's horizontal position, depth and aim.
type Position struct {
	Horizontal, Depth, Aim int
}

// Apply moves directly: up and down change depth.
func (p Position) Apply(c Command) Position {
	switch c.Direction {
	case Forward:
		p.Horizontal += c.Units
	case Down:
		p.Depth += c.Units
	case Up:
		p.Depth -= c.Units
	}
	return p
}

// ApplyAim steers: up and down change aim, forward dives along it.
func (p Position) ApplyAim(c Command) Position {
	switch c.Direction {
	case Forward:
		p.Horizontal += c.Units
		p.Depth += p.Aim * c.Units
	case Down:
		p.Aim += c.Units
	case Up:
		p.Aim -= c.Units
	}
	return p
}

func follow(input string, step func(Position, Command) Position) (int, error) {
	cmds, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var p Position
	for _, c := range cmds {
		p = step(p, c)
	}
	return p.Horizontal * p.Depth, nil
}

// Part1 multiplies the final horizontal position by the final depth.
func Part1(input string) (int, error) {
	return follow(input, Position.Apply)
}

// Part2 is Part1 with aim-based steering.
func Part2(input string) (int, error) {
	return follow(input, Position.ApplyAim)
}
