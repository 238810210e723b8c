// Package handheld solves 2020/08: run a tiny boot program, detect its
// infinite loop, and repair it by flipping a single instruction.
package handheld

import (
	"errors"
	"fmt"
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
		ID:    "2020/08",
		Title: "Handheld Halting",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Op is an instruction opcode.
type Op string

const (
	OpAcc Op = "acc"
	OpJmp Op = "jmp"
	OpNop Op = "nop"
)

// Instruction is one line of the boot program.
type Instruction struct {
	Op  Op
	Arg int
}

// ErrOutOfBounds is returned when a jump leaves the program anywhere other
// than just past its last instruction.
var ErrOutOfBounds = errors.New("jump out of bounds")

// Parse reads one "op +N" instruction per line.
func Parse(input string) ([]Instruction, error) {
	lines := textutil.Lines(input)
	prog := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		op, arg, ok := strings.Cut(line, " ")
		if !ok {
			return nil, textutil.Syntaxf("line %d: %q", i+1, line)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, textutil.Syntaxf("line %d: invalid argument %q", i+1, arg)
		}
		switch Op(op) {
		case OpAcc, OpJmp, OpNop:
		default:
			return nil, textutil.Syntaxf("line %d: unknown operation %q", i+1, op)
		}
		prog = append(prog, Instruction{Op: Op(op), Arg: n})
	}
	return prog, nil
}

// Run executes prog until it terminates by stepping just past the last
// instruction or is about to execute an instruction a second time. It
// returns the accumulator and whether the program terminated.
func Run(prog []Instruction) (acc int, terminated bool, err error) {
	seen := make([]bool, len(prog))
	pc := 0
	for {
		if pc == len(prog) {
			return acc, true, nil
		}
		if pc < 0 || pc > len(prog) {
			return acc, false, fmt.Errorf("%w: pc %d", ErrOutOfBounds, pc)
		}
		if seen[pc] {
			return acc, false, nil
		}
		seen[pc] = true

		ins := prog[pc]
		switch ins.Op {
		case OpAcc:
			acc += ins.Arg
			pc++
		case OpJmp:
			pc += ins.Arg
		default:
			pc++
		}
	}
}

// Part1 returns the accumulator just before any instruction runs twice.
func Part1(input string) (int, error) {
	prog, err := Parse(input)
	if err != nil {
		return 0, err
	}
	acc, terminated, err := Run(prog)
	if err != nil {
		return 0, err
	}
	if terminated {
		return 0, fmt.Errorf("%w: program terminates without looping", registry.ErrNoSolution)
	}
	return acc, nil
}

// Part2 flips exactly one jmp/nop so the program terminates and returns the
// final accumulator.
func Part2(input string) (int, error) {
	prog, err := Parse(input)
	if err != nil {
		return 0, err
	}
	for i, ins := range prog {
		var flipped Op
		switch ins.Op {
		case OpJmp:
			flipped = OpNop
		case OpNop:
			flipped = OpJmp
		default:
			continue
		}

		prog[i].Op = flipped
		acc, terminated, err := Run(prog)
		prog[i].Op = ins.Op
		if err == nil && terminated {
			return acc, nil
		}
	}
	return 0, fmt.Errorf("%w: no single jmp/nop flip terminates the program", registry.ErrNoSolution)
}
