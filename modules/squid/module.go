// Package squid solves 2021/04: play bingo against a giant squid and find the
// first and last boards to win.
package squid

import (
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
		ID:    "2021/04",
		Title: "Giant Squid",
		Part1: registry.Simple(Part1),
		Part2: registry.Simple(Part2),
	})
}

// Board is a square bingo card. A board wins when a full row or column is
// marked; diagonals do not count.
type Board struct {
	size   int
	cells  []int
	marked []bool
	where  map[int]int
	won    bool
}

// NewBoard builds a board from its rows of numbers.
func NewBoard(rows [][]int) (*Board, error) {
	size := len(rows)
	b := &Board{size: size, where: make(map[int]int, size*size)}
	for y, row := range rows {
		if len(row) != size {
			return nil, textutil.Syntaxf("board row %d: expected %d numbers, got %d", y+1, size, len(row))
		}
		for _, n := range row {
			if _, dup := b.where[n]; dup {
				return nil, textutil.Syntaxf("board repeats number %d", n)
			}
			b.where[n] = len(b.cells)
			b.cells = append(b.cells, n)
		}
	}
	b.marked = make([]bool, len(b.cells))
	return b, nil
}

// Mark marks n if present and reports whether this completed a row or column.
func (b *Board) Mark(n int) bool {
	i, ok := b.where[n]
	if !ok || b.marked[i] {
		return false
	}
	b.marked[i] = true

	y, x := i/b.size, i%b.size
	row, col := true, true
	for k := 0; k < b.size; k++ {
		row = row && b.marked[y*b.size+k]
		col = col && b.marked[k*b.size+x]
	}
	return row || col
}

// Unmarked sums the numbers not yet marked.
func (b *Board) Unmarked() int {
	sum := 0
	for i, n := range b.cells {
		if !b.marked[i] {
			sum += n
		}
	}
	return sum
}

// Game is the draw order and the boards in play.
type Game struct {
	Draws  []int
	Boards []*Board
}

// Parse reads the comma-separated draws followed by blank-line separated
// boards.
func Parse(input string) (*Game, error) {
	blocks := textutil.Blocks(input)
	if len(blocks) < 2 || len(blocks[0]) != 1 {
		return nil, textutil.Syntaxf("expected a line of draws followed by boards")
	}
	draws, err := textutil.Ints(blocks[0][0])
	if err != nil {
		return nil, err
	}

	g := &Game{Draws: draws}
	for bi, block := range blocks[1:] {
		rows := make([][]int, 0, len(block))
		for _, line := range block {
			var row []int
			for _, f := range strings.Fields(line) {
				n, err := strconv.Atoi(f)
				if err != nil {
					return nil, textutil.Syntaxf("board %d: invalid number %q", bi+1, f)
				}
				row = append(row, n)
			}
			rows = append(rows, row)
		}
		b, err := NewBoard(rows)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", bi+1, err)
		}
		g.Boards = append(g.Boards, b)
	}
	return g, nil
}

// Play draws numbers in order and returns the scores of the boards in the
// order they win. A score is the winning board's unmarked sum times the
// number that completed it.
func (g *Game) Play() []int {
	var scores []int
	for _, n := range g.Draws {
		for _, b := range g.Boards {
			if b.won {
				continue
			}
			if b.Mark(n) {
				b.won = true
				scores = append(scores, b.Unmarked()*n)
			}
		}
		if len(scores) == len(g.Boards) {
			break
		}
	}
	return scores
}

func play(input string) ([]int, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	scores := g.Play()
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: no board wins", registry.ErrNoSolution)
	}
	return scores, nil
}

// Part1 returns the score of the first board to win.
func Part1(input string) (int, error) {
	scores, err := play(input)
	if err != nil {
		return 0, err
	}
	return scores[0], nil
}

// Part2 returns the score of the last board to win.
func Part2(input string) (int, error) {
	scores, err := play(input)
	if err != nil {
		return 0, err
	}
	return scores[len(scores)-1], nil
}
