package grid

import (
	"errors"

	"github.com/katalvlaran/aoc2025/coord"
)

// ErrBadCoordinate indicates a line that is not a "row,col" pair of integers.
var ErrBadCoordinate = errors.New("grid: malformed coordinate")

const (
	// DefaultBlank is the rune treated as empty when parsing.
	DefaultBlank = '.'
	// DefaultFill is the rune printed for cells without a value.
	DefaultFill = '.'
	// DefaultMarker is the conventional "present" rune for FindSet and PrintSet.
	DefaultMarker = '#'
)

// Connectivity decides which coordinates count as touching when Regions
// grows a region.
type Connectivity int

const (
	// Conn4 joins coordinates that share an edge (Coord.Adjacent4).
	Conn4 Connectivity = iota
	// Conn8 also joins coordinates that share only a corner (Coord.Adjacent8).
	Conn8
)

// neighbours returns the adjacency set of c under conn.
func (conn Connectivity) neighbours(c coord.Coord) coord.Set {
	if conn == Conn8 {
		return c.Adjacent8()
	}
	return c.Adjacent4()
}

// Options holds the tunable runes for parsing and printing.
type Options struct {
	// Blank is skipped by MapChars.
	Blank rune
	// Fill is printed wherever a collection has no value.
	Fill rune
}

// DefaultOptions returns Options{Blank: '.', Fill: '.'}.
func DefaultOptions() Options {
	return Options{Blank: DefaultBlank, Fill: DefaultFill}
}

// Option configures Options.
type Option func(*Options)

// WithBlank sets the rune MapChars treats as empty.
func WithBlank(r rune) Option {
	return func(o *Options) { o.Blank = r }
}

// WithFill sets the rune printers use for empty cells.
func WithFill(r rune) Option {
	return func(o *Options) { o.Fill = r }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
