// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package ip implements the instruction pointer: the unit of execution
// that walks funge space one tick at a time, carrying its own delta,
// storage offset, stack stack, and loaded fingerprint overlays.
package ip

import (
	"math/rand/v2"

	"github.com/ezrec/funge/fingerprint"
	"github.com/ezrec/funge/io"
	"github.com/ezrec/funge/space"
	"github.com/ezrec/funge/stack"
)

// Ip is a single instruction pointer.
type Ip struct {
	ID         space.Cell
	Position   space.Point
	Delta      space.Delta
	Storage    space.Point
	Stacks     *stack.StackStack
	StringMode bool
	Alive      bool

	// overlays holds the fingerprint handlers bound to each capital
	// letter, most recent load on top.
	overlays map[rune][]fingerprint.Instruction
}

// Context is the shared program state a pointer touches during a tick:
// the space, the host connections, and the control effects an
// instruction can raise for the scheduler to commit.
type Context struct {
	Space  *space.Space
	Input  io.TextIO
	Files  io.FileBridge
	Info   io.SystemInfo
	Prints *fingerprint.Registry
	Rand   *rand.Rand

	Spawned  []*Ip
	Halted   bool
	ExitCode space.Cell
}

// New creates a pointer at the origin, traveling east, with a single
// empty stack.
func New(id space.Cell) (p *Ip) {
	p = &Ip{
		ID:       id,
		Delta:    space.East,
		Stacks:   stack.NewStackStack(),
		Alive:    true,
		overlays: map[rune][]fingerprint.Instruction{},
	}

	return
}

// Clone returns a deep copy of the pointer under a new identity.
func (p *Ip) Clone(id space.Cell) (child *Ip) {
	child = &Ip{
		ID:         id,
		Position:   p.Position,
		Delta:      p.Delta,
		Storage:    p.Storage,
		Stacks:     p.Stacks.Clone(),
		StringMode: p.StringMode,
		Alive:      true,
		overlays:   map[rune][]fingerprint.Instruction{},
	}
	for letter, loaded := range p.overlays {
		child.overlays[letter] = append([]fingerprint.Instruction(nil), loaded...)
	}

	return
}

// Push adds v to the top of the pointer's stack.
func (p *Ip) Push(v space.Cell) {
	p.Stacks.Push(v)
}

// Pop removes and returns the top of the pointer's stack.
func (p *Ip) Pop() space.Cell {
	return p.Stacks.Pop()
}

// Reflect reverses the pointer's direction of travel.
func (p *Ip) Reflect() {
	p.Delta = p.Delta.Reverse()
}

// Tick executes the command under the pointer, then advances it to the
// next command on its path.
func (p *Ip) Tick(ctx *Context) {
	v := ctx.Space.Get(p.Position)

	if p.StringMode {
		p.tickString(ctx, v)
		return
	}

	p.Execute(ctx, v)

	if !p.Alive || ctx.Halted {
		return
	}

	if p.StringMode {
		// A quote just opened; the next cell is data even when blank.
		p.step(ctx.Space)
		return
	}

	p.step(ctx.Space)
	p.FindCommand(ctx.Space)
}

// tickString handles one tick inside string mode: cells push their
// values, a run of blanks collapses to a single one, and the closing
// quote drops back to command execution.
func (p *Ip) tickString(ctx *Context, v space.Cell) {
	switch v {
	case '"':
		p.StringMode = false
		p.step(ctx.Space)
		p.FindCommand(ctx.Space)
	case space.Blank:
		p.Stacks.Push(space.Blank)
		p.skipSpace(ctx.Space)
	default:
		p.Stacks.Push(v)
		p.step(ctx.Space)
	}
}

// step advances the pointer one delta, wrapping at the edge of the
// program.
func (p *Ip) step(s *space.Space) {
	p.Position = s.NewPosition(p.Position, p.Delta)
}

// FindCommand advances the pointer to the next executable cell,
// passing over blanks and semicolon delimited comments at no tick
// cost. A path with nothing executable leaves the pointer back where
// it started.
func (p *Ip) FindCommand(s *space.Space) {
	start := p.Position
	skip := false

	for {
		v := s.Get(p.Position)
		switch {
		case v == ';':
			skip = !skip
		case v != space.Blank && !skip:
			return
		}

		p.step(s)
		if p.Position == start {
			return
		}
	}
}

// skipSpace advances the pointer past a run of blanks. Unlike
// FindCommand, semicolons are ordinary characters here; string mode
// pushes them.
func (p *Ip) skipSpace(s *space.Space) {
	start := p.Position

	for s.Get(p.Position) == space.Blank {
		p.step(s)
		if p.Position == start {
			return
		}
	}
}

// peekCommand returns the next command on the pointer's path without
// moving it.
func (p *Ip) peekCommand(s *space.Space) (v space.Cell) {
	saved := p.Position

	p.step(s)
	p.FindCommand(s)
	v = s.Get(p.Position)

	p.Position = saved

	return
}
