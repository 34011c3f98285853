// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ip

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/ezrec/funge/space"
)

// Execute performs a single command without advancing the pointer.
// Anything unrecognized reflects.
func (p *Ip) Execute(ctx *Context, v space.Cell) {
	switch {
	case v >= '0' && v <= '9':
		p.Push(v - '0')
		return
	case v >= 'a' && v <= 'f':
		p.Push(v - 'a' + 10)
		return
	case v >= 'A' && v <= 'Z':
		p.letter(v)
		return
	}

	st := p.Stacks
	sp := ctx.Space

	switch v {
	// Arithmetic. The right operand pops first.
	case '+':
		b, a := st.Pop(), st.Pop()
		st.Push(a + b)
	case '-':
		b, a := st.Pop(), st.Pop()
		st.Push(a - b)
	case '*':
		b, a := st.Pop(), st.Pop()
		st.Push(a * b)
	case '/':
		b, a := st.Pop(), st.Pop()
		if b == 0 {
			st.Push(0)
		} else {
			st.Push(a / b)
		}
	case '%':
		b, a := st.Pop(), st.Pop()
		if b == 0 {
			st.Push(0)
		} else {
			st.Push(a % b)
		}

	// Logic
	case '!':
		if st.Pop() == 0 {
			st.Push(1)
		} else {
			st.Push(0)
		}
	case '`':
		b, a := st.Pop(), st.Pop()
		if a > b {
			st.Push(1)
		} else {
			st.Push(0)
		}

	// Control flow
	case '>':
		p.Delta = space.East
	case 'v':
		p.Delta = space.South
	case '<':
		p.Delta = space.West
	case '^':
		p.Delta = space.North
	case '?':
		p.Delta = cardinals[ctx.Rand.IntN(len(cardinals))]
	case '[':
		p.Delta = p.Delta.RotateLeft()
	case ']':
		p.Delta = p.Delta.RotateRight()
	case 'r':
		p.Reflect()
	case 'x':
		dy, dx := st.Pop(), st.Pop()
		p.Delta = space.Delta{DX: dx, DY: dy}
	case '_':
		if st.Pop() == 0 {
			p.Delta = space.East
		} else {
			p.Delta = space.West
		}
	case '|':
		if st.Pop() == 0 {
			p.Delta = space.South
		} else {
			p.Delta = space.North
		}
	case 'w':
		b, a := st.Pop(), st.Pop()
		switch {
		case a < b:
			p.Delta = p.Delta.RotateLeft()
		case a > b:
			p.Delta = p.Delta.RotateRight()
		}
	case '#':
		if !sp.IsLast(p.Position, p.Delta) {
			p.step(sp)
		}
	case 'j':
		n := st.Pop()
		saved := p.Delta
		p.Delta = p.Delta.Scale(n)
		p.step(sp)
		p.Delta = saved
	case 'k':
		p.iterate(ctx)

	// Stack manipulation
	case ':':
		v := st.Pop()
		st.Push(v)
		st.Push(v)
	case '$':
		st.Pop()
	case '\\':
		b, a := st.Pop(), st.Pop()
		st.Push(b)
		st.Push(a)
	case 'n':
		st.Clear()

	// Stack stack manipulation
	case '{':
		n := st.Pop()
		st.Begin(n, p.Storage)
		p.Storage = p.Position.Add(p.Delta)
	case '}':
		if st.Single() {
			p.Reflect()
			return
		}
		n := st.Pop()
		offset, _ := st.End(n)
		p.Storage = offset
	case 'u':
		if st.Single() {
			p.Reflect()
			return
		}
		st.Transfer(st.Pop())

	// Strings and self modification
	case '"':
		p.StringMode = true
	case '\'':
		if sp.IsLast(p.Position, p.Delta) {
			st.Push(space.Blank)
		} else {
			st.Push(sp.Get(p.Position.Add(p.Delta)))
		}
		p.step(sp)
	case 's':
		sp.Put(p.Position.Add(p.Delta), st.Pop())
		p.step(sp)
	case 'g':
		dy, dx := st.Pop(), st.Pop()
		st.Push(sp.Get(p.Storage.Add(space.Delta{DX: dx, DY: dy})))
	case 'p':
		dy, dx := st.Pop(), st.Pop()
		sp.Put(p.Storage.Add(space.Delta{DX: dx, DY: dy}), st.Pop())

	// Console
	case '.':
		if ctx.Input.WriteInteger(st.Pop()) != nil {
			p.Reflect()
		}
	case ',':
		v := st.Pop()
		if !utf8.ValidRune(rune(v)) || ctx.Input.WriteChar(v) != nil {
			p.Reflect()
		}
	case '&':
		if v, err := ctx.Input.ReadInteger(); err != nil {
			p.Reflect()
		} else {
			st.Push(v)
		}
	case '~':
		v, err := ctx.Input.ReadChar()
		switch {
		case err == nil:
			st.Push(v)
		case errors.Is(err, io.EOF):
			// Exhausted input reads as -1.
			st.Push(-1)
		default:
			p.Reflect()
		}

	// Host access
	case 'i':
		p.readFile(ctx)
	case 'o':
		p.writeFile(ctx)
	case '=':
		cmd := st.PopString()
		if exit, err := ctx.Files.Execute(cmd); err != nil {
			p.Reflect()
		} else {
			st.Push(exit)
		}
	case 'y':
		p.sysinfo(ctx)

	// Concurrency and termination
	case 't':
		child := p.Clone(0)
		child.Reflect()
		child.step(sp)
		child.FindCommand(sp)
		ctx.Spawned = append(ctx.Spawned, child)
	case '@':
		p.Alive = false
	case 'q':
		ctx.ExitCode = st.Pop()
		ctx.Halted = true

	// Fingerprints
	case '(':
		p.loadSemantics(ctx)
	case ')':
		p.unloadSemantics(ctx)

	case 'z':
		// no-op

	default:
		p.Reflect()
	}
}

var cardinals = []space.Delta{space.East, space.South, space.West, space.North}

// iterate implements `k`: find the next command on the path without
// moving, and execute it n times. A zero count skips the next cell
// instead; commands whose repetition cannot be observed run once.
func (p *Ip) iterate(ctx *Context) {
	n := p.Stacks.Pop()

	if n <= 0 {
		if n == 0 {
			p.step(ctx.Space)
		}
		return
	}

	cmd := p.peekCommand(ctx.Space)

	count := n
	if idempotent(cmd) {
		count = 1
	}
	for i := space.Cell(0); i < count; i++ {
		p.Execute(ctx, cmd)
		if !p.Alive || ctx.Halted {
			return
		}
	}
}

func idempotent(cmd space.Cell) bool {
	switch cmd {
	case '<', '>', '?', '@', '^', 'n', 'q', 'v', 'z':
		return true
	}

	return false
}

// letter dispatches a capital letter to the most recently loaded
// fingerprint handler bound to it, reflecting when none is.
func (p *Ip) letter(v space.Cell) {
	loaded := p.overlays[rune(v)]
	if len(loaded) == 0 {
		p.Reflect()
		return
	}

	loaded[len(loaded)-1](p)
}

// loadSemantics implements `(`: pop a name length and that many cells
// of fingerprint code, and overlay the registered handlers.
func (p *Ip) loadSemantics(ctx *Context) {
	n := p.Pop()
	if n <= 0 {
		p.Reflect()
		return
	}

	var code space.Cell
	for i := space.Cell(0); i < n; i++ {
		code = code*256 + p.Pop()
	}

	s, ok := ctx.Prints.Lookup(code)
	if !ok {
		p.Reflect()
		return
	}

	for letter, instruction := range s.Instructions {
		p.overlays[letter] = append(p.overlays[letter], instruction)
	}

	p.Push(code)
	p.Push(1)
}

// unloadSemantics implements `)`: pop a fingerprint code the same way
// `(` does and unbind one load of its letters.
func (p *Ip) unloadSemantics(ctx *Context) {
	n := p.Pop()
	if n <= 0 {
		p.Reflect()
		return
	}

	var code space.Cell
	for i := space.Cell(0); i < n; i++ {
		code = code*256 + p.Pop()
	}

	s, ok := ctx.Prints.Lookup(code)
	if !ok {
		p.Reflect()
		return
	}

	for letter := range s.Instructions {
		if loaded := p.overlays[letter]; len(loaded) > 0 {
			p.overlays[letter] = loaded[:len(loaded)-1]
		}
	}
}
