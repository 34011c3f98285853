package ip

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ezrec/funge/space"
)

// Version is the interpreter version `y` reports.
const Version = "1.0.0"

// Handprint identifies this interpreter to running programs.
const Handprint = space.Cell(0x46554e47)

// sysinfo implements `y`: push the full system information report,
// environment deepest and capability flags on top. A positive argument
// instead picks that cell out of the report, counting from the top,
// and leaves only it behind.
func (p *Ip) sysinfo(ctx *Context) {
	n := p.Pop()

	sizes := p.Stacks.Sizes()
	cells := 0

	// Environment, a zero terminated sequence of key=value strings
	cells++
	p.Push(0)
	for key, value := range ctx.Info.Environ() {
		cells += p.Stacks.PushString(key + "=" + value)
	}

	// Arguments, terminated by two zeros
	cells += 2
	p.Push(0)
	p.Push(0)
	for _, arg := range ctx.Info.Args() {
		cells += p.Stacks.PushString(arg)
	}

	// Size of each stack, bottom stack deepest, and the stack count
	cells += len(sizes) + 1
	for _, l := range sizes {
		p.Push(space.Cell(l))
	}
	p.Push(space.Cell(len(sizes)))

	now := time.Now()

	// Time and date
	cells += 2
	p.Push(space.Cell(now.Hour()<<16 + now.Minute()<<8 + now.Second()))
	p.Push(space.Cell((now.Year()-1900)<<16 + int(now.Month())<<8 + now.Day()))

	// Program size and start
	x0, y0 := ctx.Space.Min()
	x1, y1 := ctx.Space.Max()
	cells += 4
	p.Push(x1 - x0)
	p.Push(y1 - y0)
	p.Push(x0)
	p.Push(y0)

	// Storage offset, delta, and position
	cells += 6
	p.Push(p.Storage.X)
	p.Push(p.Storage.Y)
	p.Push(p.Delta.DX)
	p.Push(p.Delta.DY)
	p.Push(p.Position.X)
	p.Push(p.Position.Y)

	// Team number, identity, and dimension
	cells += 3
	p.Push(0)
	p.Push(p.ID)
	p.Push(2)

	// Path separator
	cells++
	p.Push(space.Cell(os.PathSeparator))

	// Operating paradigm
	cells++
	p.Push(ctx.Info.OperatingParadigm())

	// Interpreter version and handprint
	cells += 2
	p.Push(versionCell())
	p.Push(Handprint)

	// Cell size in bytes
	cells++
	p.Push(4)

	// Capability flags
	cells++
	p.Push(ctx.Info.Flags())

	if n > 0 {
		v := p.Stacks.Nth(n)
		p.Stacks.Toss().Drop(cells)
		p.Push(v)
	}
}

// versionCell folds the dotted version into one cell, a byte per
// component.
func versionCell() (v space.Cell) {
	for _, part := range strings.Split(Version, ".") {
		n, _ := strconv.Atoi(part)
		v = v<<8 + space.Cell(n)
	}

	return
}
