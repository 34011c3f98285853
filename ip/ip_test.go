package ip

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/funge/fingerprint"
	"github.com/ezrec/funge/io"
	"github.com/ezrec/funge/space"
)

func testContext(source string, input string) (ctx *Context, p *Ip) {
	ctx = &Context{
		Space:  space.Read([]byte(source)),
		Input:  io.NewConsole(strings.NewReader(input), &bytes.Buffer{}),
		Files:  &io.Bridge{},
		Info:   &io.Info{},
		Prints: fingerprint.Builtins(),
		Rand:   rand.New(rand.NewPCG(1, 2)),
	}

	p = New(0)
	p.FindCommand(ctx.Space)

	return
}

func ticks(ctx *Context, p *Ip, n int) {
	for range n {
		if !p.Alive || ctx.Halted {
			return
		}
		p.Tick(ctx)
	}
}

func TestExecute_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	for _, v := range "83-" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(5), p.Pop())

	for _, v := range "92/" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(4), p.Pop())

	for _, v := range "10/" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(0), p.Pop())

	for _, v := range "94%" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(1), p.Pop())

	for _, v := range "af*" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(150), p.Pop())
}

func TestExecute_Logic(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	p.Execute(ctx, '0')
	p.Execute(ctx, '!')
	assert.Equal(space.Cell(1), p.Pop())

	for _, v := range "73`" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(1), p.Pop())

	for _, v := range "37`" {
		p.Execute(ctx, space.Cell(v))
	}
	assert.Equal(space.Cell(0), p.Pop())
}

func TestExecute_StackOps(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	p.Execute(ctx, '5')
	p.Execute(ctx, ':')
	assert.Equal([]space.Cell{5, 5}, p.Stacks.Toss().Data)

	p.Execute(ctx, '1')
	p.Execute(ctx, '\\')
	assert.Equal([]space.Cell{5, 1, 5}, p.Stacks.Toss().Data)

	p.Execute(ctx, '$')
	assert.Equal([]space.Cell{5, 1}, p.Stacks.Toss().Data)

	p.Execute(ctx, 'n')
	assert.Equal(0, p.Stacks.Toss().Len())
}

func TestExecute_Turns(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	p.Execute(ctx, '[')
	assert.Equal(space.North, p.Delta)
	p.Execute(ctx, ']')
	assert.Equal(space.East, p.Delta)
	p.Execute(ctx, 'r')
	assert.Equal(space.West, p.Delta)

	p.Execute(ctx, '2')
	p.Execute(ctx, '3')
	p.Execute(ctx, 'x')
	assert.Equal(space.Delta{DX: 2, DY: 3}, p.Delta)

	// w compares the second popped against the first.
	p.Delta = space.East
	p.Execute(ctx, '1')
	p.Execute(ctx, '2')
	p.Execute(ctx, 'w')
	assert.Equal(space.North, p.Delta)
}

func TestExecute_UnknownReflects(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	p.Execute(ctx, '*')
	assert.Equal(space.East, p.Delta)
	p.Execute(ctx, 'h')
	assert.Equal(space.West, p.Delta)
}

func TestTick_StringMode(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext(`"foo  bar"@`, "")

	ticks(ctx, p, 20)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{'f', 'o', 'o', ' ', 'b', 'a', 'r'}, p.Stacks.Toss().Data)
}

func TestTick_CharLiteral(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext(`'7@`, "")

	ticks(ctx, p, 5)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{'7'}, p.Stacks.Toss().Data)
}

func TestTick_StoreChar(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("5s @", "")

	ticks(ctx, p, 5)
	assert.False(p.Alive)
	assert.Equal(space.Cell(5), ctx.Space.Get(space.Point{X: 2, Y: 0}))
}

func TestTick_Comment(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("z;never run;@", "")

	// The comment costs no ticks; the second tick executes the @.
	ticks(ctx, p, 2)
	assert.False(p.Alive)
}

func TestTick_Trampoline(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("#12@", "")

	ticks(ctx, p, 5)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{2}, p.Stacks.Toss().Data)
}

func TestTick_Jump(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("2j453@", "")

	ticks(ctx, p, 5)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{2, 3}, p.Stacks.Toss().Data)
}

func TestTick_Iterate(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("3k1@", "")

	// k runs the 1 three times without moving; the pointer then passes
	// over the 1 and executes it a fourth time.
	ticks(ctx, p, 10)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{1, 1, 1, 1}, p.Stacks.Toss().Data)
}

func TestTick_IterateZeroSkips(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("0k12@", "")

	ticks(ctx, p, 10)
	assert.False(p.Alive)
	assert.Equal([]space.Cell{2}, p.Stacks.Toss().Data)
}

func TestTick_CounterTrace(t *testing.T) {
	assert := assert.New(t)

	source := "5>:.1-:v\n" +
		" ^     _@"
	ctx, p := testContext(source, "")

	steps := []struct {
		pos   space.Point
		cells []space.Cell
	}{
		{space.Point{X: 1, Y: 0}, []space.Cell{5}},
		{space.Point{X: 2, Y: 0}, []space.Cell{5}},
		{space.Point{X: 3, Y: 0}, []space.Cell{5, 5}},
		{space.Point{X: 4, Y: 0}, []space.Cell{5}},
		{space.Point{X: 5, Y: 0}, []space.Cell{5, 1}},
		{space.Point{X: 6, Y: 0}, []space.Cell{4}},
		{space.Point{X: 7, Y: 0}, []space.Cell{4, 4}},
		{space.Point{X: 7, Y: 1}, []space.Cell{4, 4}},
	}

	for i, step := range steps {
		p.Tick(ctx)
		assert.Equal(step.pos, p.Position, "tick %v position", i+1)
		assert.Equal(step.cells, p.Stacks.Toss().Data, "tick %v stack", i+1)
	}
}

func TestExecute_BlockStorage(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("{", "")

	p.Push(0)
	p.Execute(ctx, '{')
	assert.Equal(p.Position.Add(p.Delta), p.Storage)

	p.Push(0)
	p.Execute(ctx, '}')
	assert.Equal(space.Point{}, p.Storage)
}

func TestExecute_EndBlockSingleReflects(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	// With a single stack, } reflects without popping a count.
	p.Push(42)
	p.Execute(ctx, '}')
	assert.Equal(space.West, p.Delta)
	assert.Equal(space.Cell(42), p.Pop())

	p.Push(42)
	p.Execute(ctx, 'u')
	assert.Equal(space.East, p.Delta)
	assert.Equal(space.Cell(42), p.Pop())
}

func TestExecute_Console(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "x42\nZ\n")

	p.Execute(ctx, '&')
	assert.Equal(space.Cell(42), p.Pop())

	p.Execute(ctx, '~')
	assert.Equal(space.Cell('\n'), p.Pop())
	p.Execute(ctx, '~')
	assert.Equal(space.Cell('Z'), p.Pop())
}

func TestExecute_ConsoleEOF(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	// Character input at end-of-input pushes -1; integer input
	// reflects.
	p.Execute(ctx, '~')
	assert.Equal(space.East, p.Delta)
	assert.Equal(space.Cell(-1), p.Pop())

	p.Execute(ctx, '&')
	assert.Equal(space.West, p.Delta)
}

func TestExecute_Sysinfo(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("y@", "")

	p.Push(0)
	p.Execute(ctx, 'y')
	assert.Equal(io.FlagConcurrent, p.Pop())
	assert.Equal(space.Cell(4), p.Pop())
	assert.Equal(Handprint, p.Pop())
}

func TestExecute_SysinfoPick(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("y@", "")

	p.Push(99)
	p.Push(3)
	p.Execute(ctx, 'y')

	// The report collapses to the one picked cell, here the handprint,
	// leaving whatever was below it untouched.
	assert.Equal(Handprint, p.Pop())
	assert.Equal(space.Cell(99), p.Pop())
	assert.Equal(0, p.Stacks.Toss().Len())
}

func TestExecute_Fingerprints(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	for _, r := range "AMOR" {
		p.Push(space.Cell(r))
	}
	p.Push(4)
	p.Execute(ctx, '(')

	assert.Equal(space.Cell(1), p.Pop())
	assert.Equal(fingerprint.Code("ROMA"), p.Pop())

	p.Execute(ctx, 'M')
	assert.Equal(space.Cell(1000), p.Pop())

	for _, r := range "AMOR" {
		p.Push(space.Cell(r))
	}
	p.Push(4)
	p.Execute(ctx, ')')

	p.Execute(ctx, 'M')
	assert.Equal(space.West, p.Delta)
}

func TestExecute_FingerprintUnknownReflects(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	p.Push('X')
	p.Push(1)
	p.Execute(ctx, '(')
	assert.Equal(space.West, p.Delta)
}

func TestExecute_Split(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("1t2@", "")

	p.Push(7)
	p.Position = space.Point{X: 1, Y: 0}
	p.Execute(ctx, 't')

	assert.Len(ctx.Spawned, 1)
	child := ctx.Spawned[0]
	assert.Equal(space.West, child.Delta)
	assert.Equal(space.Point{X: 0, Y: 0}, child.Position)
	assert.Equal(space.Cell(7), child.Pop())

	// The child's stack is its own copy.
	assert.Equal(space.Cell(7), p.Pop())
}
