package ip

import (
	"strings"
	"unicode/utf8"

	"github.com/ezrec/funge/space"
)

// readFile implements `i`: load a host file into funge space at a
// position relative to the storage offset. In linear mode every
// character lands on one row, control characters included. Blanks in
// the file leave the underlying cells untouched. Pushes the size and
// position of the loaded region; any host failure reflects.
func (p *Ip) readFile(ctx *Context) {
	path := p.Stacks.PopString()
	flags := p.Pop()
	y := p.Pop()
	x := p.Pop()

	linear := flags&1 == 1

	data, err := ctx.Files.ReadFile(path)
	if err != nil {
		p.Reflect()
		return
	}

	i, j := x, y
	var w space.Cell

	for _, r := range space.Decode(data) {
		switch {
		case r == '\n' && !linear:
			i = x
			j++
		case linear || r != '\r':
			if r != ' ' {
				ctx.Space.Put(space.Point{X: i + p.Storage.X, Y: j + p.Storage.Y}, space.Cell(r))
			}
			i++
			if i-x > w {
				w = i - x
			}
		}
	}

	p.Push(w)
	p.Push(j - y)
	p.Push(x)
	p.Push(y)
}

// writeFile implements `o`: flatten a rectangle of funge space,
// relative to the storage offset, into a host file. The low flag bit
// selects text mode, which trims trailing blanks from each row and
// trailing empty rows from the file. Any host failure reflects.
func (p *Ip) writeFile(ctx *Context) {
	path := p.Stacks.PopString()
	flags := p.Pop()
	y := p.Pop()
	x := p.Pop()
	h := p.Pop()
	w := p.Pop()

	trimRight := flags&1 == 1

	var out strings.Builder
	spaces := 0
	newlines := 0

	for j := y; j-y < h; j++ {
		for i := x; i-x < w; i++ {
			v := ctx.Space.Get(space.Point{X: i + p.Storage.X, Y: j + p.Storage.Y})

			if v == space.Blank {
				spaces++
				continue
			}

			for ; spaces > 0; spaces-- {
				out.WriteByte(' ')
			}
			if i == x {
				for ; newlines > 0; newlines-- {
					out.WriteByte('\n')
				}
			}
			if !utf8.ValidRune(rune(v)) {
				p.Reflect()
				return
			}
			out.WriteRune(rune(v))
		}

		if !trimRight {
			for ; spaces > 0; spaces-- {
				out.WriteByte(' ')
			}
		}

		newlines++
		spaces = 0
	}

	if !trimRight {
		for ; newlines > 1; newlines-- {
			out.WriteByte('\n')
		}
	}
	out.WriteByte('\n')

	if ctx.Files.WriteFile(path, []byte(out.String())) != nil {
		p.Reflect()
	}
}
