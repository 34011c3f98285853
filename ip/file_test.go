package ip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/funge/io"
	"github.com/ezrec/funge/space"
)

func fileContext(t *testing.T, source string) (ctx *Context, p *Ip, dir string) {
	ctx, p = testContext(source, "")
	ctx.Files = &io.Bridge{AllowFiles: true}
	dir = t.TempDir()

	return
}

func readFileAt(ctx *Context, p *Ip, path string, flags, x, y space.Cell) {
	p.Push(x)
	p.Push(y)
	p.Push(flags)
	p.Stacks.PushString(path)
	p.Execute(ctx, 'i')
}

func writeFileAt(ctx *Context, p *Ip, path string, flags, x, y, w, h space.Cell) {
	p.Push(w)
	p.Push(h)
	p.Push(x)
	p.Push(y)
	p.Push(flags)
	p.Stacks.PushString(path)
	p.Execute(ctx, 'o')
}

func TestExecute_ReadFile(t *testing.T) {
	assert := assert.New(t)

	ctx, p, dir := fileContext(t, "@")
	path := filepath.Join(dir, "grid.bf")
	assert.NoError(os.WriteFile(path, []byte("a b\ncd"), 0o644))

	p.Storage = space.Point{X: 100, Y: 200}
	// A blank in the file leaves the underlying cell alone.
	ctx.Space.Put(space.Point{X: 111, Y: 220}, 'Z')

	readFileAt(ctx, p, path, 0, 10, 20)

	assert.Equal(space.Cell('a'), ctx.Space.Get(space.Point{X: 110, Y: 220}))
	assert.Equal(space.Cell('Z'), ctx.Space.Get(space.Point{X: 111, Y: 220}))
	assert.Equal(space.Cell('b'), ctx.Space.Get(space.Point{X: 112, Y: 220}))
	assert.Equal(space.Cell('c'), ctx.Space.Get(space.Point{X: 110, Y: 221}))
	assert.Equal(space.Cell('d'), ctx.Space.Get(space.Point{X: 111, Y: 221}))

	// Position then size; the height counts completed rows, so a file
	// with no trailing newline reports one less than its row count.
	assert.Equal(space.Cell(20), p.Pop())
	assert.Equal(space.Cell(10), p.Pop())
	assert.Equal(space.Cell(1), p.Pop())
	assert.Equal(space.Cell(3), p.Pop())
	assert.Equal(0, p.Stacks.Toss().Len())
}

func TestExecute_ReadFileLinear(t *testing.T) {
	assert := assert.New(t)

	ctx, p, dir := fileContext(t, "@")
	path := filepath.Join(dir, "flat.bf")
	assert.NoError(os.WriteFile(path, []byte("a\nb"), 0o644))

	readFileAt(ctx, p, path, 1, 0, 0)

	assert.Equal(space.Cell('a'), ctx.Space.Get(space.Point{X: 0, Y: 0}))
	assert.Equal(space.Cell('\n'), ctx.Space.Get(space.Point{X: 1, Y: 0}))
	assert.Equal(space.Cell('b'), ctx.Space.Get(space.Point{X: 2, Y: 0}))

	assert.Equal(space.Cell(0), p.Pop())
	assert.Equal(space.Cell(0), p.Pop())
	assert.Equal(space.Cell(0), p.Pop())
	assert.Equal(space.Cell(3), p.Pop())
}

func TestExecute_ReadFileDenied(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	readFileAt(ctx, p, "anything", 0, 0, 0)

	assert.Equal(space.West, p.Delta)
	assert.Equal(0, p.Stacks.Toss().Len())
}

func TestExecute_WriteFile(t *testing.T) {
	assert := assert.New(t)

	ctx, p, dir := fileContext(t, "@")
	path := filepath.Join(dir, "out.txt")

	p.Storage = space.Point{X: 3, Y: 4}
	ctx.Space.Put(space.Point{X: 3, Y: 4}, 'a')
	ctx.Space.Put(space.Point{X: 4, Y: 4}, 'b')
	ctx.Space.Put(space.Point{X: 3, Y: 5}, 'c')
	ctx.Space.Put(space.Point{X: 4, Y: 5}, 'd')

	writeFileAt(ctx, p, path, 0, 0, 0, 2, 2)

	assert.Equal(space.East, p.Delta)
	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("ab\ncd\n", string(data))
}

func TestExecute_WriteFileTrimsTrailing(t *testing.T) {
	assert := assert.New(t)

	ctx, p, dir := fileContext(t, "@")
	path := filepath.Join(dir, "trim.txt")

	ctx.Space.Put(space.Point{X: 0, Y: 0}, 'a')
	ctx.Space.Put(space.Point{X: 1, Y: 0}, 'b')

	// Text mode drops the trailing blanks and the blank second row.
	writeFileAt(ctx, p, path, 1, 0, 0, 4, 2)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("ab\n", string(data))
}

func TestExecute_WriteFileIndentedRowMerges(t *testing.T) {
	assert := assert.New(t)

	ctx, p, dir := fileContext(t, "@")
	path := filepath.Join(dir, "indent.txt")

	ctx.Space.Put(space.Point{X: 0, Y: 0}, 'a')
	ctx.Space.Put(space.Point{X: 1, Y: 0}, 'b')
	ctx.Space.Put(space.Point{X: 2, Y: 1}, 'c')
	ctx.Space.Put(space.Point{X: 3, Y: 1}, 'd')

	// A pending newline flushes only when a row's first non-blank sits
	// in the leftmost column, so an indented row joins the line above.
	writeFileAt(ctx, p, path, 1, 0, 0, 4, 2)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("ab  cd\n", string(data))
}

func TestExecute_WriteFileDenied(t *testing.T) {
	assert := assert.New(t)

	ctx, p := testContext("@", "")

	writeFileAt(ctx, p, "anything", 0, 0, 0, 0, 0)

	assert.Equal(space.West, p.Delta)
}
