// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ezrec/funge/space"
)

// Console implements TextIO over a reader and a writer pair, normally
// stdin and stdout. Input is line buffered: the first read of a tick
// pulls a whole line from the reader and later reads consume it
// character by character, matching how interactive terminals deliver
// input.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	line []byte
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) (c *Console) {
	c = &Console{
		in:  bufio.NewReader(in),
		out: out,
	}

	return
}

// fill tops up the line buffer, flushing any pending output first so a
// prompt appears before the read blocks.
func (c *Console) fill() (err error) {
	if len(c.line) > 0 {
		return
	}

	if flusher, ok := c.out.(interface{ Flush() error }); ok {
		_ = flusher.Flush()
	}

	c.line, err = c.in.ReadBytes('\n')
	if len(c.line) > 0 {
		err = nil
	}

	return
}

// ReadChar consumes and returns one character of input.
func (c *Console) ReadChar() (v space.Cell, err error) {
	if err = c.fill(); err != nil {
		return
	}

	r, size := utf8.DecodeRune(c.line)
	c.line = c.line[size:]
	v = space.Cell(r)

	return
}

// ReadInteger discards input up to the next decimal digit, then
// consumes the run of digits and returns its value.
func (c *Console) ReadInteger() (v space.Cell, err error) {
	for {
		if err = c.fill(); err != nil {
			return
		}
		for len(c.line) > 0 && !isDigit(c.line[0]) {
			c.line = c.line[1:]
		}
		if len(c.line) > 0 {
			break
		}
	}

	for len(c.line) > 0 && isDigit(c.line[0]) {
		v = v*10 + space.Cell(c.line[0]-'0')
		c.line = c.line[1:]
	}

	return
}

// WriteChar emits v as a UTF-8 encoded character.
func (c *Console) WriteChar(v space.Cell) (err error) {
	_, err = c.out.Write(utf8.AppendRune(nil, rune(v)))

	return
}

// WriteInteger emits v in decimal followed by a space.
func (c *Console) WriteInteger(v space.Cell) (err error) {
	_, err = fmt.Fprintf(c.out, "%d ", v)

	return
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
