// Package io connects a running program to its host: character and
// decimal console traffic, file and shell access, and the environment
// details reported by the `y` instruction.
//
// The interfaces here are the seams tests hook into; the Console,
// Bridge, and Info types are the host-backed implementations the
// command line tool wires up.
package io

import (
	"iter"

	"github.com/ezrec/funge/space"
)

// TextIO is the console a program reads and writes through. Reads
// report io.EOF when input is exhausted; the interpreter turns read
// errors into a reflection of the requesting pointer.
type TextIO interface {
	// ReadChar consumes and returns one character of input.
	ReadChar() (space.Cell, error)
	// ReadInteger consumes characters up to and including a run of
	// decimal digits and returns their value.
	ReadInteger() (space.Cell, error)
	// WriteChar emits v as a character.
	WriteChar(v space.Cell) error
	// WriteInteger emits v in decimal followed by a space.
	WriteInteger(v space.Cell) error
}

// FileBridge carries the `i`, `o`, and `=` instructions to the host.
type FileBridge interface {
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces the named file with data.
	WriteFile(name string, data []byte) error
	// Execute runs a host command and returns its exit status.
	Execute(command string) (space.Cell, error)
}

// SystemInfo supplies the host facts the `y` instruction reports.
type SystemInfo interface {
	// Flags returns the `y` capability bitfield.
	Flags() space.Cell
	// OperatingParadigm describes how `=` treats its command.
	OperatingParadigm() space.Cell
	// Args returns the program name and its arguments.
	Args() []string
	// Environ yields the environment as key, value pairs.
	Environ() iter.Seq2[string, string]
}
