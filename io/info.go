package io

import (
	"iter"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/ezrec/funge/internal"
	"github.com/ezrec/funge/space"
)

// Flags bits reported by the `y` instruction.
const (
	FlagConcurrent = space.Cell(0x01)
	FlagFileInput  = space.Cell(0x02)
	FlagFileOutput = space.Cell(0x04)
	FlagExecute    = space.Cell(0x08)
)

// Info implements SystemInfo from the host process, with optional
// overrides layered on top of the real environment.
type Info struct {
	AllowFiles bool
	AllowExec  bool
	Arguments  []string
	Extra      map[string]string
}

// Flags returns the capability bitfield. Concurrency is always
// available; file and shell bits track the configured access.
func (n *Info) Flags() (flags space.Cell) {
	flags = FlagConcurrent
	if n.AllowFiles {
		flags |= FlagFileInput | FlagFileOutput
	}
	if n.AllowExec {
		flags |= FlagExecute
	}

	return
}

// OperatingParadigm reports how `=` treats its command: 2 (shell
// semantics) when execution is allowed, 0 (unavailable) otherwise.
func (n *Info) OperatingParadigm() space.Cell {
	if n.AllowExec {
		return 2
	}

	return 0
}

// Args returns the program name and its arguments.
func (n *Info) Args() []string {
	return n.Arguments
}

// Environ yields the host environment followed by the configured
// overrides, as key, value pairs.
func (n *Info) Environ() iter.Seq2[string, string] {
	host := func(yield func(string, string) bool) {
		for _, entry := range os.Environ() {
			key, value, _ := strings.Cut(entry, "=")
			if !yield(key, value) {
				return
			}
		}
	}

	extra := func(yield func(string, string) bool) {
		for _, key := range slices.Sorted(maps.Keys(n.Extra)) {
			if !yield(key, n.Extra[key]) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(host, extra)
}
