// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interp drives a program to completion: it owns the funge
// space, the live instruction pointers, and the tick loop that gives
// each pointer one command per round.
package interp

import (
	"log"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/ezrec/funge/fingerprint"
	"github.com/ezrec/funge/io"
	"github.com/ezrec/funge/ip"
	"github.com/ezrec/funge/space"
)

// Interp is a loaded program and its execution state. The exported
// fields may be replaced after New and before the first Tick to rewire
// the program's host connections.
type Interp struct {
	Verbose  bool
	MaxTicks int

	Space  *space.Space
	Input  io.TextIO
	Files  io.FileBridge
	Info   io.SystemInfo
	Prints *fingerprint.Registry
	Rand   *rand.Rand

	ips    []*ip.Ip
	nextID space.Cell
	ticks  int
	halted bool
	exit   space.Cell
}

// New creates an interpreter for the given program source, wired to
// the process's standard streams, with file and shell access denied.
// A single pointer starts at the origin, traveling east.
func New(source []byte) (in *Interp) {
	in = &Interp{
		Space:  space.Read(source),
		Input:  io.NewConsole(os.Stdin, os.Stdout),
		Files:  &io.Bridge{},
		Info:   &io.Info{},
		Prints: fingerprint.Builtins(),
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		nextID: 1,
	}

	first := ip.New(0)
	first.FindCommand(in.Space)
	in.ips = []*ip.Ip{first}

	return
}

// Tick runs one round, giving every pointer that was alive at the
// start of the round one command. Reports done once the program has
// halted, either by `q` or by the last pointer stopping.
func (in *Interp) Tick() (done bool, err error) {
	if in.halted {
		done = true
		return
	}
	if in.MaxTicks > 0 && in.ticks >= in.MaxTicks {
		err = ErrTickBudget
		return
	}
	in.ticks++

	ctx := &ip.Context{
		Space:  in.Space,
		Input:  in.Input,
		Files:  in.Files,
		Info:   in.Info,
		Prints: in.Prints,
		Rand:   in.Rand,
	}

	for _, p := range slices.Clone(in.ips) {
		if !p.Alive {
			continue
		}
		if in.Verbose {
			log.Printf("funge: tick %v: ip %v at %v %v %q",
				in.ticks, p.ID, p.Position, p.Delta, rune(in.Space.Get(p.Position)))
		}

		p.Tick(ctx)

		if ctx.Halted {
			// q stops everything mid round.
			in.halted = true
			in.exit = ctx.ExitCode
			done = true
			return
		}
	}

	in.ips = slices.DeleteFunc(in.ips, func(p *ip.Ip) bool { return !p.Alive })

	for _, child := range ctx.Spawned {
		child.ID = in.nextID
		in.nextID++
		in.ips = append(in.ips, child)
	}

	if len(in.ips) == 0 {
		in.halted = true
		done = true
	}

	return
}

// Run ticks the program to completion and returns its exit status.
// A program whose pointers all stop exits zero; `q` supplies its own
// status.
func (in *Interp) Run() (exit space.Cell, err error) {
	for {
		done, err := in.Tick()
		if err != nil {
			return 0, err
		}
		if done {
			break
		}
	}

	exit = in.exit

	return
}

// Ticks returns the number of rounds run so far.
func (in *Interp) Ticks() int {
	return in.ticks
}
