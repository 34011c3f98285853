// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package fingerprint implements loadable instruction set extensions.
//
// A fingerprint binds handlers to some of the capital letters A-Z.
// The `(` instruction computes a fingerprint's numeric code from cells
// on the stack, looks it up in a Registry, and overlays its handlers on
// the executing pointer until a matching `)` unloads them.
package fingerprint

import (
	"github.com/ezrec/funge/space"
)

// Machine is the view of the executing pointer an Instruction gets.
type Machine interface {
	// Push adds v to the top of the pointer's stack.
	Push(v space.Cell)
	// Pop removes and returns the top of the pointer's stack.
	Pop() space.Cell
	// Reflect reverses the pointer's direction of travel.
	Reflect()
}

// Instruction is the handler bound to a capital letter while its
// fingerprint is loaded.
type Instruction func(m Machine)

// Semantics is one loadable fingerprint: a name, the numeric code it
// answers to, and handlers for a subset of A-Z.
type Semantics struct {
	Name         string
	Code         space.Cell
	Instructions map[rune]Instruction
}

// Code folds a fingerprint name into its numeric code, the same value
// `(` computes from cells popped off the stack.
func Code(name string) (code space.Cell) {
	for _, r := range name {
		code = code*256 + space.Cell(r)
	}

	return
}

// Registry maps fingerprint codes to their semantics.
type Registry struct {
	byCode map[space.Cell]*Semantics
}

// NewRegistry creates an empty Registry.
func NewRegistry() (r *Registry) {
	r = &Registry{
		byCode: map[space.Cell]*Semantics{},
	}

	return
}

// Register adds s to the registry, deriving its code from its name if
// unset. A later registration under the same code wins.
func (r *Registry) Register(s *Semantics) {
	if s.Code == 0 {
		s.Code = Code(s.Name)
	}
	r.byCode[s.Code] = s
}

// Lookup finds the semantics registered under code.
func (r *Registry) Lookup(code space.Cell) (s *Semantics, ok bool) {
	s, ok = r.byCode[code]

	return
}

// Builtins returns a Registry preloaded with the NULL and ROMA
// fingerprints.
func Builtins() (r *Registry) {
	r = NewRegistry()
	r.Register(null())
	r.Register(roma())

	return
}

// null reflects on every letter, for unbinding whatever a previous
// fingerprint load left behind.
func null() (s *Semantics) {
	s = &Semantics{
		Name:         "NULL",
		Instructions: map[rune]Instruction{},
	}
	for letter := 'A'; letter <= 'Z'; letter++ {
		s.Instructions[letter] = func(m Machine) { m.Reflect() }
	}

	return
}

// roma binds the Roman numeral letters to their values.
func roma() (s *Semantics) {
	values := map[rune]space.Cell{
		'C': 100,
		'D': 500,
		'I': 1,
		'L': 50,
		'M': 1000,
		'V': 5,
		'X': 10,
	}

	s = &Semantics{
		Name:         "ROMA",
		Instructions: map[rune]Instruction{},
	}
	for letter, value := range values {
		s.Instructions[letter] = pushConstant(value)
	}

	return
}

func pushConstant(v space.Cell) Instruction {
	return func(m Machine) { m.Push(v) }
}
