// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package stack

import (
	"github.com/ezrec/funge/space"
)

// Stack is a LIFO of cells. The zero value is an empty stack, ready to
// use.
type Stack struct {
	Data []space.Cell
}

// Push adds v to the top of the stack.
func (s *Stack) Push(v space.Cell) {
	s.Data = append(s.Data, v)
}

// Pop removes and returns the top cell. An empty stack pops zero.
func (s *Stack) Pop() (v space.Cell) {
	if n := len(s.Data); n > 0 {
		v = s.Data[n-1]
		s.Data = s.Data[:n-1]
	}

	return
}

// Peek returns the top cell without removing it. An empty stack peeks
// zero.
func (s *Stack) Peek() (v space.Cell) {
	if n := len(s.Data); n > 0 {
		v = s.Data[n-1]
	}

	return
}

// Len returns the number of cells on the stack.
func (s *Stack) Len() int {
	return len(s.Data)
}

// Clear discards every cell.
func (s *Stack) Clear() {
	s.Data = s.Data[:0]
}

// Nth returns the n'th cell from the top, counting from one. Out of
// range reads return zero.
func (s *Stack) Nth(n space.Cell) (v space.Cell) {
	if n >= 1 && int(n) <= len(s.Data) {
		v = s.Data[len(s.Data)-int(n)]
	}

	return
}

// Drop removes up to n cells from the top.
func (s *Stack) Drop(n int) {
	if n <= 0 {
		return
	}
	if n > len(s.Data) {
		n = len(s.Data)
	}
	s.Data = s.Data[:len(s.Data)-n]
}

// StackStack is the stack of stacks. It always holds at least one
// stack; the top one is the TOSS, the one beneath it (if any) the SOSS.
type StackStack struct {
	stacks []*Stack
}

// NewStackStack creates a stack stack holding a single empty TOSS.
func NewStackStack() (ss *StackStack) {
	ss = &StackStack{
		stacks: []*Stack{{}},
	}

	return
}

// Toss returns the top stack.
func (ss *StackStack) Toss() *Stack {
	return ss.stacks[len(ss.stacks)-1]
}

func (ss *StackStack) soss() *Stack {
	return ss.stacks[len(ss.stacks)-2]
}

// Single reports whether only the TOSS exists.
func (ss *StackStack) Single() bool {
	return len(ss.stacks) == 1
}

// Depth returns the number of stacks.
func (ss *StackStack) Depth() int {
	return len(ss.stacks)
}

// Sizes returns the length of every stack, bottom stack first.
func (ss *StackStack) Sizes() (sizes []int) {
	for _, s := range ss.stacks {
		sizes = append(sizes, s.Len())
	}

	return
}

// Push adds v to the TOSS.
func (ss *StackStack) Push(v space.Cell) {
	ss.Toss().Push(v)
}

// Pop removes and returns the top cell of the TOSS.
func (ss *StackStack) Pop() space.Cell {
	return ss.Toss().Pop()
}

// Peek returns the top cell of the TOSS without removing it.
func (ss *StackStack) Peek() space.Cell {
	return ss.Toss().Peek()
}

// Nth returns the n'th cell from the top of the TOSS.
func (ss *StackStack) Nth(n space.Cell) space.Cell {
	return ss.Toss().Nth(n)
}

// Clear discards every cell on the TOSS.
func (ss *StackStack) Clear() {
	ss.Toss().Clear()
}

// PushString pushes a terminating zero and then the string's characters
// in reverse, leaving the first character topmost. Returns the number
// of cells pushed.
func (ss *StackStack) PushString(str string) (n int) {
	toss := ss.Toss()

	toss.Push(0)
	runes := []rune(str)
	for i := len(runes) - 1; i >= 0; i-- {
		toss.Push(space.Cell(runes[i]))
	}

	return len(runes) + 1
}

// PopString pops characters from the TOSS up to a zero terminator or
// the bottom of the stack.
func (ss *StackStack) PopString() string {
	toss := ss.Toss()

	var runes []rune
	for toss.Len() > 0 {
		v := toss.Pop()
		if v == 0 {
			break
		}
		runes = append(runes, rune(v))
	}

	return string(runes)
}

// Begin pushes a fresh TOSS, demoting the current one to SOSS.
//
// A positive n moves that many cells onto the new TOSS in their
// original order, padding with zeros at the bottom when the old TOSS
// runs short. A negative n instead pushes |n| zeros onto the old TOSS.
// The caller's storage offset is recorded on the SOSS (x beneath y) for
// End to restore.
func (ss *StackStack) Begin(n space.Cell, offset space.Point) {
	old := ss.Toss()
	fresh := &Stack{}

	switch {
	case n > 0:
		count := int(n)
		take := min(count, old.Len())

		fresh.Data = make([]space.Cell, 0, count)
		for i := count - take; i > 0; i-- {
			fresh.Data = append(fresh.Data, 0)
		}
		fresh.Data = append(fresh.Data, old.Data[old.Len()-take:]...)
		old.Drop(take)
	case n < 0:
		for i := n; i < 0; i++ {
			old.Push(0)
		}
	}

	old.Push(offset.X)
	old.Push(offset.Y)
	ss.stacks = append(ss.stacks, fresh)
}

// End pops the TOSS, promoting the SOSS, and returns the storage
// offset Begin recorded there.
//
// A positive n moves that many cells from the dying TOSS onto the
// restored stack in their original order, padding with zeros when the
// TOSS runs short. A negative n instead drops |n| cells from the
// restored stack. Reports ok=false when only one stack exists.
func (ss *StackStack) End(n space.Cell) (offset space.Point, ok bool) {
	if ss.Single() {
		return
	}

	old := ss.Toss()
	under := ss.soss()

	offset.Y = under.Pop()
	offset.X = under.Pop()

	switch {
	case n > 0:
		count := int(n)
		take := min(count, old.Len())

		for i := count - take; i > 0; i-- {
			under.Push(0)
		}
		under.Data = append(under.Data, old.Data[old.Len()-take:]...)
	case n < 0:
		under.Drop(int(-n))
	}

	ss.stacks = ss.stacks[:len(ss.stacks)-1]
	ok = true

	return
}

// Transfer moves cells between the SOSS and the TOSS, one at a time: a
// positive count pops from the SOSS onto the TOSS, a negative count the
// reverse. The moved run comes out reversed, and underflowing pops
// supply zeros. Reports ok=false when only one stack exists.
func (ss *StackStack) Transfer(count space.Cell) (ok bool) {
	if ss.Single() {
		return
	}

	toss := ss.Toss()
	soss := ss.soss()

	switch {
	case count > 0:
		for i := space.Cell(0); i < count; i++ {
			toss.Push(soss.Pop())
		}
	case count < 0:
		for i := count; i < 0; i++ {
			soss.Push(toss.Pop())
		}
	}
	ok = true

	return
}

// Clone returns a deep copy of the stack stack.
func (ss *StackStack) Clone() (out *StackStack) {
	out = &StackStack{
		stacks: make([]*Stack, 0, len(ss.stacks)),
	}
	for _, s := range ss.stacks {
		out.stacks = append(out.stacks, &Stack{
			Data: append([]space.Cell(nil), s.Data...),
		})
	}

	return
}
