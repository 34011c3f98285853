// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package space

// Space is the sparse, mutable 2D memory of a running program.
//
// Unset coordinates read as Blank. Writing Blank removes the cell from
// the backing map, so the tracked bounding rectangle both grows and
// shrinks as the program rewrites itself.
type Space struct {
	cells  map[Point]Cell
	bounds bounds
}

// New creates an empty Space.
func New() (s *Space) {
	s = &Space{
		cells: map[Point]Cell{},
		bounds: bounds{
			cols: map[Cell]int{},
			rows: map[Cell]int{},
		},
	}

	return
}

// Get retrieves the cell at p, or Blank if p was never written.
func (s *Space) Get(p Point) (v Cell) {
	v, ok := s.cells[p]
	if !ok {
		v = Blank
	}

	return
}

// Put stores v at p. Storing Blank deletes the cell, keeping the
// backing map and the bounding rectangle tight.
func (s *Space) Put(p Point, v Cell) {
	_, ok := s.cells[p]

	if v == Blank {
		if ok {
			delete(s.cells, p)
			s.bounds.remove(p)
		}
		return
	}

	s.cells[p] = v
	if !ok {
		s.bounds.insert(p)
	}
}

// Min returns the northwest corner of the bounding rectangle.
func (s *Space) Min() (x, y Cell) {
	return s.bounds.minX, s.bounds.minY
}

// Max returns the southeast corner of the bounding rectangle.
func (s *Space) Max() (x, y Cell) {
	return s.bounds.maxX, s.bounds.maxY
}

// Contains reports whether p lies inside the bounding rectangle.
func (s *Space) Contains(p Point) bool {
	return p.X >= s.bounds.minX && p.X <= s.bounds.maxX &&
		p.Y >= s.bounds.minY && p.Y <= s.bounds.maxY
}

// Defined reports whether the cell at p has been written.
func (s *Space) Defined(p Point) (ok bool) {
	_, ok = s.cells[p]
	return
}

// NewPosition advances p by one step of d, wrapping through Lahey space
// when the step would leave the bounding rectangle.
func (s *Space) NewPosition(p Point, d Delta) Point {
	next := p.Add(d)
	if s.Contains(next) {
		return next
	}

	return s.wrap(p, d)
}

// IsLast reports whether stepping from p by d would wrap. The `#` and
// `'`/`s` instructions need to know without moving.
func (s *Space) IsLast(p Point, d Delta) bool {
	return !s.Contains(p.Add(d))
}

// wrap finds where program text reappears for a pointer leaving defined
// content at p while traveling along d: scan backward by the negated
// delta until either an unset cell is found (the destination is the
// last defined cell, one step forward) or the scan leaves the bounding
// rectangle on the far side (the destination is the cell at that edge).
func (s *Space) wrap(p Point, d Delta) Point {
	back := d.Reverse()

	at := p
	for {
		prev := at.Add(back)
		if !s.Contains(prev) || !s.Defined(prev) {
			return at
		}
		at = prev
	}
}

// bounds tracks the smallest rectangle containing every written cell,
// by counting occupied cells per column and per row.
type bounds struct {
	cols map[Cell]int
	rows map[Cell]int
	n    int

	minX, minY Cell
	maxX, maxY Cell
}

func (b *bounds) insert(p Point) {
	b.cols[p.X]++
	b.rows[p.Y]++
	b.n++

	if b.n == 1 {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		return
	}

	if p.X < b.minX {
		b.minX = p.X
	}
	if p.X > b.maxX {
		b.maxX = p.X
	}
	if p.Y < b.minY {
		b.minY = p.Y
	}
	if p.Y > b.maxY {
		b.maxY = p.Y
	}
}

func (b *bounds) remove(p Point) {
	b.n--
	if b.n == 0 {
		delete(b.cols, p.X)
		delete(b.rows, p.Y)
		b.minX, b.minY, b.maxX, b.maxY = 0, 0, 0, 0
		return
	}

	b.cols[p.X]--
	if b.cols[p.X] == 0 {
		delete(b.cols, p.X)
		if p.X == b.minX || p.X == b.maxX {
			b.minX, b.maxX = span(b.cols)
		}
	}

	b.rows[p.Y]--
	if b.rows[p.Y] == 0 {
		delete(b.rows, p.Y)
		if p.Y == b.minY || p.Y == b.maxY {
			b.minY, b.maxY = span(b.rows)
		}
	}
}

func span(counts map[Cell]int) (lo, hi Cell) {
	first := true
	for i := range counts {
		if first || i < lo {
			lo = i
		}
		if first || i > hi {
			hi = i
		}
		first = false
	}

	return
}
