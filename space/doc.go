// Package space implements the two-dimensional memory a Befunge-98
// program lives in.
//
// The space is sparse and unbounded: any pair of signed coordinates is
// addressable, and cells that were never written read back as the blank
// (space) character. The Space tracks the smallest bounding rectangle
// containing all non-blank cells; the rectangle drives the Lahey-space
// wrapping rule applied when an instruction pointer steps off the edge
// of defined content.
//
// Because programs rewrite their own cells with the `p` instruction, no
// distinction is made between code and data.
package space
