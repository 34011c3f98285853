package space

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const formFeed = '\f'

// Decode interprets raw bytes as text: UTF-8 when valid, with a
// byte-wise Latin-1 fallback so any byte stream decodes.
func Decode(src []byte) string {
	if !utf8.Valid(src) {
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(src); err == nil {
			src = decoded
		}
	}

	return string(src)
}

// Read loads program source text into a fresh Space.
//
// Rows map to increasing y and columns to increasing x, origin at
// (0, 0). Carriage returns and form feeds are ignored, as are blanks
// (they are the default cell value already).
func Read(src []byte) (s *Space) {
	s = New()

	at := Point{}
	for _, r := range Decode(src) {
		switch r {
		case '\n':
			at.X = 0
			at.Y++
		case '\r', formFeed:
			// ignored
		default:
			s.Put(at, Cell(r))
			at.X++
		}
	}

	return
}
