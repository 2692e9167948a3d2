package frame

import "unicode/utf8"

// Line is one row of framed content.
type Line struct {
	text string
}

// NewLine wraps text as a Line. Text is not split or trimmed.
func NewLine(text string) Line {
	return Line{text: text}
}

// String returns the text of the line.
func (l Line) String() string {
	return l.text
}

// CharCount returns the number of runes in the line. Invalid UTF-8 bytes
// count as one rune each.
func (l Line) CharCount() int {
	return utf8.RuneCountInString(l.text)
}

// DisplayWidth returns the number of terminal columns the line occupies,
// counting each rune as one or two columns.
func (l Line) DisplayWidth() int {
	w := 0
	for _, r := range l.text {
		w += runeColumns(r)
	}
	return w
}

// BorderProjection returns a Line of the same rune count where every
// full-width rune is replaced by wide and every other rune by narrow.
func (l Line) BorderProjection(narrow, wide rune) Line {
	out := make([]rune, 0, len(l.text))
	for _, r := range l.text {
		if IsFullwidth(r) {
			out = append(out, wide)
		} else {
			out = append(out, narrow)
		}
	}
	return Line{text: string(out)}
}

// WrapWith returns the line enclosed by side glyphs with one space of
// padding on each side: "<side> <text> <side>".
func (l Line) WrapWith(side rune) Line {
	s := string(side)
	return Line{text: s + " " + l.text + " " + s}
}
