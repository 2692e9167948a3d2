package frame

import "github.com/mattn/go-runewidth"

// eastAsian classifies ambiguous-width runes as narrow regardless of the
// process locale.
var eastAsian = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// IsFullwidth reports whether r occupies two terminal columns under East Asian
// width rules. Ambiguous, zero-width and unassigned code points are narrow.
func IsFullwidth(r rune) bool {
	return eastAsian.RuneWidth(r) == 2
}

// runeColumns returns 2 for full-width runes and 1 for everything else.
func runeColumns(r rune) int {
	if IsFullwidth(r) {
		return 2
	}
	return 1
}
