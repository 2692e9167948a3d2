// Package frame draws a text payload inside a box whose border is sized to
// the longest line of the payload.
//
// # Overview
//
// The package is a pure function with a handful of value types behind it:
//
//   - [IsFullwidth]: classifies a rune as one or two terminal columns
//   - [Line]: one row of content, able to project itself onto border glyphs
//   - [Content]: the ordered lines of the input text
//   - [Rectangle]: composes borders and side-wrapped content
//   - [EmptyFrame]: the fixed two-row shape used for empty input
//
// [Render] is the single entry point:
//
//	out := frame.Render("あaいbうcえeおo")
//	fmt.Println(out)
//	// + ー-ー-ー-ー-ー- +
//	// │ あaいbうcえeおo │
//	// + ー-ー-ー-ー-ー- +
//
// # Border Sizing
//
// The horizontal border holds one glyph per character of the longest line.
// A character that occupies two columns maps to [WideBorder], every other
// character to [NarrowBorder], so a longest line of CJK text produces a
// border of equal display width.
//
// The longest line is chosen by character count, not by display width. When
// lines mix narrow and wide characters unevenly, the border may be visibly
// shorter or longer than some content rows. [Measure] reports display widths
// for callers that want to detect this.
//
// # Line Breaks
//
// Only '\n' separates lines. A carriage return stays part of the line it
// ends, so CRLF input keeps a trailing '\r' in every row but the last.
//
// # Concurrency
//
// Every value is immutable and built fresh per call. [Render] is safe for
// concurrent use without synchronization.
package frame
