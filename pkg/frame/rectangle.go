package frame

import "strings"

// Border glyphs used by [Rectangle].
const (
	Corner       = '+'
	Side         = '│'
	NarrowBorder = '-'
	WideBorder   = 'ー'
)

// Rectangle frames a [Content] value between two border rows.
type Rectangle struct {
	content Content
}

// RectangleFromText builds a Rectangle around [ContentFromText](text).
func RectangleFromText(text string) Rectangle {
	return Rectangle{content: ContentFromText(text)}
}

// Content returns the framed content.
func (r Rectangle) Content() Content {
	return r.content
}

// HorizontalBorder returns the border glyphs for the longest line, one glyph
// per rune, [WideBorder] where the rune is full-width and [NarrowBorder]
// elsewhere.
func (r Rectangle) HorizontalBorder() string {
	return r.content.LongestLine().BorderProjection(NarrowBorder, WideBorder).String()
}

// RenderBorderRow returns "<corner> <border> <corner>".
func (r Rectangle) RenderBorderRow() string {
	c := string(Corner)
	return c + " " + r.HorizontalBorder() + " " + c
}

// Render returns the top border, the wrapped content rows and the bottom
// border joined by '\n'.
func (r Rectangle) Render() string {
	border := r.RenderBorderRow()
	return strings.Join([]string{border, r.content.RenderBody(), border}, "\n")
}
