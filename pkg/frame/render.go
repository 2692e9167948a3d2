package frame

import "strings"

// Glyphs of the empty-input frame.
const (
	emptyTopLeft     = "┌"
	emptyTopRight    = "┐"
	emptyBottomLeft  = "└"
	emptyBottomRight = "┘"
	emptyPlaceholder = "─"
)

// EmptyFrame returns the two-row frame drawn for empty input. It has no
// content row.
func EmptyFrame() string {
	return strings.Join([]string{
		emptyTopLeft + " " + emptyPlaceholder + " " + emptyTopRight,
		emptyBottomLeft + " " + emptyPlaceholder + " " + emptyBottomRight,
	}, "\n")
}

// Render frames text. The empty string yields [EmptyFrame]; any other input
// is rendered by [Rectangle]. Render never fails.
func Render(text string) string {
	if text == "" {
		return EmptyFrame()
	}
	return RectangleFromText(text).Render()
}
