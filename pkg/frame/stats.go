package frame

// Stats summarizes the geometry of a text payload.
type Stats struct {
	Lines        int // number of content rows
	BorderLength int // glyphs in the horizontal border
	LongestWidth int // display columns of the longest line
	MaxWidth     int // display columns of the widest line
	WideRunes    int // full-width runes across all lines
}

// Misaligned reports whether some content row is displayed wider than the
// line the border was sized from.
func (s Stats) Misaligned() bool {
	return s.MaxWidth != s.LongestWidth
}

// Measure computes Stats for text as [Render] would lay it out. Empty text
// has no content rows.
func Measure(text string) Stats {
	if text == "" {
		return Stats{}
	}
	c := ContentFromText(text)
	longest := c.LongestLine()
	s := Stats{
		Lines:        c.Len(),
		BorderLength: longest.CharCount(),
		LongestWidth: longest.DisplayWidth(),
	}
	for _, l := range c.lines {
		if w := l.DisplayWidth(); w > s.MaxWidth {
			s.MaxWidth = w
		}
		for _, r := range l.text {
			if IsFullwidth(r) {
				s.WideRunes++
			}
		}
	}
	return s
}
