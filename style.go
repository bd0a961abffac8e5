package plot

const FontSize = 12.0

// TextStyle describes how a piece of text is rendered. The zero value means
// FontSize-sized text in the current colour.
type TextStyle struct {
	Size   float64
	Color  string
	Family string
	Bold   bool
	Italic bool
}

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return FontSize
	}
	return s.Size
}

type LineStyle struct {
	Color   string
	Width   float64
	Opacity float64
	Dash    int
}

func (s LineStyle) width() float64 {
	if s.Width <= 0 {
		return 1
	}
	return s.Width
}

type FillStyle struct {
	Color   string
	Opacity float64
}
