package plot

// Measurer gives the device-space size of rendered text. Implementations
// wrap a drawing backend; Estimate is the fallback when the backend offers
// no font metrics, as with SVG output.
type Measurer interface {
	Measure(text string, style TextStyle) (float64, float64, error)
	LineHeight(style TextStyle) float64
}

// Estimate sizes text from the font size alone.
type Estimate struct{}

func (Estimate) Measure(text string, style TextStyle) (float64, float64, error) {
	sz := style.size()
	return float64(len(text)) * sz * 0.6, sz, nil
}

func (Estimate) LineHeight(style TextStyle) float64 {
	return style.size() * 1.4
}

type measureKey struct {
	text  string
	style TextStyle
}

// memoMeasurer caches measurements for the duration of one layout pass.
// Errors are not cached so they keep surfacing.
type memoMeasurer struct {
	m     Measurer
	sizes map[measureKey][2]float64
}

func newMemoMeasurer(m Measurer) *memoMeasurer {
	return &memoMeasurer{
		m:     m,
		sizes: make(map[measureKey][2]float64),
	}
}

func (mm *memoMeasurer) Measure(text string, style TextStyle) (float64, float64, error) {
	k := measureKey{
		text:  text,
		style: style,
	}
	if wh, ok := mm.sizes[k]; ok {
		return wh[0], wh[1], nil
	}
	w, h, err := mm.m.Measure(text, style)
	if err != nil {
		return 0, 0, err
	}
	mm.sizes[k] = [2]float64{w, h}
	return w, h, nil
}

func (mm *memoMeasurer) LineHeight(style TextStyle) float64 {
	return mm.m.LineHeight(style)
}
