package charting

// Palette maps a cluster position to a color.
type Palette interface {
	Color(position int) (string, error)
	Len() int
}

var defaultColors = []string{`red`, `green`, `blue`}

// DefaultPalette returns the fixed red, green, blue palette. A fourth cluster
// is an error.
func DefaultPalette() Palette {
	return NewFixedPalette(defaultColors...)
}

func NewFixedPalette(colors ...string) *FixedPalette {
	return &FixedPalette{colors: append([]string(nil), colors...)}
}

type FixedPalette struct {
	colors []string
}

func (p *FixedPalette) Color(position int) (string, error) {
	if position < 0 || position >= len(p.colors) {
		return ``, &PaletteError{Position: position, Size: len(p.colors)}
	}
	return p.colors[position], nil
}

func (p *FixedPalette) Len() int {
	return len(p.colors)
}

func NewCyclicPalette(colors ...string) *CyclicPalette {
	return &CyclicPalette{colors: append([]string(nil), colors...)}
}

// CyclicPalette wraps around once every color has been used. It only fails
// when it holds no colors at all.
type CyclicPalette struct {
	colors []string
}

func (p *CyclicPalette) Color(position int) (string, error) {
	size := len(p.colors)
	if size == 0 || position < 0 {
		return ``, &PaletteError{Position: position, Size: size}
	}
	return p.colors[position%size], nil
}

func (p *CyclicPalette) Len() int {
	return len(p.colors)
}
