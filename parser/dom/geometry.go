package dom

// Geometry is the box a node occupies. Only hit-testing reads it.
type Geometry struct {
	X, Y          float64
	Width, Height float64
	Margin        float64
	Padding       float64
	BorderWidth   float64
}

func (g Geometry) OuterWidth() float64 {
	return g.Width + 2*(g.Margin+g.Padding+g.BorderWidth)
}

func (g Geometry) OuterHeight() float64 {
	return g.Height + 2*(g.Margin+g.Padding+g.BorderWidth)
}

// ContainsPoint reports whether (x, y) falls inside the content rectangle,
// edges included.
func (g Geometry) ContainsPoint(x, y float64) bool {
	return x >= g.X && x <= g.X+g.Width && y >= g.Y && y <= g.Y+g.Height
}
