package input

// MouseState tracks the last cursor position so absolute positions can be
// turned into look deltas. The first sample after a reset yields no delta.
type MouseState struct {
	LastX, LastY float32
	Initialized  bool
}

// Delta returns the movement since the previous sample. Y is inverted so
// that moving the mouse up gives a positive pitch delta.
func (m *MouseState) Delta(x, y float32) (dx, dy float32) {
	if !m.Initialized {
		m.LastX, m.LastY = x, y
		m.Initialized = true
		return 0, 0
	}
	dx = x - m.LastX
	dy = m.LastY - y
	m.LastX, m.LastY = x, y
	return dx, dy
}

// Reset forgets the last position, e.g. when the mouse is released.
func (m *MouseState) Reset() {
	m.Initialized = false
}
