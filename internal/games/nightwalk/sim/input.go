package sim

// Input is the direction vector sampled once per tick.
type Input struct {
	Left, Right, Up, Down bool
}

// edgeDetector keeps the previous frame to turn held keys into presses.
type edgeDetector struct {
	prev Input
}

// pressed returns the directions that went down since the last frame.
func (e *edgeDetector) pressed(in Input) Input {
	p := Input{
		Left:  in.Left && !e.prev.Left,
		Right: in.Right && !e.prev.Right,
		Up:    in.Up && !e.prev.Up,
		Down:  in.Down && !e.prev.Down,
	}
	e.prev = in
	return p
}
