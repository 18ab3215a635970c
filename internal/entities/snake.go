package entities

const (
	// Step is how far the head advances per move.
	Step = 10
	// initialTail is the number of sentinel segments a new snake carries.
	initialTail = 3
)

// sentinel is where freshly grown segments wait until a move shifts a real
// position into them.
var sentinel = Point{X: -10, Y: -10}

// Snake is a head, a heading and the trailing segments ordered head-to-tail.
// The tail only ever grows.
type Snake struct {
	head    Point
	heading Direction
	tail    []Point
}

func NewSnake(x, y int) *Snake {
	return &Snake{
		head:    Point{X: x, Y: y},
		heading: DirRight,
		tail:    make([]Point, initialTail),
	}
}

// Move makes every segment take its predecessor's old position and then
// advances the head one Step along the heading.
func (s *Snake) Move() {
	for i := len(s.tail) - 1; i > 0; i-- {
		s.tail[i] = s.tail[i-1]
	}
	if len(s.tail) > 0 {
		s.tail[0] = s.head
	}
	s.head.Move(s.heading, Step)
}

// AddTail appends one segment at the off-board sentinel.
func (s *Snake) AddTail() {
	s.tail = append(s.tail, sentinel)
}

// Turn changes the heading only when d is on the other axis, so the snake
// can never reverse into its own neck. It reports whether the heading changed.
func (s *Snake) Turn(d Direction) bool {
	if (d.IsHorizontal() && s.heading.IsVertical()) || (d.IsVertical() && s.heading.IsHorizontal()) {
		s.heading = d
		return true
	}
	return false
}

// BitesItself reports whether the head sits exactly on a tail segment.
func (s *Snake) BitesItself() bool {
	for _, t := range s.tail {
		if s.head.Equals(t) {
			return true
		}
	}
	return false
}

func (s *Snake) Head() Point {
	return s.head
}

func (s *Snake) Heading() Direction {
	return s.heading
}

// Len is the number of tail segments, excluding the head.
func (s *Snake) Len() int {
	return len(s.tail)
}

// Tail returns a copy of the segments, head-to-tail.
func (s *Snake) Tail() []Point {
	out := make([]Point, len(s.tail))
	copy(out, s.tail)
	return out
}
