package game

// Side identifies one half of the court.
type Side int

const (
	SideLeft  Side = 0 // player
	SideRight Side = 1 // opponent
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Direction represents keyboard paddle movement
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Point is a position in court coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rects share any interior area.
// Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Score holds the per-side point counters.
type Score struct {
	Left  int
	Right int
}

// Events records what happened during a single Update.
type Events struct {
	WallBounce bool
	PaddleHit  bool
	Scored     bool
	Scorer     Side
}
