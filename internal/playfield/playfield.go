package playfield

import "github.com/YangRuhao/Snake-Game/internal/entities"

const (
	defaultWidth   = 760
	defaultHeight  = 520
	defaultOffsetX = 20
	defaultOffsetY = 40
	// CherrySize is the drawn size of the cherry sprite.
	CherrySize = 60
	// PickupTolerance is how close the head must get to the cherry.
	PickupTolerance = 20
	// bottomPadding is the strip left under the border.
	bottomPadding = 20
)

// Intn is the slice of a random source the playfield needs.
type Intn interface {
	Intn(n int) int
}

// Playfield is the bordered board the snake lives in. Coordinates are
// pixels; the border's top-left corner sits at (OffsetX, OffsetY).
type Playfield struct {
	Width    int
	Height   int
	OffsetX  int
	OffsetY  int
	CellSize int
}

func Default() *Playfield {
	return &Playfield{
		Width:    defaultWidth,
		Height:   defaultHeight,
		OffsetX:  defaultOffsetX,
		OffsetY:  defaultOffsetY,
		CellSize: entities.Step,
	}
}

func (p *Playfield) ScreenWidth() int {
	return p.Width + 2*p.OffsetX
}

func (p *Playfield) ScreenHeight() int {
	return p.Height + p.OffsetY + bottomPadding
}

// Spawn is where a new snake's head starts.
func (p *Playfield) Spawn() entities.Point {
	return entities.Point{X: p.Width / 2, Y: p.Height / 2}
}

func (p *Playfield) Left() int   { return p.OffsetX }
func (p *Playfield) Top() int    { return p.OffsetY }
func (p *Playfield) Right() int  { return p.OffsetX + p.Width - p.CellSize }
func (p *Playfield) Bottom() int { return p.OffsetY + p.Height - p.CellSize }

// Escaped reports whether a cell at pt touches or crosses the border.
func (p *Playfield) Escaped(pt entities.Point) bool {
	return pt.X <= p.Left() || pt.X >= p.Right() || pt.Y <= p.Top() || pt.Y >= p.Bottom()
}

// RandomCherry picks a uniformly random top-left corner for the cherry
// sprite such that the whole sprite stays inside the border.
func (p *Playfield) RandomCherry(rng Intn) entities.Point {
	return entities.Point{
		X: rng.Intn(p.Width-CherrySize) + p.OffsetX,
		Y: rng.Intn(p.Height-CherrySize) + p.OffsetY,
	}
}

// Cell converts a pixel position to board cell coordinates, relative to
// the border's corner. Positions left of or above the border come back
// negative.
func (p *Playfield) Cell(pt entities.Point) (int, int) {
	return floorDiv(pt.X-p.OffsetX, p.CellSize), floorDiv(pt.Y-p.OffsetY, p.CellSize)
}

// Cells is the board size in cells.
func (p *Playfield) Cells() (int, int) {
	return p.Width / p.CellSize, p.Height / p.CellSize
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
