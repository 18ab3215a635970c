package playfield

import (
	"math/rand"
	"testing"

	"github.com/YangRuhao/Snake-Game/internal/entities"
)

func TestDefaultDimensions(t *testing.T) {
	p := Default()
	if p.ScreenWidth() != 800 || p.ScreenHeight() != 580 {
		t.Fatalf("unexpected screen size: got %dx%d, want 800x580", p.ScreenWidth(), p.ScreenHeight())
	}
	if got := p.Spawn(); got != (entities.Point{X: 380, Y: 260}) {
		t.Fatalf("unexpected spawn %v", got)
	}
	if cx, cy := p.Cells(); cx != 76 || cy != 52 {
		t.Fatalf("unexpected cell grid %dx%d", cx, cy)
	}
}

func TestEscapedBounds(t *testing.T) {
	p := Default()
	tests := []struct {
		name string
		pt   entities.Point
		want bool
	}{
		{name: "spawn", pt: p.Spawn(), want: false},
		{name: "left margin", pt: entities.Point{X: 20, Y: 200}, want: true},
		{name: "just inside left", pt: entities.Point{X: 21, Y: 200}, want: false},
		{name: "right margin", pt: entities.Point{X: 770, Y: 200}, want: true},
		{name: "just inside right", pt: entities.Point{X: 760, Y: 200}, want: false},
		{name: "top margin", pt: entities.Point{X: 200, Y: 40}, want: true},
		{name: "just inside top", pt: entities.Point{X: 200, Y: 50}, want: false},
		{name: "bottom margin", pt: entities.Point{X: 200, Y: 550}, want: true},
		{name: "just inside bottom", pt: entities.Point{X: 200, Y: 540}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Escaped(tc.pt); got != tc.want {
				t.Fatalf("Escaped(%v) = %v, want %v", tc.pt, got, tc.want)
			}
		})
	}
}

func TestRandomCherryStaysInside(t *testing.T) {
	p := Default()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := p.RandomCherry(rng)
		if c.X < p.OffsetX || c.X+CherrySize > p.OffsetX+p.Width {
			t.Fatalf("cherry x out of range: %v", c)
		}
		if c.Y < p.OffsetY || c.Y+CherrySize > p.OffsetY+p.Height {
			t.Fatalf("cherry y out of range: %v", c)
		}
	}
}

type fixedIntn int

func (f fixedIntn) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestRandomCherryExtremes(t *testing.T) {
	p := Default()
	if got := p.RandomCherry(fixedIntn(0)); got != (entities.Point{X: 20, Y: 40}) {
		t.Fatalf("lowest cherry = %v", got)
	}
	if got := p.RandomCherry(fixedIntn(1 << 20)); got != (entities.Point{X: 719, Y: 499}) {
		t.Fatalf("highest cherry = %v", got)
	}
}

func TestCell(t *testing.T) {
	p := Default()
	if x, y := p.Cell(entities.Point{X: 20, Y: 40}); x != 0 || y != 0 {
		t.Fatalf("corner cell = %d,%d", x, y)
	}
	if x, y := p.Cell(entities.Point{X: 385, Y: 265}); x != 36 || y != 22 {
		t.Fatalf("spawn cell = %d,%d", x, y)
	}
	if x, y := p.Cell(entities.Point{X: -10, Y: -10}); x != -3 || y != -5 {
		t.Fatalf("sentinel cell = %d,%d", x, y)
	}
}
