package window

import (
	"fmt"
	"image/color"

	"github.com/YangRuhao/Snake-Game/internal/game"
	"github.com/YangRuhao/Snake-Game/internal/playfield"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	// basicfont.Face7x13 advance
	glyphWidth = 7

	titleScale  = 8
	bannerScale = 5
	promptScale = 2
	hudScale    = 2

	borderWidth       = 4
	placeholderRadius = 5
)

var (
	backgroundColor = color.RGBA{R: 130, G: 205, B: 71, A: 255}
	snakeColor      = color.RGBA{R: 33, G: 70, B: 199, A: 255}
	borderColor     = color.RGBA{R: 255, A: 255}
	inkColor        = color.Black
)

func drawFrame(screen *ebiten.Image, field *playfield.Playfield, cherry *ebiten.Image, snap game.Snapshot) {
	screen.Fill(backgroundColor)

	if snap.Status == game.StatusNotStarted {
		drawCentered(screen, field, "SNAKE", titleScale, 200)
		drawCentered(screen, field, "GAME", titleScale, 300)
		drawCentered(screen, field, "Press  any  key  to  begin", promptScale, 330)
		return
	}

	// HUD: Score & Best
	drawText(screen, fmt.Sprintf("SCORE: %02d", snap.Score), hudScale, 20, 30)
	drawText(screen, fmt.Sprintf("BEST: %02d", snap.Best), hudScale, 630, 30)

	if snap.Cherry != nil {
		drawCherry(screen, cherry, float64(snap.Cherry.X), float64(snap.Cherry.Y))
	}

	switch snap.Status {
	case game.StatusGameOver:
		drawCentered(screen, field, "GAME OVER", bannerScale, 300)
		drawCentered(screen, field, "Press  enter  to  start  again", promptScale, 330)
	case game.StatusPaused:
		drawText(screen, "Paused", 1, 600, 14)
	}

	cell := float32(field.CellSize)
	vector.DrawFilledRect(screen, float32(snap.Head.X), float32(snap.Head.Y), cell, cell, snakeColor, false)
	for _, t := range snap.Tail {
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), cell, cell, snakeColor, false)
	}

	vector.StrokeRect(screen, float32(field.OffsetX), float32(field.OffsetY), float32(field.Width), float32(field.Height), borderWidth, borderColor, false)
}

func drawCherry(dst, sprite *ebiten.Image, x, y float64) {
	if sprite == nil {
		vector.DrawFilledCircle(dst, float32(x)+placeholderRadius, float32(y)+placeholderRadius, placeholderRadius, inkColor, true)
		return
	}
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(playfield.CherrySize)/float64(b.Dx()), float64(playfield.CherrySize)/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(sprite, op)
}

// drawText draws s with its baseline at y, scaled up from the 7x13 face.
func drawText(dst *ebiten.Image, s string, scale, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(inkColor)
	text.DrawWithOptions(dst, s, basicfont.Face7x13, op)
}

// drawCentered centers s horizontally over the playfield.
func drawCentered(dst *ebiten.Image, field *playfield.Playfield, s string, scale, y int) {
	w := textWidth(s, scale)
	drawText(dst, s, scale, field.OffsetX+(field.Width-w)/2, y)
}

func textWidth(s string, scale int) int {
	return len([]rune(s)) * glyphWidth * scale
}
