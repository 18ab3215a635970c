package window

import (
	"fmt"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func loadCherrySprite(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no cherry image configured")
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load cherry image %q: %w", path, err)
	}
	return img, nil
}
