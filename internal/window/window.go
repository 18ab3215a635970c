package window

import (
	"github.com/YangRuhao/Snake-Game/internal/game"
	"github.com/YangRuhao/Snake-Game/internal/playfield"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Title is the window title.
const Title = "Snake"

// Controller is the part of the game loop the window needs: somewhere to
// send key presses and somewhere to read state from.
type Controller interface {
	Send(k game.Key) bool
	Snapshot() game.Snapshot
}

// Game adapts a Controller to ebiten. It never mutates game state itself;
// key presses go to the controller and Draw renders its latest snapshot.
type Game struct {
	ctrl       Controller
	field      *playfield.Playfield
	cherry     *ebiten.Image
	logger     *log.Logger
	fullscreen bool
	pressed    []ebiten.Key
}

// New builds the window adapter. A cherry sprite that cannot be loaded is
// logged and replaced by a placeholder circle.
func New(ctrl Controller, field *playfield.Playfield, cherryPath string, logger *log.Logger) *Game {
	if field == nil {
		field = playfield.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{ctrl: ctrl, field: field, logger: logger}
	sprite, err := loadCherrySprite(cherryPath)
	if err != nil {
		logger.Warn("using placeholder cherry", "path", cherryPath, "err", err)
	}
	g.cherry = sprite
	return g
}

func (g *Game) ScreenWidth() int {
	return g.field.ScreenWidth()
}

func (g *Game) ScreenHeight() int {
	return g.field.ScreenHeight()
}

func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		switch k {
		case ebiten.KeyEscape:
			return ebiten.Termination
		case ebiten.KeyF:
			// Fullscreen toggle with 'F'
			g.fullscreen = !g.fullscreen
			ebiten.SetFullscreen(g.fullscreen)
		default:
			g.ctrl.Send(translateKey(k))
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.field, g.cherry, g.ctrl.Snapshot())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func translateKey(k ebiten.Key) game.Key {
	switch k {
	case ebiten.KeyArrowUp:
		return game.KeyUp
	case ebiten.KeyArrowDown:
		return game.KeyDown
	case ebiten.KeyArrowLeft:
		return game.KeyLeft
	case ebiten.KeyArrowRight:
		return game.KeyRight
	case ebiten.KeyP:
		return game.KeyPause
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return game.KeyConfirm
	default:
		return game.KeyOther
	}
}
