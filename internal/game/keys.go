package game

import "github.com/YangRuhao/Snake-Game/internal/entities"

// Key is a frontend-neutral key press. Frontends translate their own key
// codes into these before handing them to the loop.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPause
	KeyConfirm
)

// Direction returns the heading an arrow key asks for.
func (k Key) Direction() (entities.Direction, bool) {
	switch k {
	case KeyUp:
		return entities.DirUp, true
	case KeyDown:
		return entities.DirDown, true
	case KeyLeft:
		return entities.DirLeft, true
	case KeyRight:
		return entities.DirRight, true
	default:
		return entities.DirNone, false
	}
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPause:
		return "pause"
	case KeyConfirm:
		return "confirm"
	default:
		return "other"
	}
}
