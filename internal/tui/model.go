// Package tui runs the game in a terminal with Bubble Tea. One character
// stands for one 10px board cell.
package tui

import (
	"time"

	"github.com/YangRuhao/Snake-Game/internal/game"
	"github.com/YangRuhao/Snake-Game/internal/playfield"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultRefresh is how often the view re-reads the game state.
const DefaultRefresh = time.Second / 30

// Controller is what the model drives: a key sink and a snapshot source.
type Controller interface {
	Send(k game.Key) bool
	Snapshot() game.Snapshot
}

// frameMsg asks the model to pull a fresh snapshot.
type frameMsg time.Time

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type Model struct {
	ctrl    Controller
	field   *playfield.Playfield
	refresh time.Duration
	styles  styles
	snap    game.Snapshot
}

func NewModel(ctrl Controller, field *playfield.Playfield, refresh time.Duration) Model {
	if field == nil {
		field = playfield.Default()
	}
	if refresh <= 0 {
		refresh = DefaultRefresh
	}
	return Model{
		ctrl:    ctrl,
		field:   field,
		refresh: refresh,
		styles:  newStyles(),
		snap:    ctrl.Snapshot(),
	}
}

func (m Model) Init() tea.Cmd {
	return frameCmd(m.refresh)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		m.ctrl.Send(translateKey(msg))
		m.snap = m.ctrl.Snapshot()
		return m, nil
	case frameMsg:
		m.snap = m.ctrl.Snapshot()
		return m, frameCmd(m.refresh)
	}
	return m, nil
}

func translateKey(msg tea.KeyMsg) game.Key {
	switch msg.String() {
	case "up":
		return game.KeyUp
	case "down":
		return game.KeyDown
	case "left":
		return game.KeyLeft
	case "right":
		return game.KeyRight
	case "p", "P":
		return game.KeyPause
	case "enter":
		return game.KeyConfirm
	default:
		return game.KeyOther
	}
}
