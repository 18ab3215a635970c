package tui

import (
	"fmt"
	"strings"

	"github.com/YangRuhao/Snake-Game/internal/entities"
	"github.com/YangRuhao/Snake-Game/internal/game"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellSnake
	cellHead
	cellCherry
	cellText
)

type cell struct {
	kind cellKind
	r    rune
}

type styles struct {
	board  lipgloss.Style
	hud    lipgloss.Style
	banner lipgloss.Style
	snake  string
	head   string
	cherry string
	empty  string
}

func newStyles() styles {
	return styles{
		board: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("9")).
			Background(lipgloss.Color("#82CD47")),
		hud:    lipgloss.NewStyle().Bold(true),
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		snake:  lipgloss.NewStyle().Foreground(lipgloss.Color("#2146C7")).Render("█"),
		head:   lipgloss.NewStyle().Foreground(lipgloss.Color("#2146C7")).Bold(true).Render("▓"),
		cherry: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("●"),
		empty:  " ",
	}
}

func (m Model) View() string {
	cols, rows := m.field.Cells()
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
	}
	snap := m.snap

	hud := ""
	switch snap.Status {
	case game.StatusNotStarted:
		writeCentered(grid, rows/2-2, "S N A K E")
		writeCentered(grid, rows/2, "Press  any  key  to  begin")
	default:
		hud = fmt.Sprintf("SCORE: %02d", snap.Score)
		if snap.Status == game.StatusPaused {
			hud += "   Paused"
		}
		best := fmt.Sprintf("BEST: %02d", snap.Best)
		if pad := cols + 2 - len(hud) - len(best); pad > 0 {
			hud += strings.Repeat(" ", pad)
		}
		hud += best

		if snap.Cherry != nil {
			m.put(grid, *snap.Cherry, cellCherry)
		}
		for _, t := range snap.Tail {
			m.put(grid, t, cellSnake)
		}
		m.put(grid, snap.Head, cellHead)

		if snap.Status == game.StatusGameOver {
			writeCentered(grid, rows/2-1, "GAME OVER")
			writeCentered(grid, rows/2+1, "Press  enter  to  start  again")
		}
	}

	var b strings.Builder
	for y, row := range grid {
		for _, c := range row {
			b.WriteString(m.render(c))
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	board := m.styles.board.Render(b.String())
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.hud.Render(hud), board)
}

func (m Model) render(c cell) string {
	switch c.kind {
	case cellSnake:
		return m.styles.snake
	case cellHead:
		return m.styles.head
	case cellCherry:
		return m.styles.cherry
	case cellText:
		return m.styles.banner.Render(string(c.r))
	default:
		return m.styles.empty
	}
}

// put marks the cell under p; positions off the board (sentinels, a head
// that just crashed through the border) are skipped.
func (m Model) put(grid [][]cell, p entities.Point, kind cellKind) {
	x, y := m.field.Cell(p)
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = cell{kind: kind}
}

func writeCentered(grid [][]cell, y int, s string) {
	if y < 0 || y >= len(grid) {
		return
	}
	rs := []rune(s)
	x0 := (len(grid[y]) - len(rs)) / 2
	for i, r := range rs {
		x := x0 + i
		if x < 0 || x >= len(grid[y]) {
			continue
		}
		grid[y][x] = cell{kind: cellText, r: r}
	}
}
