package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/piece"
)

type Theme struct {
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors [piece.KindCount]lipgloss.Color
}

var theme = Theme{
	BorderColor: lipgloss.Color("15"),
	TextColor:   lipgloss.Color("250"),
	AccentColor: lipgloss.Color("226"),
	PieceColors: [piece.KindCount]lipgloss.Color{
		piece.I: "51",
		piece.O: "226",
		piece.T: "93",
		piece.L: "208",
		piece.J: "21",
		piece.S: "46",
		piece.Z: "196",
	},
}

const cellText = "  "

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(theme.AccentColor)
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor).Faint(true)
}

func warningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func viewMenu(m Model) string {
	content := renderMenu("BLOCKFALL", menuItems, m.menuIndex, "Enter or 1-3 to select")
	return center(m.width, m.height, content)
}

func viewGame(m Model) string {
	snap := m.session.game.Snapshot()
	boardView := renderBoard(snap, m.cfg.Ghost)
	info := renderInfo(snap, m.session.lastResult)
	content := lipgloss.JoinHorizontal(lipgloss.Top, boardView, "  ", info)
	help := helpStyle().Render("Arrows=Move, Up=Rotate, Space=Hard Drop\nC=Hold, P=Pause, Q=Quit")
	return center(m.width, m.height, lipgloss.JoinVertical(lipgloss.Left, content, "", help))
}

func viewGameOver(m Model) string {
	p := m.session.game.Progress()
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle().Render("GAME OVER"),
		"",
		fmt.Sprintf("Final Score: %d", p.Score),
		"",
		helpStyle().Render("Press any key to continue"),
	)
	return center(m.width, m.height, content)
}

func viewNameEntry(m Model) string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle().Render("New High Score!"),
		"",
		fmt.Sprintf("Score: %d", m.session.game.Progress().Score),
		"",
		"Enter your name: "+m.nameInput+"_",
	)
	return center(m.width, m.height, content)
}

func viewScores(m Model) string {
	var b strings.Builder
	b.WriteString(titleStyle().Render("HIGH SCORES"))
	b.WriteString("\n\n")
	entries := m.table.Entries()
	if len(entries) == 0 {
		b.WriteString(helpStyle().Render("No scores yet"))
		b.WriteString("\n")
	}
	for i, e := range entries {
		b.WriteString(fmt.Sprintf("%2d. %-16s %6d\n", i+1, e.Name, e.Score))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle().Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle().Render("Press any key to continue"))
	return center(m.width, m.height, b.String())
}

func viewPlayAgain(m Model) string {
	title := "Back to menu?"
	if m.afterGame {
		title = "Play again?"
	}
	content := renderMenu(title, []string{"Y - Yes", "N - No"}, -1, "")
	return center(m.width, m.height, content)
}

func renderBoard(snap engine.Snapshot, showGhost bool) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cells := snap.Composite()

	ghost := make(map[piece.Point]bool)
	if showGhost && !snap.Progress.Over && snap.GhostY != snap.Active.Y {
		for p := range snap.Active.Shape.Cells() {
			x, y := snap.Active.X+p.X, snap.GhostY+p.Y
			if board.InBounds(x, y) && cells[y][x] == piece.None {
				ghost[piece.Point{X: x, Y: y}] = true
			}
		}
	}

	var b strings.Builder
	edge := border.Render("+" + strings.Repeat("-", board.Width*len(cellText)) + "+")
	b.WriteString(edge)
	b.WriteString("\n")
	for y := range board.Height {
		b.WriteString(border.Render("|"))
		for x := range board.Width {
			c := cells[y][x]
			switch {
			case c != piece.None:
				b.WriteString(cellStyle(c).Render(cellText))
			case ghost[piece.Point{X: x, Y: y}]:
				color := theme.PieceColors[snap.Active.Kind]
				b.WriteString(lipgloss.NewStyle().Foreground(color).Faint(true).Render(".."))
			default:
				b.WriteString(cellText)
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(edge)

	if snap.Progress.Paused {
		return lipgloss.JoinVertical(lipgloss.Center, b.String(), titleStyle().Render("PAUSED"))
	}
	return b.String()
}

func cellStyle(c piece.Color) lipgloss.Style {
	k, ok := piece.KindOf(c)
	if !ok {
		return lipgloss.NewStyle().Background(theme.BorderColor)
	}
	return lipgloss.NewStyle().Background(theme.PieceColors[k])
}

func renderInfo(snap engine.Snapshot, last engine.Result) string {
	p := snap.Progress
	hold := "     "
	if snap.Hold.Full {
		hold = renderMiniPiece(snap.Hold.Piece)
	}

	lines := []string{
		titleStyle().Render("NEXT"),
		renderMiniPiece(snap.Next),
		"",
		titleStyle().Render("HOLD"),
		hold,
		"",
		fmt.Sprintf("Score: %d", p.Score),
		fmt.Sprintf("Level: %d", p.Level),
		fmt.Sprintf("Lines: %d", p.Lines),
	}
	if last.Cleared > 0 {
		lines = append(lines, "", highlightStyle().Render(clearLabel(last.Cleared)))
	}
	return strings.Join(lines, "\n")
}

func clearLabel(rows int) string {
	switch rows {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS"
	}
}

func renderMiniPiece(p piece.Piece) string {
	style := lipgloss.NewStyle().Background(theme.PieceColors[p.Kind])
	var b strings.Builder
	for y := range p.Shape.Height() {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := range p.Shape.Width() {
			if p.Shape.Filled(x, y) {
				b.WriteString(style.Render(cellText))
			} else {
				b.WriteString(cellText)
			}
		}
	}
	return b.String()
}

func renderMenu(title string, items []string, selected int, footer string) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		maxWidth = max(maxWidth, lipgloss.Width(item))
	}
	maxWidth = max(maxWidth, lipgloss.Width(footer))

	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle().Render(title)))
	b.WriteString("\n\n")
	for i, item := range items {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle().Render(item)))
		} else {
			b.WriteString(lineStyle.Render(item))
		}
		b.WriteString("\n")
	}
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(lineStyle.Render(helpStyle().Render(footer)))
	}
	return b.String()
}
