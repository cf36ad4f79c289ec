package main

import (
	"log"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/sound"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenGameOver
	screenNameEntry
	screenScores
	screenPlayAgain
)

const maxNameLength = 16

var menuItems = []string{"1. Start Game", "2. High Scores", "3. Quit"}

// tickMsg drives one frame of the session that scheduled it. Ticks from an
// earlier session are dropped.
type tickMsg struct {
	session *session
}

type Model struct {
	cfg    Config
	clock  clock.Clock
	table  *highscore.Table
	player *sound.Player

	screen    Screen
	width     int
	height    int
	menuIndex int
	nameInput string
	afterGame bool
	notice    string

	session *session
}

// session is one game in progress. It is shared by every copy of the Model
// so scheduler listeners can update it.
type session struct {
	game       *engine.Game
	input      *loop.Queue
	sched      *loop.Scheduler
	lastResult engine.Result
}

func NewModel(cfg Config, table *highscore.Table, player *sound.Player, c clock.Clock) Model {
	return Model{
		cfg:    cfg,
		clock:  c,
		table:  table,
		player: player,
		screen: screenMenu,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenGame || msg.session != m.session {
			return m, nil
		}
		return m, m.step()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenGameOver:
			return m, m.updateGameOver()
		case screenNameEntry:
			return m, m.updateNameEntry(msg)
		case screenScores:
			return m, m.updateScores()
		case screenPlayAgain:
			return m, m.updatePlayAgain(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenGameOver:
		return viewGameOver(m)
	case screenNameEntry:
		return viewNameEntry(m)
	case screenScores:
		return viewScores(m)
	case screenPlayAgain:
		return viewPlayAgain(m)
	default:
		return ""
	}
}

func (m Model) tickCmd() tea.Cmd {
	s := m.session
	return tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg { return tickMsg{session: s} })
}

func (m *Model) startGame() tea.Cmd {
	seed := m.cfg.Seed
	if seed == 0 {
		seed = uint64(m.clock.Now().UnixNano())
	}

	s := &session{
		game: engine.New(
			engine.WithClock(m.clock),
			engine.WithGenerator(piece.NewSeededRandomizer(seed)),
		),
		input: loop.NewQueue(32),
	}
	s.sched = loop.NewGameScheduler(s.game, s.input)
	s.sched.Listen(m.player.Listener())
	s.sched.Listen(func(ev loop.Event) {
		if ev.Result.Locked || ev.Result.Held {
			s.lastResult = ev.Result
		}
		if ev.Kind == loop.EventGameOver {
			p := s.game.Progress()
			log.Printf("game over score=%d lines=%d level=%d", p.Score, p.Lines, p.Level)
		}
	})

	m.session = s
	m.screen = screenGame
	log.Printf("game start seed=%d", seed)
	return m.tickCmd()
}

// step runs one scheduler frame and leaves the game screen once it ends.
func (m *Model) step() tea.Cmd {
	if m.session.sched.Once() {
		return m.tickCmd()
	}
	m.screen = screenGameOver
	return nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "1":
		m.menuIndex = 0
		return m.selectMenu()
	case "2":
		m.menuIndex = 1
		return m.selectMenu()
	case "3", "q", "esc":
		return tea.Quit
	case "enter", " ":
		return m.selectMenu()
	}
	return nil
}

func (m *Model) selectMenu() tea.Cmd {
	switch m.menuIndex {
	case 0:
		return m.startGame()
	case 1:
		m.afterGame = false
		m.screen = screenScores
		return nil
	default:
		return tea.Quit
	}
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	c, ok := commandForKey(msg)
	if !ok {
		return nil
	}
	if !m.session.input.Push(c) {
		log.Printf("input queue full, dropped %s", c)
	}
	// Apply right away rather than waiting for the next tick. The running
	// tick chain is left alone unless this frame ended the game.
	if !m.session.sched.Once() {
		m.screen = screenGameOver
	}
	return nil
}

func (m *Model) updateGameOver() tea.Cmd {
	score := m.session.game.Progress().Score
	if m.table.Qualifies(score) {
		m.nameInput = ""
		m.screen = screenNameEntry
		return nil
	}
	m.afterGame = true
	m.screen = screenScores
	return nil
}

func (m *Model) updateNameEntry(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		name := m.nameInput
		if name == "" {
			name = "anonymous"
		}
		score := m.session.game.Progress().Score
		if _, err := m.table.Add(name, score); err != nil {
			log.Printf("Failed to save high score: %v", err)
			m.notice = "High score could not be saved."
		}
		m.afterGame = true
		m.screen = screenScores
	case tea.KeyBackspace:
		if r := []rune(m.nameInput); len(r) > 0 {
			m.nameInput = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		m.nameInput = appendName(m.nameInput, msg.Runes)
	}
	return nil
}

// appendName adds typed runes to a name. Whitespace cannot be stored in the
// score file, so it is dropped.
func appendName(name string, runes []rune) string {
	var b strings.Builder
	b.WriteString(name)
	n := len([]rune(name))
	for _, r := range runes {
		if n >= maxNameLength {
			break
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func (m *Model) updateScores() tea.Cmd {
	m.notice = ""
	m.screen = screenPlayAgain
	return nil
}

func (m *Model) updatePlayAgain(msg tea.KeyMsg) tea.Cmd {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.menuIndex = 0
		m.screen = screenMenu
		return nil
	default:
		return tea.Quit
	}
}

func commandForKey(msg tea.KeyMsg) (engine.Command, bool) {
	switch msg.String() {
	case "left", "a":
		return engine.MoveLeft, true
	case "right", "d":
		return engine.MoveRight, true
	case "down", "s":
		return engine.SoftDropStep, true
	case "up", "w":
		return engine.Rotate, true
	case " ":
		return engine.HardDrop, true
	case "c", "C":
		return engine.Hold, true
	case "p", "P":
		return engine.TogglePause, true
	case "q", "Q":
		return engine.Quit, true
	default:
		return 0, false
	}
}
