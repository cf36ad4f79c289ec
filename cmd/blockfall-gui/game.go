package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/sound"
)

const (
	CellSize     = 28
	BoardLeft    = 20
	BoardTop     = 20
	PanelLeft    = BoardLeft + board.Width*CellSize + 30
	ScreenWidth  = 640
	ScreenHeight = BoardTop*2 + board.Height*CellSize
	maxName      = 16
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{32, 32, 44, 255}
	gridColor       = color.RGBA{44, 44, 58, 255}
	pieceColors     = [piece.KindCount]color.RGBA{
		piece.I: {0, 230, 230, 255},
		piece.O: {230, 230, 0, 255},
		piece.T: {180, 50, 230, 255},
		piece.L: {240, 150, 30, 255},
		piece.J: {50, 80, 240, 255},
		piece.S: {50, 220, 80, 255},
		piece.Z: {230, 50, 50, 255},
	}
)

type phase int

const (
	phasePlaying phase = iota
	phaseNameEntry
	phaseScores
)

// Game implements ebiten.Game around one engine session at a time.
type Game struct {
	cfg     Config
	table   *highscore.Table
	player  *sound.Player
	backend *debugui_ebiten.ImguiBackend

	phase     phase
	nameInput []rune
	runes     []rune

	engine   *engine.Game
	input    *loop.Queue
	sched    *loop.Scheduler
	keyboard *keyboard
	overlay  *debugui.Overlay
	imguiIn  *loop.Resource[debugui.InputState]
}

func NewGame(cfg Config, table *highscore.Table, player *sound.Player, backend *debugui_ebiten.ImguiBackend) *Game {
	g := &Game{
		cfg:     cfg,
		table:   table,
		player:  player,
		backend: backend,
	}
	g.start()
	return g
}

func (g *Game) start() {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = uint64(clock.System{}.Now().UnixNano())
	}
	log.Printf("game start seed=%d", seed)

	g.engine = engine.New(engine.WithGenerator(piece.NewSeededRandomizer(seed)))
	g.input = loop.NewQueue(32)
	g.keyboard = newKeyboard()
	g.sched = loop.NewGameScheduler(g.engine, g.input)
	g.sched.Listen(g.player.Listener())
	g.sched.Listen(func(ev loop.Event) {
		if ev.Result.Cleared > 0 {
			log.Printf("cleared %d rows, score %d", ev.Result.Cleared, g.engine.Progress().Score)
		}
		if ev.Kind == loop.EventGameOver {
			log.Printf("game over score=%d", g.engine.Progress().Score)
		}
	})

	if g.backend != nil {
		g.overlay = debugui.Install(g.sched, g.engine, g.input)
		g.imguiIn = loop.NewResource[debugui.InputState](g.sched.Resources())
	}
	g.phase = phasePlaying
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	if g.backend != nil {
		var err error
		g.backend.Frame(func() { err = g.update() })
		return err
	}
	return g.update()
}

func (g *Game) update() error {
	defer g.idleOverlay(g.phase)

	switch g.phase {
	case phasePlaying:
		if !g.imguiWantsKeyboard() {
			g.keyboard.Poll(g.input)
		}
		if !g.sched.Once() {
			g.finish()
		}
	case phaseNameEntry:
		g.updateNameEntry()
	case phaseScores:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.start()
		}
	}
	return nil
}

// idleOverlay draws the debug windows for an update that started in p when
// no scheduler frame ran to draw them.
func (g *Game) idleOverlay(p phase) {
	if g.overlay != nil && p != phasePlaying {
		g.overlay.Render()
	}
}

func (g *Game) imguiWantsKeyboard() bool {
	if g.imguiIn == nil {
		return false
	}
	state := g.imguiIn.Get()
	return state != nil && state.WantCaptureKeyboard
}

func (g *Game) finish() {
	if g.table.Qualifies(g.engine.Progress().Score) {
		g.nameInput = g.nameInput[:0]
		g.phase = phaseNameEntry
		return
	}
	g.phase = phaseScores
}

func (g *Game) updateNameEntry() {
	g.runes = ebiten.AppendInputChars(g.runes[:0])
	for _, r := range g.runes {
		if len(g.nameInput) >= maxName || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			continue
		}
		g.nameInput = append(g.nameInput, r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.nameInput) > 0 {
		g.nameInput = g.nameInput[:len(g.nameInput)-1]
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		name := string(g.nameInput)
		if name == "" {
			name = "anonymous"
		}
		if _, err := g.table.Add(name, g.engine.Progress().Score); err != nil {
			log.Printf("Failed to save high score: %v", err)
		}
		g.phase = phaseScores
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.engine.Snapshot()
	drawBoard(screen, snap, g.cfg.Ghost)
	drawPanel(screen, snap)

	switch g.phase {
	case phaseNameEntry:
		drawDialog(screen, fmt.Sprintf("NEW HIGH SCORE: %d\n\nEnter your name:\n%s_", snap.Progress.Score, string(g.nameInput)))
	case phaseScores:
		drawDialog(screen, scoresText(g.table.Entries())+"\nR to play again, Esc to quit")
	}

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}

func drawBoard(screen *ebiten.Image, snap engine.Snapshot, showGhost bool) {
	vector.DrawFilledRect(screen, BoardLeft, BoardTop, board.Width*CellSize, board.Height*CellSize, wellColor, false)
	for y := range board.Height {
		for x := range board.Width {
			vector.StrokeRect(screen, cellX(x), cellY(y), CellSize, CellSize, 1, gridColor, false)
		}
	}

	cells := snap.Composite()
	if showGhost && !snap.Progress.Over && snap.GhostY != snap.Active.Y {
		ghost := pieceColors[snap.Active.Kind]
		ghost.A = 90
		for p := range snap.Active.Shape.Cells() {
			x, y := snap.Active.X+p.X, snap.GhostY+p.Y
			if board.InBounds(x, y) && cells[y][x] == piece.None {
				vector.StrokeRect(screen, cellX(x)+2, cellY(y)+2, CellSize-4, CellSize-4, 2, ghost, false)
			}
		}
	}

	for y := range board.Height {
		for x := range board.Width {
			if c := cells[y][x]; c != piece.None {
				drawCell(screen, cellX(x), cellY(y), c)
			}
		}
	}

	if snap.Progress.Paused {
		drawDialog(screen, "PAUSED\n\nP to resume")
	}
}

func drawCell(screen *ebiten.Image, x, y float32, c piece.Color) {
	col := color.RGBA{128, 128, 128, 255}
	if k, ok := piece.KindOf(c); ok {
		col = pieceColors[k]
	}
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, col, false)
}

func drawPanel(screen *ebiten.Image, snap engine.Snapshot) {
	p := snap.Progress
	ebitenutil.DebugPrintAt(screen, "NEXT", PanelLeft, BoardTop)
	drawMini(screen, snap.Next, PanelLeft, BoardTop+20)

	ebitenutil.DebugPrintAt(screen, "HOLD", PanelLeft, BoardTop+110)
	if snap.Hold.Full {
		drawMini(screen, snap.Hold.Piece, PanelLeft, BoardTop+130)
	}

	stats := fmt.Sprintf("Score: %d\nLevel: %d\nLines: %d", p.Score, p.Level, p.Lines)
	ebitenutil.DebugPrintAt(screen, stats, PanelLeft, BoardTop+230)

	help := "Arrows  move / rotate\nSpace   hard drop\nC       hold\nP       pause\nQ       give up\nEsc     exit"
	ebitenutil.DebugPrintAt(screen, help, PanelLeft, BoardTop+320)
}

func drawMini(screen *ebiten.Image, p piece.Piece, left, top int) {
	const size = CellSize * 3 / 4
	col := pieceColors[p.Kind]
	for pt := range p.Shape.Cells() {
		x := float32(left + pt.X*size)
		y := float32(top + pt.Y*size)
		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, col, false)
	}
}

func drawDialog(screen *ebiten.Image, msg string) {
	lines := strings.Split(msg, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	w := float32(width*6 + 40)
	h := float32(len(lines)*16 + 30)
	x := float32(BoardLeft) + (board.Width*CellSize-w)/2
	y := float32(BoardTop) + (board.Height*CellSize-h)/2

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 220}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{230, 230, 0, 255}, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+20, int(y)+15)
}

func scoresText(entries []highscore.Entry) string {
	var b strings.Builder
	b.WriteString("HIGH SCORES\n\n")
	if len(entries) == 0 {
		b.WriteString("No scores yet\n")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %-16s %6d\n", i+1, e.Name, e.Score)
	}
	return b.String()
}

func cellX(x int) float32 { return float32(BoardLeft + x*CellSize) }
func cellY(y int) float32 { return float32(BoardTop + y*CellSize) }
