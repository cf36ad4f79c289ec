// Command blockfall-gui is the windowed front-end. Pass -debug to open the
// Dear ImGui inspector alongside the board.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/sound"
)

type Config struct {
	Seed       uint64
	ScoresPath string
	Sound      bool
	Volume     float64
	Ghost      bool
	Debug      bool
}

func main() {
	cfg := Config{
		ScoresPath: highscore.DefaultPath,
		Sound:      true,
		Volume:     0.7,
		Ghost:      true,
	}
	flag.Uint64Var(&cfg.Seed, "seed", 0, "piece randomizer seed (0 picks one from the clock)")
	flag.StringVar(&cfg.ScoresPath, "scores", cfg.ScoresPath, "high score file")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play sound effects")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "sound volume between 0 and 1")
	flag.BoolVar(&cfg.Ghost, "ghost", cfg.Ghost, "show where the piece will land")
	flag.BoolVar(&cfg.Debug, "debug", false, "show the debug overlay (F1 toggles)")
	flag.Parse()

	table, err := highscore.Open(highscore.NewFileStore(cfg.ScoresPath))
	if err != nil {
		log.Printf("Failed to load high scores: %v", err)
		table = highscore.NewTable(highscore.NewFileStore(cfg.ScoresPath))
	}

	player := sound.Silent()
	if cfg.Sound {
		if p, err := sound.NewPlayer(); err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			player = p
		}
	}
	player.SetVolume(cfg.Volume)

	var backend *debugui_ebiten.ImguiBackend
	if cfg.Debug {
		backend = debugui_ebiten.NewImguiBackend("Blockfall", 1280, 800)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, table, player, backend)); err != nil {
		log.Fatalf("game error: %v", err)
	}
}
