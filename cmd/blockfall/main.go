package main

import (
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/plus3/blockfall/clock"
	"github.com/plus3/blockfall/highscore"
	"github.com/plus3/blockfall/sound"
)

func main() {
	cfg := DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("blockfall start seed=%d scores=%s", cfg.Seed, cfg.ScoresPath)

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

	program := tea.NewProgram(NewModel(cfg, table, player, clock.System{}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("program error: %v", err)
		os.Exit(1)
	}
}
