package main

import (
	"flag"
	"time"

	"github.com/plus3/blockfall/highscore"
)

// Config holds the terminal front-end's runtime settings.
type Config struct {
	Seed          uint64
	ScoresPath    string
	FrameInterval time.Duration
	Sound         bool
	Volume        float64
	Ghost         bool
	LogPath       string
}

func DefaultConfig() Config {
	return Config{
		ScoresPath:    highscore.DefaultPath,
		FrameInterval: 16 * time.Millisecond,
		Sound:         true,
		Volume:        0.7,
		Ghost:         true,
	}
}

func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "piece randomizer seed (0 picks one from the clock)")
	fs.StringVar(&c.ScoresPath, "scores", c.ScoresPath, "high score file")
	fs.DurationVar(&c.FrameInterval, "frame", c.FrameInterval, "loop frame interval")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound volume between 0 and 1")
	fs.BoolVar(&c.Ghost, "ghost", c.Ghost, "show where the piece will land")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write logs to this file")
}
