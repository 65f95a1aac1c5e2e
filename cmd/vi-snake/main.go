package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/session"
	"github.com/lixenwraith/vi-snake/status"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdout is not a terminal")

var (
	configFlag = flag.String("config", "", "YAML config file")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config value or the clock")
	glyphsFlag = flag.String("glyphs", "", "Glyph set: box, ascii")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	logFlag    = flag.String("log", "", "Write debug log to this file")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(2)
	}

	logFile, err := setupLogging(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Log: %v\n", err)
		os.Exit(2)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges defaults, the optional config file and command-line flags
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}

	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *glyphsFlag != "" {
		cfg.Glyphs = *glyphsFlag
	}
	if *muteFlag {
		cfg.Sound = false
	}
	return cfg, cfg.Validate()
}

// setupLogging routes the standard logger to path, or discards it when path is empty
// The terminal owns stdout and stderr while the game runs
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func run(cfg config.Config) error {
	keys, err := input.LoadKeyBindings(cfg.Keys)
	if err != nil {
		return err
	}
	keys = input.MergeKeyTable(input.DefaultKeyTable(), keys)

	glyphs, err := render.GlyphSetByName(cfg.Glyphs)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting: board %dx%d tick %s growth %s seed %d", cfg.Board.Width, cfg.Board.Height, cfg.Tick, cfg.Growth, seed)

	game, err := engine.NewGame(cfg.Engine(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(!cfg.Sound)

	registry := status.NewRegistry()
	renderer := render.NewTerminalRenderer(screen, glyphs, render.DefaultStyles())
	sess := session.New(screen, game, renderer, keys, cfg.Tick,
		session.WithSound(sound),
		session.WithRegistry(registry),
	)

	err = sess.Run()
	log.Printf("stopped: %d ticks, length %d, eaten %d", game.Ticks(), game.Snake().Len(), game.Eaten())
	return err
}
