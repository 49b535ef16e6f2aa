package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/saucer/audio"
	"github.com/lixenwraith/saucer/config"
	"github.com/lixenwraith/saucer/core"
	"github.com/lixenwraith/saucer/engine"
	"github.com/lixenwraith/saucer/input"
	"github.com/lixenwraith/saucer/render"
	"github.com/lixenwraith/saucer/status"
)

const usage = "usage: saucer"

var errNotTerminal = errors.New("stdin is not a terminal")

func main() {
	if err := checkArgs(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "saucer: %v\n", err)
		os.Exit(1)
	}
}

// checkArgs rejects any command line argument
func checkArgs(args []string) error {
	if len(args) > 1 {
		return errors.New(usage)
	}
	return nil
}

func run() error {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := core.CheckTaskCapacity(cfg.TaskBudget()); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashFinalizer(screen.Fini)
	finalized := false
	fini := func() {
		if !finalized {
			finalized = true
			core.SetCrashFinalizer(nil)
			screen.Fini()
		}
	}
	defer fini()
	screen.HideCursor()

	var sound audio.Player = audio.Silent{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	surface := render.NewTcellSurface(screen)
	metrics := status.NewRegistry()
	game, err := engine.NewGame(cfg, surface, engine.Options{
		Sound:   sound,
		Logger:  log.New(log.Writer(), "game: ", log.Flags()),
		Metrics: metrics,
	})
	if err != nil {
		return err
	}

	reader := input.NewReader(screen, nil)
	reader.Start()

	report, err := game.Run(context.Background(), reader.Intents())
	if err != nil {
		return err
	}
	log.Printf("final: %s score=%d metrics: %s", report.Reason, report.Score, metrics)

	render.DrawEndScreen(surface, report.Screen())
	waitForQuit(reader.Intents())
	return nil
}

// waitForQuit blocks until the quit key is pressed or input ends
func waitForQuit(intents <-chan input.Intent) {
	for intent := range intents {
		if intent == input.IntentQuit {
			return
		}
	}
}

func init() {
	// Nothing may reach the terminal before logging is configured
	log.SetOutput(io.Discard)
}
