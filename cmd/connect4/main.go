package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lixenwraith/connect-four/audio"
	"github.com/lixenwraith/connect-four/config"
	"github.com/lixenwraith/connect-four/core"
	"github.com/lixenwraith/connect-four/engine"
	"github.com/lixenwraith/connect-four/modes"
	"github.com/lixenwraith/connect-four/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML or TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/connect4.log")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 2
	}
	cfg.Debug = cfg.Debug || *debugFlag

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	theme, err := render.NewTheme(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid theme: %v\n", err)
		return 2
	}

	screen, err := render.NewScreen()
	if err != nil {
		logger.Error("terminal unavailable", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.RegisterScreen(screen)
	defer func() {
		core.HandleCrash(recover())
	}()

	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg))
	if err := sound.Initialize(); err == nil {
		defer sound.Cleanup()
	} else if !errors.Is(err, audio.ErrAudioDisabled) {
		logger.Warn("audio initialization failed, continuing without audio", "error", err)
	}

	renderer := render.NewTerminalRenderer(screen, render.NewLayout(cfg.Layout.CellWidth, cfg.Layout.CellHeight), theme)
	renderer.SetRestartHint(cfg.KeepOpen)

	session := engine.NewSession(renderer,
		engine.WithSound(sound),
		engine.WithLogger(logger),
	)
	session.Start()

	handler := modes.NewInputHandler(session, renderer, modes.Options{
		KeepOpen:    cfg.KeepOpen,
		EndGameWait: cfg.EndGameWait,
		Logger:      logger,
	})
	modes.Run(screen, handler)

	logger.Info("exiting", "moves", session.State().Moves)
	return 0
}
