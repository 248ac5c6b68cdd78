package main

import (
	"errors"
	"flag"
	"indigo/internal/config"
	"indigo/internal/console"
	"indigo/internal/rng"
	"indigo/pkg/indigo"
	"indigo/pkg/inspect"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var command = flag.String("c", "game", "specifies the command (game, deck)")

func main() {
	flag.Parse()

	// a missing .env is fine, everything has a default
	_ = godotenv.Load()

	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	cfg := config.Instance()
	setupLogger(cfg)

	in := console.NewReader(os.Stdin)
	out := console.NewPrinter(os.Stdout, useColor(cfg.Color))
	gen := rng.New(cfg.Game.Seed)

	switch *command {
	case "game":
		os.Exit(playGame(cfg, in, out, gen))
	case "deck":
		if err := inspect.NewSession(logrus.StandardLogger(), in, out, gen).Run(); err != nil && !errors.Is(err, io.EOF) {
			logrus.WithError(err).Fatal("could not read input")
		}
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

// playGame plays one game and returns the exit code
func playGame(cfg config.Config, in console.Input, out *console.Printer, gen rng.Generator) int {
	game, err := indigo.NewGame(logrus.StandardLogger(), in, out, gen, cfg.GameOptions())
	if err != nil {
		logrus.WithError(err).Error("could not create game")
		return 1
	}

	result, err := game.Run()
	if err != nil {
		if errors.Is(err, io.EOF) {
			logrus.WithField("gameID", game.ID).Warn("input closed before the game ended")
			return 1
		}

		logrus.WithError(err).WithField("gameID", game.ID).Error("game stopped")
		return 1
	}

	if !result.Exited {
		logrus.WithFields(logrus.Fields{
			"gameID": game.ID,
			"winner": result.Winner(),
		}).Info("game finished")
	}

	return 0
}

func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.EqualFold(cfg.Log.Format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
