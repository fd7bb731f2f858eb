package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/letsssgooo/quizmaster/internal/config"
	"github.com/letsssgooo/quizmaster/internal/console"
	"github.com/letsssgooo/quizmaster/internal/lib/slogcustom"
	"github.com/letsssgooo/quizmaster/internal/quiz"
	"github.com/letsssgooo/quizmaster/internal/results"
	"github.com/letsssgooo/quizmaster/internal/session"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := setupLogger(cfg, stderr)
	slog.SetDefault(log)
	slog.Info("starting quiz master...", "results_file", cfg.ResultsFile, "format", cfg.ResultsFormat)

	store, err := results.NewFileStore(cfg.ResultsFile, cfg.Format())
	if err != nil {
		slog.Error("cannot create results store", "err", err)
		return 1
	}

	screen := console.NewRenderer(console.Options{
		Out:     stdout,
		NoColor: cfg.NoColor,
		NoClear: cfg.NoClear,
		Stars:   cfg.Stars,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Pause:   cfg.Pause,
	})

	sess, err := session.New(&session.Config{
		Quiz:   quiz.Default(),
		Input:  console.NewInput(stdin),
		Screen: screen,
		Store:  store,
	})
	if err != nil {
		slog.Error("cannot create session", "err", err)
		return 1
	}

	screen.Clear()

	// Ctrl+C keeps its default behaviour.
	if err = sess.Run(context.Background()); err != nil {
		switch {
		case errors.Is(err, session.ErrPersistence):
			slog.Error("quiz finished with unsaved results", "err", err)
		case errors.Is(err, session.ErrInputClosed):
			slog.Warn("input closed before the session finished", "err", err)
		default:
			slog.Error("quiz stopped", "err", err)
		}
		return 1
	}

	return 0
}

func setupLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(out, cfg.SlogLevel(), cfg.NoColor))
}
