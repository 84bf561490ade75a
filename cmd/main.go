package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/triad-solver/catalog"
	"github.com/luca-patrignani/triad-solver/decks"
	"github.com/luca-patrignani/triad-solver/search"
)

type app struct {
	data     *catalog.Data
	decks    *decks.Store
	searcher *search.Searcher
	logger   *slog.Logger
}

const (
	actionPlay     = "1. Play against an NPC"
	actionRegister = "2. Register a deck"
	actionView     = "3. View your registered decks"
	actionDelete   = "4. Delete a registered deck"
	actionQuit     = "5. Quit"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if cfg.debug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("T", pterm.FgLightBlue.ToStyle()),
		putils.LettersFromStringWithStyle("riad ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgLightRed.ToStyle()),
		putils.LettersFromStringWithStyle("olver", pterm.FgDarkGray.ToStyle()),
	).Render()

	spinner, _ := pterm.DefaultSpinner.Start("Loading card data from " + cfg.dataDir)
	data, err := catalog.Load(cfg.dataDir)
	if err != nil {
		spinner.Fail()
		logger.Error("failed to load card data", "dir", cfg.dataDir, "error", err)
		os.Exit(1)
	}
	spinner.Success()

	store, err := decks.Open(cfg.decksPath)
	if err != nil {
		logger.Error("failed to open deck store", "path", cfg.decksPath, "error", err)
		os.Exit(1)
	}

	a := &app{
		data:     data,
		decks:    store,
		searcher: search.New(append(cfg.searchOptions(), search.WithLogger(logger))...),
		logger:   logger,
	}
	a.run()
}

func (a *app) run() {
	actions := []string{actionPlay, actionRegister, actionView, actionDelete, actionQuit}
	for {
		pterm.Println()
		pterm.Info.Printfln("You have %d registered decks.", a.decks.Count())
		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("What would you like to do?").WithOptions(actions).Show()
		if err != nil {
			a.logger.Error("menu", "error", err)
			return
		}

		switch choice {
		case actionPlay:
			err = a.playVsNPC()
		case actionRegister:
			err = a.registerDeck()
		case actionView:
			err = a.viewDecks()
		case actionDelete:
			err = a.deleteDeck()
		case actionQuit:
			return
		}
		if err != nil {
			a.logger.Error(err.Error())
		}
	}
}
