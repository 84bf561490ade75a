package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/luca-patrignani/triad-solver/decks"
	"github.com/luca-patrignani/triad-solver/search"
)

type config struct {
	dataDir    string
	decksPath  string
	depth      int
	iterations int
	workers    int
	seed       uint64
	debug      bool
}

// parseFlags reads the command line. Paths default to the user configuration directory.
func parseFlags(args []string) (config, error) {
	var c config
	defaultData, defaultDecks := "data", decks.FileName
	if dir, err := os.UserConfigDir(); err == nil {
		defaultData = filepath.Join(dir, "triad-solver", "data")
	}
	if path, err := decks.DefaultPath(); err == nil {
		defaultDecks = path
	}

	fs := flag.NewFlagSet("triad-solver", flag.ContinueOnError)
	fs.StringVar(&c.dataDir, "data", defaultData, "directory holding the game's CSV exports")
	fs.StringVar(&c.decksPath, "decks", defaultDecks, "file storing your registered decks")
	fs.IntVar(&c.depth, "depth", search.DefaultDepth, "negamax search depth")
	fs.IntVar(&c.iterations, "iterations", search.DefaultIterations, "random playouts per tied move")
	fs.IntVar(&c.workers, "workers", 0, "tied moves evaluated in parallel (0 uses every CPU)")
	fs.Uint64Var(&c.seed, "seed", 0, "seed for reproducible playouts (0 picks a random one)")
	fs.BoolVar(&c.debug, "debug", false, "log search statistics")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return c, nil
}

func (c config) searchOptions() []search.Option {
	opts := []search.Option{
		search.WithDepth(c.depth),
		search.WithIterations(c.iterations),
		search.WithWorkers(c.workers),
	}
	if c.seed != 0 {
		opts = append(opts, search.WithSeed(c.seed))
	}
	return opts
}
