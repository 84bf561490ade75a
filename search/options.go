package search

import (
	"log/slog"
	"runtime"
)

const (
	// DefaultDepth is the number of plies searched by negamax.
	DefaultDepth = 10
	// DefaultIterations is the number of random playouts per tied candidate.
	DefaultIterations = 100_000
)

// Searcher holds the search configuration. The zero value is not usable; create one with New.
type Searcher struct {
	depth      int
	iterations int
	workers    int
	seed       *uint64
	logger     *slog.Logger
}

type Option func(Searcher) Searcher

// New creates a Searcher with the default depth and iteration count, one
// playout worker per CPU and the default logger.
func New(opts ...Option) *Searcher {
	s := Searcher{
		depth:      DefaultDepth,
		iterations: DefaultIterations,
		workers:    runtime.NumCPU(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return &s
}

// WithDepth sets the negamax depth. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(s Searcher) Searcher {
		if depth > 0 {
			s.depth = depth
		}
		return s
	}
}

// WithIterations sets the number of playouts per tied candidate. Values below 1 are ignored.
func WithIterations(n int) Option {
	return func(s Searcher) Searcher {
		if n > 0 {
			s.iterations = n
		}
		return s
	}
}

// WithWorkers bounds the number of candidates evaluated at the same time.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s Searcher) Searcher {
		if n > 0 {
			s.workers = n
		}
		return s
	}
}

// WithSeed makes the playouts reproducible.
func WithSeed(seed uint64) Option {
	return func(s Searcher) Searcher {
		s.seed = &seed
		return s
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s Searcher) Searcher {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Iterations() int {
	return s.iterations
}
