package search

import (
	"math"
	"time"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

// Recommendation is the outcome of a search.
//
// Move is nil when the player has no legal move. WinRatio is only set when
// several moves tied and random playouts chose between them.
type Recommendation struct {
	Move     *triad.Move
	Score    float64
	WinRatio *float64
}

// Recommend returns the best move for p in the current position of g. The
// search runs on a copy; g is not modified.
func (s *Searcher) Recommend(g *triad.Game, p triad.Player) (Recommendation, error) {
	work := g.Clone()

	start := time.Now()
	moves, score, err := bestMoves(work, p, s.depth, math.Inf(-1), math.Inf(1))
	if err != nil {
		return Recommendation{}, err
	}
	s.logger.Debug("negamax finished",
		"player", p,
		"moves", len(moves),
		"score", score,
		"duration", time.Since(start))

	switch len(moves) {
	case 0:
		return Recommendation{Score: score}, nil
	case 1:
		return Recommendation{Move: &moves[0], Score: score}, nil
	}

	s.logger.Debug("breaking tie with random playouts", "candidates", len(moves), "iterations", s.iterations)
	start = time.Now()
	results, err := s.rankCandidates(work, p, moves)
	if err != nil {
		return Recommendation{}, err
	}
	best := pick(results)
	s.logger.Debug("playouts finished",
		"move", best.move,
		"ratio", best.ratio,
		"duration", time.Since(start))

	return Recommendation{Move: &best.move, Score: score, WinRatio: &best.ratio}, nil
}
