package search

import (
	"fmt"
	"math"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

// bestMoves runs negamax with alpha-beta pruning for p and returns every move
// that reaches the best score, in enumeration order. With no legal moves, or
// at depth 0, it returns no moves and the static evaluation.
//
// Moves are applied and undone on g, which is left as it was found.
func bestMoves(g *triad.Game, p triad.Player, depth int, alpha, beta float64) ([]triad.Move, float64, error) {
	if depth == 0 {
		return nil, g.Evaluate(p), nil
	}
	moves := g.Moves(p)
	if len(moves) == 0 {
		return nil, g.Evaluate(p), nil
	}

	best := math.Inf(-1)
	var tied []triad.Move
	for _, m := range moves {
		if err := g.Apply(m); err != nil {
			return nil, 0, err
		}
		_, v, err := bestMoves(g, p.Other(), depth-1, -beta, -alpha)
		if err != nil {
			return nil, 0, err
		}
		if err := g.Undo(1); err != nil {
			return nil, 0, fmt.Errorf("backtracking %s: %w", m, err)
		}
		v = -v

		switch {
		case v > best:
			best = v
			tied = append(tied[:0], m)
		case v == best:
			tied = append(tied, m)
		}

		alpha = math.Max(alpha, best)
		if alpha >= beta {
			break
		}
	}
	return tied, best, nil
}
