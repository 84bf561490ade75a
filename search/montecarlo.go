package search

import (
	"encoding/binary"

	"github.com/luca-patrignani/triad-solver/domain/triad"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

const tieWeight = 0.3

type candidate struct {
	move  triad.Move
	ratio float64
}

// rng returns the random source for the i-th candidate. Seeded sources are
// derived from the seed and the candidate index, so results do not depend on
// goroutine scheduling.
func (s *Searcher) rng(i int) *frand.RNG {
	if s.seed == nil {
		return frand.New()
	}
	seed := make([]byte, 32)
	binary.LittleEndian.PutUint64(seed[0:8], *s.seed)
	binary.LittleEndian.PutUint64(seed[8:16], uint64(i))
	return frand.NewCustom(seed, 1024, 12)
}

// rankCandidates scores every move by random playouts on its own copy of g.
// The returned candidates are in the order of moves.
func (s *Searcher) rankCandidates(g *triad.Game, p triad.Player, moves []triad.Move) ([]candidate, error) {
	results := make([]candidate, len(moves))
	var eg errgroup.Group
	eg.SetLimit(s.workers)
	for i, m := range moves {
		clone := g.Clone()
		if err := clone.Apply(m); err != nil {
			return nil, err
		}
		rng := s.rng(i)
		eg.Go(func() error {
			ratio, err := winRatio(clone, p, s.iterations, rng)
			if err != nil {
				return err
			}
			results[i] = candidate{move: m, ratio: ratio}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// pick returns the candidate with the highest ratio. Equal ratios keep the
// earliest candidate, that is the lowest cell and then the lowest hand slot.
func pick(results []candidate) candidate {
	best := results[0]
	for _, c := range results[1:] {
		if c.ratio > best.ratio {
			best = c
		}
	}
	return best
}

// winRatio plays n random games from the current position of g, where p has
// just moved, and returns the weighted share of games p wins.
func winRatio(g *triad.Game, p triad.Player, n int, rng *frand.RNG) (float64, error) {
	var wins, ties int
	buf := make([]triad.Move, 0, triad.BoardSize*triad.HandSize)
	for range n {
		o, err := playout(g, p.Other(), rng, buf)
		if err != nil {
			return 0, err
		}
		switch {
		case o.Status == triad.Tie:
			ties++
		case o.Winner == p:
			wins++
		}
	}
	return (float64(wins) + tieWeight*float64(ties)) / float64(n), nil
}

// playout plays uniformly random moves starting with toMove until the board is
// full, then undoes every move it made. A side left without cards ends the
// game early and the current scores decide it.
func playout(g *triad.Game, toMove triad.Player, rng *frand.RNG, buf []triad.Move) (triad.Outcome, error) {
	taken := 0
	var o triad.Outcome
	for {
		o = g.Outcome()
		if o.Status != triad.NotFinished {
			break
		}
		buf = g.AppendMoves(buf[:0], toMove)
		if len(buf) == 0 {
			s := g.State()
			o = s.Standing()
			break
		}
		if err := g.Apply(buf[rng.Intn(len(buf))]); err != nil {
			return triad.Outcome{}, err
		}
		taken++
		toMove = toMove.Other()
	}
	if err := g.Undo(taken); err != nil {
		return triad.Outcome{}, err
	}
	return o, nil
}
