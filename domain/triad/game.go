package triad

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailableMove is returned when a move targets an occupied cell or an empty hand slot.
	ErrUnavailableMove = errors.New("move not available")
	// ErrInsufficientHistory is returned when an undo would remove the initial snapshot.
	ErrInsufficientHistory = errors.New("not enough history to undo")
)

// neighbour is a cell adjacent to a placement. Facing is the side of the
// neighbour's card that touches the placed card.
type neighbour struct {
	cell   int
	facing Direction
}

var neighbours = buildNeighbours()

func buildNeighbours() [BoardSize][]neighbour {
	var table [BoardSize][]neighbour
	link := func(a, b int, d Direction) {
		// b lies in direction d of a.
		table[b] = append(table[b], neighbour{cell: a, facing: d})
		table[a] = append(table[a], neighbour{cell: b, facing: d.Opposite()})
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			if col < 2 {
				link(cell, cell+1, East)
			}
			if row < 2 {
				link(cell, cell+3, South)
			}
		}
	}
	return table
}

// Game is a match in progress. It keeps every snapshot since setup so that
// searches can apply and undo moves in place.
//
// A Game is not safe for concurrent use; use Clone to hand a copy to another goroutine.
type Game struct {
	history []State
	rules   Rules
	humans  [2]bool
}

// NewGame creates a match with an empty board. The human player is constrained
// by the Order rule; the other side may play any card.
func NewGame(human Player) *Game {
	g := &Game{history: make([]State, 1, 100)}
	g.humans[human] = true
	return g
}

func (g *Game) current() *State {
	return &g.history[len(g.history)-1]
}

// SetRules replaces the active rules.
func (g *Game) SetRules(r Rules) {
	g.rules = r
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) IsHuman(p Player) bool {
	return g.humans[p]
}

// Depth returns the number of snapshots held, including the initial one.
func (g *Game) Depth() int {
	return len(g.history)
}

// State returns a copy of the current snapshot.
func (g *Game) State() State {
	return *g.current()
}

// Reset discards the history and starts over from s.
func (g *Game) Reset(s State) {
	g.history = append(g.history[:0], s)
}

// SetHand puts a known deck in slots 0-4 of p and empties the variable slots.
// It edits the current snapshot and does not create a history entry.
func (g *Game) SetHand(p Player, cards [DeckSize]HandCard, actualSize int) {
	s := g.current()
	for i := range s.Hands[p] {
		s.Hands[p][i] = Slot{}
	}
	for i, c := range cards {
		s.Hands[p][i] = Slot{HandCard: c, Present: true}
	}
	s.Remaining[p] = actualSize
}

// SetNPCHand loads an NPC deck for p and adopts the NPC's rules. Fixed cards
// go in slots 0-4, variable cards in slots 5-9; a card with ID 0 leaves its
// slot empty. The NPC always plays DeckSize cards.
func (g *Game) SetNPCHand(p Player, fixed, variable [DeckSize]HandCard, rules Rules) {
	s := g.current()
	for i := range DeckSize {
		s.Hands[p][i] = Slot{HandCard: fixed[i], Present: fixed[i].ID != 0}
		s.Hands[p][i+DeckSize] = Slot{HandCard: variable[i], Present: variable[i].ID != 0}
	}
	s.Remaining[p] = DeckSize
	g.rules = rules
}

// Moves returns the legal moves of p. Under the Order rule a human may only
// play the first card left in hand.
func (g *Game) Moves(p Player) []Move {
	return g.AppendMoves(nil, p)
}

// AppendMoves is like Moves but appends to buf, which lets searches reuse a buffer.
func (g *Game) AppendMoves(buf []Move, p Player) []Move {
	return g.current().AppendMoves(buf, p, g.humans[p] && g.rules.Order)
}

// Apply plays m and records the resulting snapshot.
func (g *Game) Apply(m Move) error {
	cur := g.current()
	if m.Cell < 0 || m.Cell >= BoardSize || m.Slot < 0 || m.Slot >= HandSize || m.Player > Blue {
		return fmt.Errorf("%s: %w", m, ErrUnavailableMove)
	}
	if cur.Board[m.Cell].Occupied || !cur.Hands[m.Player][m.Slot].Present {
		return fmt.Errorf("%s: %w", m, ErrUnavailableMove)
	}

	g.history = append(g.history, *cur)
	next := g.current()

	played := next.Hands[m.Player][m.Slot].Card
	next.Hands[m.Player][m.Slot] = Slot{}
	next.Remaining[m.Player]--

	for _, n := range neighbours[m.Cell] {
		c := &next.Board[n.cell]
		if !c.Occupied {
			continue
		}
		mine := c.Card.EffectiveRank(next.Modifiers, n.facing)
		theirs := played.EffectiveRank(next.Modifiers, n.facing.Opposite())
		if flips(mine, theirs, g.rules) {
			c.Owner = m.Player
		}
	}

	if played.Suit() != NoSuit {
		if g.rules.Ascension {
			next.Modifiers.Add(played.Suit(), 1)
		}
		if g.rules.Decension {
			next.Modifiers.Add(played.Suit(), -1)
		}
	}

	next.Board[m.Cell] = Cell{Card: played, Owner: m.Player, Occupied: true}
	return nil
}

// flips reports whether a card showing rank mine is taken by an adjacent
// card showing rank theirs.
func flips(mine, theirs int, r Rules) bool {
	if r.Reverse {
		if r.FallenAce && mine == 1 && theirs == MaxRank {
			return true
		}
		return theirs < mine
	}
	if r.FallenAce && mine == MaxRank && theirs == 1 {
		return true
	}
	return theirs > mine
}

// Undo drops the n most recent snapshots. The initial snapshot is never removed.
func (g *Game) Undo(n int) error {
	if n < 0 || n >= len(g.history) {
		return fmt.Errorf("undo %d of %d moves: %w", n, len(g.history)-1, ErrInsufficientHistory)
	}
	g.history = g.history[:len(g.history)-n]
	return nil
}

// Evaluate scores the current position for p. See State.Evaluate.
func (g *Game) Evaluate(p Player) float64 {
	return g.current().Evaluate(p)
}

func (g *Game) Outcome() Outcome {
	return g.current().Outcome()
}

// Clone returns an independent Game holding only the current snapshot, with the same rules and players.
func (g *Game) Clone() *Game {
	c := &Game{history: make([]State, 1, BoardSize+1), rules: g.rules, humans: g.humans}
	c.history[0] = *g.current()
	return c
}

func (g *Game) Cell(i int) Cell {
	return g.current().Board[i]
}

// EffectiveRankAt returns the modified rank shown on side d of the card at
// cell i, and false if the cell is empty.
func (g *Game) EffectiveRankAt(i int, d Direction) (int, bool) {
	s := g.current()
	if !s.Board[i].Occupied {
		return 0, false
	}
	return s.Board[i].Card.EffectiveRank(s.Modifiers, d), true
}

func (g *Game) Remaining(p Player) int {
	return g.current().Remaining[p]
}

func (g *Game) HandSlot(p Player, i int) Slot {
	return g.current().Hands[p][i]
}

func (g *Game) Scores() [2]int {
	return g.current().Scores()
}
