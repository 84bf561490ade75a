package triad

import "fmt"

const (
	// BoardSize is the number of cells, numbered row-major from 0 (NW) to 8 (SE).
	BoardSize = 9
	// HandSize is the number of hand slots. Slots 0-4 hold a known deck, slots
	// 5-9 the variable cards an NPC may draw from.
	HandSize = 10
	// DeckSize is the number of cards each player brings to a match.
	DeckSize = 5
)

// Player identifies one side of a match.
type Player uint8

const (
	Red Player = iota
	Blue
)

// Other returns the opponent of p.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) String() string {
	if p == Red {
		return "Red"
	}
	return "Blue"
}

var cellNames = [BoardSize]string{"NW", "N", "NE", "W", "Center", "E", "SW", "S", "SE"}

// CellName returns the compass name of a board cell.
func CellName(cell int) string {
	if cell < 0 || cell >= BoardSize {
		return fmt.Sprintf("cell %d", cell)
	}
	return cellNames[cell]
}

// Cell is one board position. A placed card never changes, only its Owner.
type Cell struct {
	Card     Card
	Owner    Player
	Occupied bool
}

// HandCard pairs a card with its catalog id.
type HandCard struct {
	ID   int
	Card Card
}

// Slot is one hand position.
type Slot struct {
	HandCard
	Present bool
}

// Move places the card in hand slot Slot of Player on board cell Cell.
type Move struct {
	Player Player
	Slot   int
	Cell   int
}

func (m Move) String() string {
	return fmt.Sprintf("%s plays slot %d on %s", m.Player, m.Slot, CellName(m.Cell))
}

// Status is the progress of a match.
type Status uint8

const (
	NotFinished Status = iota
	Tie
	Won
)

// Outcome describes the result of a match. Winner is only meaningful when
// Status is Won.
type Outcome struct {
	Status Status
	Winner Player
}

// State is one snapshot of a match.
//
// Remaining counts the cards a player has not played yet. It is what the
// scoreboard shows and what scoring uses; it may be lower than the number of
// filled hand slots when an NPC holds variable cards.
type State struct {
	Board     [BoardSize]Cell
	Hands     [2][HandSize]Slot
	Modifiers Modifiers
	Remaining [2]int
}

// IsFull reports whether every cell holds a card.
func (s *State) IsFull() bool {
	for i := range s.Board {
		if !s.Board[i].Occupied {
			return false
		}
	}
	return true
}

// Scores returns, per player, the owned board cells plus the cards left in hand.
func (s *State) Scores() [2]int {
	scores := s.Remaining
	for i := range s.Board {
		if s.Board[i].Occupied {
			scores[s.Board[i].Owner]++
		}
	}
	return scores
}

// Evaluate scores the position for p.
//
// While cells are empty the result is the plain score difference. On a full
// board it is 100 for a win, -100 for a loss and -30 for a tie, so a search
// prefers any reachable win over a draw.
func (s *State) Evaluate(p Player) float64 {
	scores := s.Scores()
	if !s.IsFull() {
		return float64(scores[p] - scores[p.Other()])
	}
	switch {
	case scores[p] > scores[p.Other()]:
		return 100
	case scores[p] < scores[p.Other()]:
		return -100
	default:
		return -30
	}
}

// Outcome reports the result of the position.
func (s *State) Outcome() Outcome {
	if !s.IsFull() {
		return Outcome{Status: NotFinished}
	}
	return s.Standing()
}

// Standing compares the current scores whether or not the board is full.
func (s *State) Standing() Outcome {
	scores := s.Scores()
	switch {
	case scores[Red] > scores[Blue]:
		return Outcome{Status: Won, Winner: Red}
	case scores[Red] < scores[Blue]:
		return Outcome{Status: Won, Winner: Blue}
	default:
		return Outcome{Status: Tie}
	}
}

// AppendMoves appends the moves of p to buf and returns the extended slice.
//
// Moves are emitted by ascending cell, then ascending hand slot. With
// firstCardOnly set only the lowest occupied slot is used for each cell.
func (s *State) AppendMoves(buf []Move, p Player, firstCardOnly bool) []Move {
	for cell := range s.Board {
		if s.Board[cell].Occupied {
			continue
		}
		for slot := range s.Hands[p] {
			if !s.Hands[p][slot].Present {
				continue
			}
			buf = append(buf, Move{Player: p, Slot: slot, Cell: cell})
			if firstCardOnly {
				break
			}
		}
	}
	return buf
}
