package triad

import (
	"fmt"
	"strconv"
)

// MaxRank is the highest printed rank. It is displayed as "A".
const MaxRank = 10

// Direction identifies one side of a card.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

// Opposite returns the side facing d on a neighbouring card.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Suit is the card type used by the Ascension and Decension rules.
type Suit uint8

const (
	NoSuit Suit = iota
	Primal
	Scion
	Beastman
	Garlean
)

// String returns the one-letter suit tag shown on the board, or a blank for NoSuit.
func (s Suit) String() string {
	switch s {
	case Primal:
		return "P"
	case Scion:
		return "S"
	case Beastman:
		return "B"
	case Garlean:
		return "G"
	}
	return " "
}

// Modifiers holds the per-suit rank delta of a match.
type Modifiers [4]int

// For returns the raw delta for s. NoSuit always has a zero delta.
func (m Modifiers) For(s Suit) int {
	if s == NoSuit || int(s) > len(m) {
		return 0
	}
	return m[s-1]
}

// Add shifts the delta of s by n. Deltas are stored unclamped.
func (m *Modifiers) Add(s Suit, n int) {
	if s == NoSuit || int(s) > len(m) {
		return
	}
	m[s-1] += n
}

// Card is an immutable Triple Triad card.
type Card struct {
	ranks [4]int
	suit  Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - north, south, west, east: ranks from 1 to MaxRank
//   - suit: NoSuit or one of the four suits
//
// Returns the Card or an error if a rank or the suit is out of range.
func NewCard(north, south, west, east int, suit Suit) (Card, error) {
	ranks := [4]int{north, south, west, east}
	for i, r := range ranks {
		if r < 1 || r > MaxRank {
			return Card{}, fmt.Errorf("invalid %s rank %d", Direction(i), r)
		}
	}
	if suit > Garlean {
		return Card{}, fmt.Errorf("invalid suit %d", suit)
	}
	return Card{ranks: ranks, suit: suit}, nil
}

// Rank returns the printed rank on side d.
func (c Card) Rank(d Direction) int {
	return c.ranks[d]
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// EffectiveRank returns the rank on side d after applying the suit modifier.
// The modifier is clamped to [0, MaxRank] before it is added; the sum itself is
// not clamped and may exceed MaxRank.
func (c Card) EffectiveRank(m Modifiers, d Direction) int {
	delta := 0
	if c.suit != NoSuit {
		delta = min(max(m.For(c.suit), 0), MaxRank)
	}
	return c.ranks[d] + delta
}

// String renders the printed ranks in N/S/W/E order followed by the suit tag.
func (c Card) String() string {
	return fmt.Sprintf("%s/%s/%s/%s%s",
		RankString(c.ranks[North]),
		RankString(c.ranks[South]),
		RankString(c.ranks[West]),
		RankString(c.ranks[East]),
		c.suit)
}

// RankString formats a rank for display; anything from MaxRank up is "A".
func RankString(rank int) string {
	if rank >= MaxRank {
		return "A"
	}
	return strconv.Itoa(rank)
}
