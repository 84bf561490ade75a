package triad

import (
	"log/slog"
	"strings"
)

// Rule codes as they appear in the NPC data tables.
const (
	CodeNone      = 0
	CodeRoulette  = 1
	CodeAllOpen   = 2
	CodeThreeOpen = 3
	CodeSame      = 4
	CodeSudden    = 5
	CodePlus      = 6
	CodeRandom    = 7
	CodeOrder     = 8
	CodeChaos     = 9
	CodeReverse   = 10
	CodeFallenAce = 11
	CodeAscension = 12
	CodeDecension = 13
	CodeSwap      = 14
	CodeDraft     = 15
)

// Rules lists the optional mechanics of a match.
//
// Same, Plus, Chaos and Swap are recorded but never change how a move resolves.
type Rules struct {
	// Same flips cards whose touching ranks equal the played card's on two or more sides.
	Same bool
	// Plus flips cards whose touching rank sums match on two or more sides.
	Plus bool
	// Order forces cards to be played in deck order. It only binds human players.
	Order bool
	// Chaos forces a random play order fixed before the match.
	Chaos bool
	// Reverse makes lower ranks flip higher ones.
	Reverse bool
	// FallenAce lets a 1 flip an A (an A flip a 1 under Reverse).
	FallenAce bool
	// Ascension raises a suit's ranks each time a card of that suit is played.
	Ascension bool
	// Decension lowers a suit's ranks each time a card of that suit is played.
	Decension bool
	// Swap exchanges one random card between the decks before the match.
	Swap bool
}

// Add enables the rule identified by code. It reports false for codes it does
// not know; codes for rules without engine effect are accepted silently.
func (r *Rules) Add(code int) bool {
	switch code {
	case CodeSame:
		r.Same = true
	case CodePlus:
		r.Plus = true
	case CodeOrder:
		r.Order = true
	case CodeChaos:
		r.Chaos = true
	case CodeReverse:
		r.Reverse = true
	case CodeFallenAce:
		r.FallenAce = true
	case CodeAscension:
		r.Ascension = true
	case CodeDecension:
		r.Decension = true
	case CodeSwap:
		r.Swap = true
	case CodeNone, CodeRoulette, CodeAllOpen, CodeThreeOpen, CodeSudden, CodeRandom, CodeDraft:
	default:
		return false
	}
	return true
}

// ParseRules builds a Rules value from rule codes, logging a warning for each
// unknown code.
func ParseRules(codes ...int) Rules {
	var r Rules
	for _, code := range codes {
		if !r.Add(code) {
			slog.Warn("ignoring unknown rule", "code", code)
		}
	}
	return r
}

// String lists the enabled rules, or "none".
func (r Rules) String() string {
	var names []string
	for _, rule := range []struct {
		on   bool
		name string
	}{
		{r.Same, "Same"},
		{r.Plus, "Plus"},
		{r.Order, "Order"},
		{r.Chaos, "Chaos"},
		{r.Reverse, "Reverse"},
		{r.FallenAce, "Fallen Ace"},
		{r.Ascension, "Ascension"},
		{r.Decension, "Decension"},
		{r.Swap, "Swap"},
	} {
		if rule.on {
			names = append(names, rule.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
