package main

import (
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/triad-solver/domain/triad"
	"github.com/luca-patrignani/triad-solver/search"
)

type fakeCatalog map[int]triad.Card

func (f fakeCatalog) Card(id int) (triad.Card, bool) {
	c, ok := f[id]
	return c, ok
}

func (f fakeCatalog) CardName(id int) string {
	return map[int]string{1: "Dodo", 2: "Tonberry", 3: "Ifrit"}[id]
}

func mustCard(t *testing.T, north, south, west, east int, suit triad.Suit) triad.Card {
	t.Helper()
	c, err := triad.NewCard(north, south, west, east, suit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func newTestGame(t *testing.T) (*triad.Game, fakeCatalog) {
	t.Helper()
	cards := fakeCatalog{
		1: mustCard(t, 4, 2, 3, 5, triad.NoSuit),
		2: mustCard(t, 2, 8, 3, 4, triad.Beastman),
		3: mustCard(t, 9, 8, 2, 10, triad.Primal),
	}
	g := triad.NewGame(triad.Blue)
	g.SetHand(triad.Blue, [triad.DeckSize]triad.HandCard{
		{ID: 1, Card: cards[1]}, {ID: 2, Card: cards[2]}, {ID: 3, Card: cards[3]},
		{ID: 1, Card: cards[1]}, {ID: 2, Card: cards[2]},
	}, triad.DeckSize)
	g.SetHand(triad.Red, [triad.DeckSize]triad.HandCard{
		{ID: 3, Card: cards[3]}, {ID: 3, Card: cards[3]}, {ID: 3, Card: cards[3]},
		{ID: 3, Card: cards[3]}, {ID: 3, Card: cards[3]},
	}, triad.DeckSize)
	return g, cards
}

func TestParseFlags(t *testing.T) {
	c, err := parseFlags([]string{"-data", "/tmp/csv", "-depth", "4", "-iterations", "500", "-seed", "9", "-debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.dataDir != "/tmp/csv" || c.depth != 4 || c.iterations != 500 || c.seed != 9 || !c.debug {
		t.Fatalf("unexpected config %+v", c)
	}
	s := search.New(c.searchOptions()...)
	if s.Depth() != 4 || s.Iterations() != 500 {
		t.Fatalf("options not applied: depth %d, iterations %d", s.Depth(), s.Iterations())
	}

	d, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.depth != search.DefaultDepth || d.iterations != search.DefaultIterations || d.decksPath == "" {
		t.Fatalf("unexpected defaults %+v", d)
	}
	if _, err := parseFlags([]string{"-depth", "deep"}); err == nil {
		t.Fatal("expected an error for a non-numeric depth")
	}
}

func TestCardChoices(t *testing.T) {
	g, cards := newTestGame(t)
	labels, slots := cardChoices(g, cards, g.Moves(triad.Blue))
	if len(labels) != triad.DeckSize {
		t.Fatalf("expected %d cards, got %v", triad.DeckSize, labels)
	}
	if !strings.HasPrefix(labels[0], "Dodo") || slots[labels[0]] != 0 {
		t.Fatalf("unexpected first choice %q", labels[0])
	}
	// The second Dodo must stay distinguishable.
	if labels[3] == labels[0] || slots[labels[3]] != 3 {
		t.Fatalf("duplicate label %q", labels[3])
	}
}

func TestCardChoicesUnderOrder(t *testing.T) {
	g, cards := newTestGame(t)
	g.SetRules(triad.Rules{Order: true})
	if err := g.Apply(triad.Move{Player: triad.Blue, Slot: 0, Cell: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, slots := cardChoices(g, cards, g.Moves(triad.Blue))
	if len(labels) != 1 || slots[labels[0]] != 1 {
		t.Fatalf("expected only the next card, got %v", labels)
	}
}

func TestCellChoices(t *testing.T) {
	g, _ := newTestGame(t)
	if err := g.Apply(triad.Move{Player: triad.Red, Slot: 0, Cell: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cells := cellChoices(g.Moves(triad.Blue), 2)
	if len(cells) != 8 || cells[0] != 0 || cells[4] != 5 {
		t.Fatalf("unexpected cells %v", cells)
	}
}

func TestRenderBoard(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	g, _ := newTestGame(t)
	if err := g.Apply(triad.Move{Player: triad.Red, Slot: 0, Cell: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(renderBoard(g), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d", len(lines))
	}
	if lines[1] != "  │  9P │     │     │" {
		t.Fatalf("unexpected north row %q", lines[1])
	}
	if lines[2] != "  │ 2 A │     │     │" {
		t.Fatalf("unexpected middle row %q", lines[2])
	}
	if !strings.HasPrefix(lines[6], "5 │") || !strings.HasSuffix(lines[6], "│ 4") {
		t.Fatalf("expected remaining cards beside the board, got %q", lines[6])
	}
}

func TestDeckTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	_, cards := newTestGame(t)
	rows := deckTable(cards, [triad.DeckSize]int{3, 1, 0, 2, 42})
	if len(rows) != triad.DeckSize+1 {
		t.Fatalf("expected header and %d rows, got %d", triad.DeckSize, len(rows))
	}
	if strings.Join(rows[1], " ") != "1 Ifrit 9 8 2 A P" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	if rows[3][1] != "empty" || rows[5][1] != "empty" {
		t.Fatalf("expected empty slots, got %v and %v", rows[3], rows[5])
	}
}

func TestRecommendationText(t *testing.T) {
	g, cards := newTestGame(t)
	ratio := 0.25
	m := triad.Move{Player: triad.Blue, Slot: 2, Cell: 4}
	text := recommendationText(g, cards, search.Recommendation{Move: &m, Score: 2, WinRatio: &ratio})
	if !strings.HasPrefix(text, "Recommended move: Play your Ifrit card in the Center. (Score: 2)") {
		t.Fatalf("unexpected text %q", text)
	}
	if !strings.Contains(text, "25.0%") {
		t.Fatalf("expected the win ratio, got %q", text)
	}
	if got := recommendationText(g, cards, search.Recommendation{Score: -30}); !strings.HasPrefix(got, "No move") {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestResultText(t *testing.T) {
	tests := []struct {
		outcome triad.Outcome
		want    string
	}{
		{triad.Outcome{Status: triad.Tie}, "Tie!"},
		{triad.Outcome{Status: triad.Won, Winner: triad.Blue}, "You win!"},
		{triad.Outcome{Status: triad.Won, Winner: triad.Red}, "You lose!"},
	}
	for _, tt := range tests {
		if got := resultText(tt.outcome); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
