package triad

import "testing"

func mustCard(t *testing.T, north, south, west, east int, suit Suit) Card {
	t.Helper()
	c, err := NewCard(north, south, west, east, suit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewCard(t *testing.T) {
	tests := []struct {
		name    string
		ranks   [4]int
		suit    Suit
		wantErr bool
	}{
		{"plain", [4]int{1, 2, 3, 4}, NoSuit, false},
		{"aces", [4]int{10, 10, 10, 10}, Garlean, false},
		{"zero rank", [4]int{0, 2, 3, 4}, NoSuit, true},
		{"rank too high", [4]int{1, 2, 3, 11}, Primal, true},
		{"bad suit", [4]int{1, 2, 3, 4}, Garlean + 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.ranks[0], tt.ranks[1], tt.ranks[2], tt.ranks[3], tt.suit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCardRanks(t *testing.T) {
	c := mustCard(t, 1, 2, 3, 4, Scion)
	for d, want := range []int{1, 2, 3, 4} {
		if got := c.Rank(Direction(d)); got != want {
			t.Errorf("%s: expected %d, got %d", Direction(d), want, got)
		}
	}
	if c.Suit() != Scion {
		t.Errorf("expected Scion, got %v", c.Suit())
	}
}

func TestEffectiveRankClampsModifierOnly(t *testing.T) {
	c := mustCard(t, 5, 5, 5, 5, Primal)
	tests := []struct {
		name     string
		modifier int
		want     int
	}{
		{"no modifier", 0, 5},
		{"ascended", 3, 8},
		{"past ace", 7, 12},
		{"modifier clamped high", 15, 15},
		{"negative modifier ignored", -4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Modifiers
			m.Add(Primal, tt.modifier)
			if got := c.EffectiveRank(m, North); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestEffectiveRankWithoutSuit(t *testing.T) {
	c := mustCard(t, 4, 4, 4, 4, NoSuit)
	m := Modifiers{3, 3, 3, 3}
	if got := c.EffectiveRank(m, East); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestCardString(t *testing.T) {
	c := mustCard(t, 10, 1, 7, 10, Beastman)
	if c.String() != "A/1/7/AB" {
		t.Fatalf("expected A/1/7/AB, got %s", c.String())
	}
	if RankString(12) != "A" {
		t.Fatalf("expected A, got %s", RankString(12))
	}
}
