package catalog

import (
	"fmt"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

func loadCardNames(dir string) (map[int]string, error) {
	s, err := openSheet(dir, CardNamesFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	names := make(map[int]string)
	err = s.each(func(rec []string) error {
		id, err := field(rec, 0)
		if err != nil {
			return err
		}
		if len(rec) < 2 {
			return fmt.Errorf("missing name")
		}
		names[id] = rec[1]
		return nil
	})
	return names, err
}

var suits = map[string]triad.Suit{
	"0": triad.NoSuit,
	"1": triad.Primal,
	"2": triad.Scion,
	"3": triad.Beastman,
	"4": triad.Garlean,
}

func loadCards(dir string) (map[int]triad.Card, error) {
	s, err := openSheet(dir, CardsFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	cards := make(map[int]triad.Card)
	err = s.each(func(rec []string) error {
		var v [5]int
		for i, col := range []int{0, 2, 3, 4, 5} {
			n, err := field(rec, col)
			if err != nil {
				return err
			}
			v[i] = n
		}
		if len(rec) < 8 {
			return fmt.Errorf("missing suit column")
		}
		suit, ok := suits[rec[7]]
		if !ok {
			return fmt.Errorf("%q: %w", rec[7], ErrUnknownSuit)
		}
		c, err := triad.NewCard(v[1], v[2], v[3], v[4], suit)
		if err != nil {
			return fmt.Errorf("card %d: %w", v[0], err)
		}
		cards[v[0]] = c
		return nil
	})
	return cards, err
}

// loadNPCDecks returns the NPC decks keyed by their Triple Triad id.
func loadNPCDecks(dir string) (map[int]NPC, error) {
	s, err := openSheet(dir, NPCDecksFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	decks := make(map[int]NPC)
	err = s.each(func(rec []string) error {
		var v [13]int
		for i := range v {
			n, err := field(rec, i)
			if err != nil {
				return err
			}
			v[i] = n
		}
		var npc NPC
		copy(npc.Fixed[:], v[1:6])
		copy(npc.Variable[:], v[6:11])
		npc.Rules = triad.ParseRules(v[11], v[12])
		decks[v[0]] = npc
		return nil
	})
	return decks, err
}

// loadNPCOwners maps each deck id to the NPC that uses it. Only the first
// deck referenced by an NPC is considered; a zero column ends the list.
func loadNPCOwners(dir string, decks map[int]NPC) (map[int]int, error) {
	s, err := openSheet(dir, NPCBaseFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	owners := make(map[int]int)
	err = s.each(func(rec []string) error {
		npcID, err := field(rec, 0)
		if err != nil {
			return err
		}
		for i := range npcDataColumns {
			ref, err := field(rec, i+3)
			if err != nil {
				return err
			}
			if ref == 0 {
				break
			}
			if _, ok := decks[ref]; ok {
				owners[ref] = npcID
				break
			}
		}
		return nil
	})
	return owners, err
}

func loadNPCNames(dir string, wanted map[int]bool) (map[int]string, error) {
	s, err := openSheet(dir, NPCNamesFile)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	names := make(map[int]string)
	err = s.each(func(rec []string) error {
		if len(rec) < 2 || rec[1] == "" {
			return nil
		}
		id, err := field(rec, 0)
		if err != nil {
			return err
		}
		if wanted[id] {
			names[id] = rec[1]
		}
		return nil
	})
	return names, err
}
