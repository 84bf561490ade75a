package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

const (
	CardNamesFile = "TripleTriadCard.csv"
	CardsFile     = "TripleTriadCardResident.csv"
	NPCDecksFile  = "TripleTriad.csv"
	NPCBaseFile   = "ENpcBase.csv"
	NPCNamesFile  = "ENpcResident.csv"
)

// npcDataColumns is the number of data columns of ENpcBase.csv that may
// reference a Triple Triad deck. They start at column 3.
const npcDataColumns = 32

var (
	ErrUnknownSuit     = errors.New("unknown suit")
	ErrMissingCardData = errors.New("no data for card")
	ErrMissingNames    = errors.New("missing name data for cards")
	ErrUnknownCard     = errors.New("unknown card")
)

// NPC is an opponent. Card ids of 0 mark an empty slot.
type NPC struct {
	Name     string
	Fixed    [triad.DeckSize]int
	Variable [triad.DeckSize]int
	Rules    triad.Rules
}

// Data is the loaded catalog. It is read-only after Load.
type Data struct {
	cards map[int]triad.Card
	names map[int]string
	npcs  map[string]NPC
}

// Load reads every sheet from dir. Every card must have both ranks and a
// name; NPCs without a resolvable name are skipped with a warning.
func Load(dir string) (*Data, error) {
	names, err := loadCardNames(dir)
	if err != nil {
		return nil, err
	}
	cards, err := loadCards(dir)
	if err != nil {
		return nil, err
	}
	for id := range names {
		if _, ok := cards[id]; !ok {
			return nil, fmt.Errorf("card %d: %w", id, ErrMissingCardData)
		}
	}
	if len(names) != len(cards) {
		return nil, fmt.Errorf("%d names for %d cards: %w", len(names), len(cards), ErrMissingNames)
	}

	decks, err := loadNPCDecks(dir)
	if err != nil {
		return nil, err
	}
	owners, err := loadNPCOwners(dir, decks)
	if err != nil {
		return nil, err
	}
	wanted := make(map[int]bool, len(owners))
	for _, npcID := range owners {
		wanted[npcID] = true
	}
	npcNames, err := loadNPCNames(dir, wanted)
	if err != nil {
		return nil, err
	}

	npcs := make(map[string]NPC, len(decks))
	for deckID, npc := range decks {
		npcID, ok := owners[deckID]
		if !ok {
			slog.Warn("missing NPC for deck", "deck", deckID)
			continue
		}
		name, ok := npcNames[npcID]
		if !ok {
			slog.Warn("missing name for NPC", "deck", deckID, "npc", npcID)
			continue
		}
		npc.Name = name
		npcs[name] = npc
	}

	return &Data{cards: cards, names: names, npcs: npcs}, nil
}

// Card returns the card with the given id.
func (d *Data) Card(id int) (triad.Card, bool) {
	c, ok := d.cards[id]
	return c, ok
}

// CardName returns the name of the card, or its id when the name is unknown.
func (d *Data) CardName(id int) string {
	if name, ok := d.names[id]; ok {
		return name
	}
	return "#" + strconv.Itoa(id)
}

// CardIDs returns every card id in ascending order.
func (d *Data) CardIDs() []int {
	ids := make([]int, 0, len(d.cards))
	for id := range d.cards {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (d *Data) NPC(name string) (NPC, bool) {
	npc, ok := d.npcs[name]
	return npc, ok
}

// NPCNames returns the names of all NPCs in alphabetical order.
func (d *Data) NPCNames() []string {
	names := make([]string, 0, len(d.npcs))
	for name := range d.npcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Hand resolves a deck of card ids. An id of 0 yields an empty HandCard.
func (d *Data) Hand(ids [triad.DeckSize]int) ([triad.DeckSize]triad.HandCard, error) {
	var hand [triad.DeckSize]triad.HandCard
	for i, id := range ids {
		if id == 0 {
			continue
		}
		c, ok := d.cards[id]
		if !ok {
			return hand, fmt.Errorf("card %d: %w", id, ErrUnknownCard)
		}
		hand[i] = triad.HandCard{ID: id, Card: c}
	}
	return hand, nil
}

// Seat loads the NPC's fixed and variable cards and rules into g for player p.
func (d *Data) Seat(g *triad.Game, p triad.Player, npc NPC) error {
	fixed, err := d.Hand(npc.Fixed)
	if err != nil {
		return fmt.Errorf("%s: %w", npc.Name, err)
	}
	variable, err := d.Hand(npc.Variable)
	if err != nil {
		return fmt.Errorf("%s: %w", npc.Name, err)
	}
	g.SetNPCHand(p, fixed, variable, npc.Rules)
	return nil
}
