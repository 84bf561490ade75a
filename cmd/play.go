package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

const undoChoice = "Undo the last move"

// playVsNPC runs a match where the user reports both sides' moves and gets a
// recommendation before each of their own. The user is always Blue.
func (a *app) playVsNPC() error {
	if a.decks.Count() == 0 {
		pterm.Warning.Println("You must have at least 1 registered deck to play an NPC!")
		return nil
	}
	npcName, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Which NPC?").
		WithOptions(a.data.NPCNames()).
		WithMaxHeight(15).
		Show()
	if err != nil {
		return err
	}
	npc, ok := a.data.NPC(npcName)
	if !ok {
		return fmt.Errorf("unknown NPC %q", npcName)
	}
	deckName, err := pterm.DefaultInteractiveSelect.WithDefaultText("Which deck are you using?").WithOptions(a.decks.Names()).Show()
	if err != nil {
		return err
	}
	ids, err := a.decks.Get(deckName)
	if err != nil {
		return err
	}
	hand, err := a.data.Hand(ids)
	if err != nil {
		return err
	}
	first, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Who goes first?").
		WithOptions([]string{triad.Blue.String(), triad.Red.String()}).
		Show()
	if err != nil {
		return err
	}

	g := triad.NewGame(triad.Blue)
	g.SetHand(triad.Blue, hand, triad.DeckSize)
	if err := a.data.Seat(g, triad.Red, npc); err != nil {
		return err
	}
	a.logger.Info("match started", "npc", npc.Name, "deck", deckName, "rules", g.Rules().String())

	current := triad.Blue
	if first == triad.Red.String() {
		current = triad.Red
	}
	for g.Outcome().Status == triad.NotFinished {
		printBoard(g)
		moves := g.Moves(current)
		if len(moves) == 0 {
			a.logger.Warn("no cards left to play", "player", current)
			break
		}

		if current == triad.Blue {
			spinner, _ := pterm.DefaultSpinner.Start("Finding optimal move...")
			rec, err := a.searcher.Recommend(g, current)
			if err != nil {
				spinner.Fail()
				return err
			}
			spinner.Success()
			printRecommendation(g, a.data, rec)
			pterm.Info.Println("What did you actually do?")
		} else {
			pterm.Info.Println("What did the NPC do?")
		}

		m, err := a.pickMove(g, moves)
		if errors.Is(err, errUndo) {
			if err := g.Undo(1); err != nil {
				pterm.Error.Println(err)
				continue
			}
			current = current.Other()
			continue
		}
		if err != nil {
			return err
		}
		if err := g.Apply(m); err != nil {
			return err
		}
		a.logger.Debug("move played", "move", m.String())
		current = current.Other()
	}

	printBoard(g)
	final := g.State()
	result := resultText(final.Standing())
	pterm.DefaultCenter.Println(pterm.DefaultHeader.WithFullWidth(false).Sprint("Game finished! Result: " + result))
	return nil
}

var errUndo = errors.New("undo requested")

type cardNamer interface {
	CardName(id int) string
}

// pickMove asks for a card and then a cell among moves. It returns errUndo
// when the user chooses to take back the previous move.
func (a *app) pickMove(g *triad.Game, moves []triad.Move) (triad.Move, error) {
	labels, slots := cardChoices(g, a.data, moves)
	if g.Depth() > 1 {
		labels = append(labels, undoChoice)
	}
	choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("What card?").WithOptions(labels).Show()
	if err != nil {
		return triad.Move{}, err
	}
	if choice == undoChoice {
		return triad.Move{}, errUndo
	}
	slot := slots[choice]

	cells := cellChoices(moves, slot)
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = triad.CellName(c)
	}
	where, err := pterm.DefaultInteractiveSelect.WithDefaultText("Where?").WithOptions(names).Show()
	if err != nil {
		return triad.Move{}, err
	}
	cell := cells[slices.Index(names, where)]
	for _, m := range moves {
		if m.Slot == slot && m.Cell == cell {
			return m, nil
		}
	}
	return triad.Move{}, fmt.Errorf("%s in %s: %w", choice, where, triad.ErrUnavailableMove)
}

// cardChoices returns one label per playable hand slot, in slot order, and
// the slot each label stands for. Labels stay unique when a hand holds two
// copies of the same card.
func cardChoices(g *triad.Game, data cardNamer, moves []triad.Move) ([]string, map[string]int) {
	var labels []string
	slots := make(map[string]int)
	seen := make(map[int]bool)
	var ordered []int
	for _, m := range moves {
		if !seen[m.Slot] {
			seen[m.Slot] = true
			ordered = append(ordered, m.Slot)
		}
	}
	slices.Sort(ordered)
	for _, slot := range ordered {
		s := g.HandSlot(moves[0].Player, slot)
		label := fmt.Sprintf("%s (%s)", data.CardName(s.ID), s.Card)
		if _, dup := slots[label]; dup {
			label = fmt.Sprintf("%s #%d", label, slot+1)
		}
		labels = append(labels, label)
		slots[label] = slot
	}
	return labels, slots
}

// cellChoices returns the cells slot can be played on, in ascending order.
func cellChoices(moves []triad.Move, slot int) []int {
	var cells []int
	for _, m := range moves {
		if m.Slot == slot {
			cells = append(cells, m.Cell)
		}
	}
	return cells
}
