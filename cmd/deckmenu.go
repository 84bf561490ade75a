package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

var ordinals = [triad.DeckSize]string{"First card:", "Second card:", "Third card:", "Fourth card:", "Fifth card:"}

// cardLabels returns a selectable label per catalog card, ordered by id.
func (a *app) cardLabels() ([]string, map[string]int) {
	ids := a.data.CardIDs()
	labels := make([]string, 0, len(ids))
	byLabel := make(map[string]int, len(ids))
	for _, id := range ids {
		label := fmt.Sprintf("%3d %s", id, a.data.CardName(id))
		labels = append(labels, label)
		byLabel[label] = id
	}
	return labels, byLabel
}

func (a *app) registerDeck() error {
	name, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Deck name").Show()
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		pterm.Warning.Println("A deck needs a name.")
		return nil
	}
	if _, exists := a.decks.Lookup(name); exists {
		replace, err := pterm.DefaultInteractiveConfirm.WithDefaultText(fmt.Sprintf("Replace the existing deck %q?", name)).Show()
		if err != nil {
			return err
		}
		if !replace {
			pterm.Info.Println("Cancelled.")
			return nil
		}
	}

	pterm.Info.Println("Reminder: deck order matters!")
	labels, byLabel := a.cardLabels()
	var cards [triad.DeckSize]int
	for i, prompt := range ordinals {
		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(labels).WithMaxHeight(15).Show()
		if err != nil {
			return err
		}
		cards[i] = byLabel[choice]
	}

	if err := a.decks.Add(name, cards); err != nil {
		return err
	}
	a.logger.Info("deck registered", "name", name, "cards", cards)
	pterm.Success.Println("Deck saved!")
	return nil
}

const goBack = "Go back"

func (a *app) viewDecks() error {
	options := append([]string{goBack}, a.decks.Names()...)
	for {
		choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("Which deck?").WithOptions(options).Show()
		if err != nil {
			return err
		}
		if choice == goBack {
			return nil
		}
		ids, err := a.decks.Get(choice)
		if err != nil {
			return err
		}
		printDeck(a.data, choice, ids)
	}
}

const cancel = "Cancel"

func (a *app) deleteDeck() error {
	options := append([]string{cancel}, a.decks.Names()...)
	choice, err := pterm.DefaultInteractiveSelect.WithDefaultText("Which deck would you like to delete?").WithOptions(options).Show()
	if err != nil {
		return err
	}
	if choice == cancel {
		pterm.Info.Println("Cancelled.")
		return nil
	}
	sure, err := pterm.DefaultInteractiveConfirm.WithDefaultText("Are you sure?").Show()
	if err != nil {
		return err
	}
	if !sure {
		pterm.Info.Println("Cancelled.")
		return nil
	}
	if err := a.decks.Remove(choice); err != nil {
		return err
	}
	pterm.Success.Printfln("%s deleted.", choice)
	return nil
}
