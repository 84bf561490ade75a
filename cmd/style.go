package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/triad-solver/catalog"
	"github.com/luca-patrignani/triad-solver/domain/triad"
	"github.com/luca-patrignani/triad-solver/search"
)

func paint(p triad.Player, s string) string {
	if p == triad.Red {
		return pterm.LightRed(s)
	}
	return pterm.LightBlue(s)
}

// rankText renders side d of the card at cell, or a blank for an empty cell.
func rankText(g *triad.Game, cell int, d triad.Direction) string {
	rank, ok := g.EffectiveRankAt(cell, d)
	if !ok {
		return " "
	}
	return paint(g.Cell(cell).Owner, triad.RankString(rank))
}

func suitText(g *triad.Game, cell int) string {
	c := g.Cell(cell)
	if !c.Occupied {
		return " "
	}
	return paint(c.Owner, c.Card.Suit().String())
}

// renderBoard draws the grid with Blue's remaining cards on the left and Red's on the right.
func renderBoard(g *triad.Game) string {
	var b strings.Builder
	row := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	blue := paint(triad.Blue, strconv.Itoa(g.Remaining(triad.Blue)))
	red := paint(triad.Red, strconv.Itoa(g.Remaining(triad.Red)))

	row("  ┌─────┬─────┬─────┐")
	for r := 0; r < 3; r++ {
		a, c, e := r*3, r*3+1, r*3+2
		row("  │  %s%s │  %s%s │  %s%s │",
			rankText(g, a, triad.North), suitText(g, a),
			rankText(g, c, triad.North), suitText(g, c),
			rankText(g, e, triad.North), suitText(g, e))
		left, right := " ", ""
		if r == 1 {
			left, right = blue, " "+red
		}
		row("%s │ %s %s │ %s %s │ %s %s │%s", left,
			rankText(g, a, triad.West), rankText(g, a, triad.East),
			rankText(g, c, triad.West), rankText(g, c, triad.East),
			rankText(g, e, triad.West), rankText(g, e, triad.East),
			right)
		row("  │  %s  │  %s  │  %s  │",
			rankText(g, a, triad.South), rankText(g, c, triad.South), rankText(g, e, triad.South))
		if r < 2 {
			row("  ├─────┼─────┼─────┤")
		}
	}
	b.WriteString("  └─────┴─────┴─────┘")
	return b.String()
}

func printBoard(g *triad.Game) {
	scores := g.Scores()
	title := fmt.Sprintf("%s %d - %d %s", paint(triad.Blue, "You"), scores[triad.Blue], scores[triad.Red], paint(triad.Red, "NPC"))
	board := pterm.DefaultBox.WithTitle(title).WithTitleTopCenter().WithHorizontalPadding(2).Sprint(renderBoard(g))
	info := pterm.DefaultBox.WithTitle(pterm.LightYellow("|RULES|")).WithHorizontalPadding(2).Sprint(g.Rules().String())
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: board}, {Data: info}},
	}).Render()
}

type cardSource interface {
	cardNamer
	Card(id int) (triad.Card, bool)
}

// deckTable lists the cards of a deck with their printed ranks. Zero ids are shown as empty slots.
func deckTable(data cardSource, ids [triad.DeckSize]int) pterm.TableData {
	rows := pterm.TableData{{"#", "Card", "N", "S", "W", "E", "Suit"}}
	for i, id := range ids {
		c, ok := data.Card(id)
		if id == 0 || !ok {
			rows = append(rows, []string{strconv.Itoa(i + 1), pterm.Gray("empty"), "", "", "", "", ""})
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			data.CardName(id),
			triad.RankString(c.Rank(triad.North)),
			triad.RankString(c.Rank(triad.South)),
			triad.RankString(c.Rank(triad.West)),
			triad.RankString(c.Rank(triad.East)),
			c.Suit().String(),
		})
	}
	return rows
}

func printDeck(data *catalog.Data, name string, ids [triad.DeckSize]int) {
	pterm.DefaultSection.Println(name)
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(deckTable(data, ids)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func handCardName(g *triad.Game, data cardNamer, p triad.Player, slot int) string {
	return data.CardName(g.HandSlot(p, slot).ID)
}

// recommendationText describes a recommended move in the player's terms.
func recommendationText(g *triad.Game, data cardNamer, rec search.Recommendation) string {
	if rec.Move == nil {
		return fmt.Sprintf("No move available. (Score: %v)", rec.Score)
	}
	m := *rec.Move
	text := fmt.Sprintf("Recommended move: Play your %s card in the %s. (Score: %v)",
		handCardName(g, data, m.Player, m.Slot), triad.CellName(m.Cell), rec.Score)
	if rec.WinRatio != nil {
		text += fmt.Sprintf("\nWin ratio over random playouts: %.1f%%", *rec.WinRatio*100)
	}
	return text
}

func printRecommendation(g *triad.Game, data *catalog.Data, rec search.Recommendation) {
	pterm.DefaultBox.
		WithTitle(pterm.LightGreen("|RECOMMENDATION|")).
		WithTitleTopCenter().
		WithHorizontalPadding(4).
		WithTopPadding(1).
		WithBottomPadding(1).
		Println(recommendationText(g, data, rec))
}

func resultText(o triad.Outcome) string {
	switch {
	case o.Status == triad.Tie:
		return "Tie!"
	case o.Status == triad.Won && o.Winner == triad.Blue:
		return "You win!"
	case o.Status == triad.Won:
		return "You lose!"
	}
	return "Not finished"
}
