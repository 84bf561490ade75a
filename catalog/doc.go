// Package catalog loads the Triple Triad card list and NPC opponents from
// the game's exported CSV sheets.
//
// Every sheet starts with a line that is discarded, followed by a header
// line, a row of column types and a placeholder row. Data rows follow.
//
// # Files
//
//   - TripleTriadCard.csv: card id and name
//   - TripleTriadCardResident.csv: card ranks and suit
//   - TripleTriad.csv: NPC decks and rules
//   - ENpcBase.csv: maps NPC ids to the Triple Triad decks they use
//   - ENpcResident.csv: NPC names
package catalog
