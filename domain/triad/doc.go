// Package triad implements the rules engine for Triple Triad, a two-player
// card-placement game played on a 3×3 grid.
//
// # Core Types
//
// Card: Four directional ranks (North, South, West, East) and an optional Suit.
//
// Rules: The optional mechanics active for a match (Order, Reverse, Fallen Ace,
// Ascension, Decension, ...).
//
// State: One immutable snapshot of a match: the board, both hands, the suit
// modifiers and the number of cards each player still holds.
//
// Game: The engine. It owns an append-only history of States, the active Rules
// and the human/NPC flags, and exposes move enumeration, move application,
// undo and scoring.
//
// # Game Flow
//
// Players alternate placing one card from their hand on an empty cell. Every
// occupied neighbour whose facing rank loses the comparison against the played
// card changes owner. When all nine cells are filled, the player owning more
// cards (board plus hand) wins.
//
// # Backtracking
//
// Apply derives a new State and pushes it on the history; Undo pops it again.
// Search code relies on this pair to explore move sequences on a single Game
// without copying it per node. Clone drops the history so a branch can be
// handed to another goroutine.
package triad
