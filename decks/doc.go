// Package decks stores the player's named Triple Triad decks in a JSON file.
//
// # Core Types
//
// Store: a set of named decks backed by a file. Every change is written to
// disk before the call returns. A Store is safe for concurrent use.
//
// Deck: five card ids in play order and the time the deck was registered.
// Order matters because of the Order rule.
//
// # Usage
//
// Open the store once at startup. If the file does not exist it is created
// together with its parent directories.
package decks
