package decks

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/luca-patrignani/triad-solver/domain/triad"
)

// FileName is the name of the deck file inside the configuration directory.
const FileName = "decks.json"

var ErrDeckNotFound = errors.New("deck not found")

type Deck struct {
	Created time.Time           `json:"created"`
	Cards   [triad.DeckSize]int `json:"cards"`
}

type Store struct {
	mu    sync.RWMutex
	path  string
	decks map[string]Deck
}

// file is the on-disk layout.
type file struct {
	Decks map[string]Deck `json:"decks"`
}

// DefaultPath returns the deck file location inside the user configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "triad-solver", FileName), nil
}

// Open loads the store at path, creating an empty one if the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path, decks: make(map[string]Deck)}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating deck directory: %w", err)
		}
		if err := s.save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading decks: %w", err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if f.Decks != nil {
		s.decks = f.Decks
	}
	return s, nil
}

// Add stores cards under name, replacing any deck with the same name.
func (s *Store) Add(name string, cards [triad.DeckSize]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.decks[name]
	s.decks[name] = Deck{Created: time.Now().UTC(), Cards: cards}
	if err := s.save(); err != nil {
		if existed {
			s.decks[name] = prev
		} else {
			delete(s.decks, name)
		}
		return err
	}
	return nil
}

func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.decks[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrDeckNotFound)
	}
	delete(s.decks, name)
	if err := s.save(); err != nil {
		s.decks[name] = prev
		return err
	}
	return nil
}

// Get returns the card ids of the named deck in play order.
func (s *Store) Get(name string) ([triad.DeckSize]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.decks[name]
	if !ok {
		return [triad.DeckSize]int{}, fmt.Errorf("%q: %w", name, ErrDeckNotFound)
	}
	return d.Cards, nil
}

// Lookup returns the full deck record.
func (s *Store) Lookup(name string) (Deck, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.decks[name]
	return d, ok
}

// Names returns the deck names in alphabetical order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.decks))
	for name := range s.decks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.decks)
}

// save writes the store to disk. The caller must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(file{Decks: s.decks}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding decks: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing decks: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("writing decks: %w", err)
	}
	return nil
}
