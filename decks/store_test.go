package decks

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// TestOpenCreatesFile verifies that opening a missing store creates the file
// and its parent directories.
func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 0 {
		t.Fatalf("expected an empty store, got %d decks", s.Count())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected the file to exist: %v", err)
	}
	if !strings.Contains(string(data), `"decks"`) {
		t.Fatalf("unexpected file content %s", data)
	}
}

// TestAddPersists verifies that decks survive reopening the store and keep their card order.
func TestAddPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("starter", [5]int{5, 4, 3, 2, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("aces", [5]int{10, 11, 12, 13, 14}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cards, err := reopened.Get("starter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cards != [5]int{5, 4, 3, 2, 1} {
		t.Fatalf("deck order not preserved: %v", cards)
	}
	names := reopened.Names()
	if len(names) != 2 || names[0] != "aces" || names[1] != "starter" {
		t.Fatalf("unexpected names %v", names)
	}
	d, ok := reopened.Lookup("aces")
	if !ok || d.Created.IsZero() {
		t.Fatalf("expected a creation time, got %+v", d)
	}
}

func TestAddReplaces(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("deck", [5]int{1, 1, 1, 1, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("deck", [5]int{2, 2, 2, 2, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 1 {
		t.Fatalf("expected 1 deck, got %d", s.Count())
	}
	if cards, _ := s.Get("deck"); cards[0] != 2 {
		t.Fatalf("expected the replacement deck, got %v", cards)
	}
}

func TestRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add("deck", [5]int{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Remove("deck"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Get("deck"); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
	if err := s.Remove("deck"); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reopened.Count() != 0 {
		t.Fatalf("removal was not persisted")
	}
}

func TestOpenInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

// TestConcurrentAccess exercises the store from several goroutines; run with -race.
func TestConcurrentAccess(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			if err := s.Add(name, [5]int{i, i, i, i, i}); err != nil {
				errs <- err
				return
			}
			_ = s.Names()
			if _, err := s.Get(name); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count() != 8 {
		t.Fatalf("expected 8 decks, got %d", s.Count())
	}
}
