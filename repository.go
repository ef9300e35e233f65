package cardfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Repository is the sole gateway to the durable card store. All reads and
// writes of card records pass through it.
//
// The store is a single JSONL file keyed by record id. Every mutation
// rewrites the file through a temporary file and an atomic rename, then
// updates the in-memory set, so a failed write leaves both the file and the
// visible record set unchanged, and no reader ever observes a half-written
// record.
type Repository struct {
	path  string
	cards map[string]Card
}

// Open loads the repository backed by the given file. A missing file is not
// an error: the store starts empty and the file is created on the first
// write, so first-time initialization is idempotent.
func Open(path string) (*Repository, error) {
	repo := &Repository{path: path, cards: make(map[string]Card)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: could not open store file %q: %v", ErrStorageUnavailable, path, err)
	}
	defer f.Close()

	cards, err := DecodeCards(f)
	if err != nil {
		return nil, fmt.Errorf("%w: could not decode store file %q: %v", ErrStorageUnavailable, path, err)
	}
	for _, c := range cards {
		if _, exists := repo.cards[c.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q in store file %q", ErrStorageUnavailable, c.ID, path)
		}
		repo.cards[c.ID] = c
	}
	return repo, nil
}

// Path returns the store file path.
func (r *Repository) Path() string { return r.path }

// Len returns the number of records in the store.
func (r *Repository) Len() int { return len(r.cards) }

// LoadAll returns every stored record, ordered descending by creation time
// (newest first, ties broken by id for determinism).
func (r *Repository) LoadAll() []Card {
	cards := make([]Card, 0, len(r.cards))
	for _, c := range r.cards {
		cards = append(cards, c)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}
		return cards[i].ID < cards[j].ID
	})
	return cards
}

// Get returns the record with the given id.
func (r *Repository) Get(id string) (Card, bool) {
	c, ok := r.cards[id]
	return c, ok
}

// Upsert inserts the record if its id is new, otherwise replaces the record
// with that id in place. Callers supply the complete record, there is no
// partial-field merge at this layer. The record is validated here rather
// than trusting the caller: the sold-field coupling holds for every stored
// record.
func (r *Repository) Upsert(c Card) error {
	if err := c.Validate(); err != nil {
		return err
	}
	next := r.clone()
	next[c.ID] = c
	return r.commit(next)
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *Repository) Delete(id string) error {
	if _, ok := r.cards[id]; !ok {
		return nil
	}
	next := r.clone()
	delete(next, id)
	return r.commit(next)
}

// DeleteMany removes every listed id in a single store rewrite. Absent ids
// and an empty input are no-ops.
func (r *Repository) DeleteMany(ids []string) error {
	next := r.clone()
	changed := false
	for _, id := range ids {
		if _, ok := next[id]; ok {
			delete(next, id)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return r.commit(next)
}

// ReplaceAll clears the store and inserts exactly the given records. It is
// used by the import flow only. Every record is validated, and the set
// checked for duplicate ids, before any store mutation; the write itself is
// a single atomic file replace, so the swap is all-or-nothing: a failure
// never loses the old set nor leaves a partial new one.
func (r *Repository) ReplaceAll(cards []Card) error {
	next := make(map[string]Card, len(cards))
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, exists := next[c.ID]; exists {
			return &ValidationError{ID: c.ID, Reason: "duplicate id"}
		}
		next[c.ID] = c
	}
	return r.commit(next)
}

func (r *Repository) clone() map[string]Card {
	next := make(map[string]Card, len(r.cards))
	for id, c := range r.cards {
		next[id] = c
	}
	return next
}

// commit durably writes 'next' and only then makes it the visible set.
func (r *Repository) commit(next map[string]Card) error {
	if err := r.write(next); err != nil {
		return err
	}
	r.cards = next
	return nil
}

// write persists the record set to the store file via temp file + rename.
func (r *Repository) write(cards map[string]Card) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: could not create store directory %q: %v", ErrStorageWriteFailed, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: could not create temp file in %q: %v", ErrStorageWriteFailed, dir, err)
	}
	tmpName := tmp.Name()

	all := make([]Card, 0, len(cards))
	for _, c := range cards {
		all = append(all, c)
	}
	if err := EncodeCards(tmp, all); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: could not close temp file: %v", ErrStorageWriteFailed, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: could not replace store file %q: %v", ErrStorageWriteFailed, r.path, err)
	}
	return nil
}
