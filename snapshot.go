package cardfolio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// This file handles the snapshot exchange format: a single JSON array of
// card records, self-describing and human-diffable. It is the whole-file
// backup/restore path; there is no incremental sync.

// SnapshotName returns the conventional file name for a snapshot exported on
// the given day, so successive backups do not collide.
func SnapshotName(on Date) string {
	return fmt.Sprintf("card_backup_%s.json", on)
}

// ExportSnapshot writes the full record set to 'w' as an indented JSON
// array, ordered by creation time (oldest first, ties by id) for stable
// diffs between backups.
func ExportSnapshot(w io.Writer, cards []Card) error {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	// An empty set exports as an empty array, not "null".
	if sorted == nil {
		sorted = []Card{}
	}

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// ImportSnapshot parses a snapshot from 'r' and returns the record set.
//
// Whole-file failures (not JSON, not an array) are reported as
// ErrInvalidFormat. Per-record failures (a record that does not decode or
// does not validate, or a duplicate id) are reported distinctly, joined with
// the record's position in the array, so the user can fix the file instead
// of guessing.
//
// Importing does not touch any store: the caller is expected to confirm the
// destructive overwrite and then call [Repository.ReplaceAll] with the
// returned set.
func ImportSnapshot(r io.Reader) ([]Card, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot: %w", err)
	}

	// "null" (and only "null") unmarshals into a slice without error, so an
	// explicit array check is needed: importing a null payload must not be
	// read as "replace the store with nothing".
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: want a JSON array of card records", ErrInvalidFormat)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%w: want a JSON array of card records: %v", ErrInvalidFormat, err)
	}

	cards := make([]Card, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	var errs error
	for i, raw := range raws {
		var c Card
		if err := json.Unmarshal(raw, &c); err != nil {
			errs = errors.Join(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if err := c.Validate(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		if _, dup := seen[c.ID]; dup {
			errs = errors.Join(errs, fmt.Errorf("record %d: %w", i, &ValidationError{ID: c.ID, Reason: "duplicate id"}))
			continue
		}
		seen[c.ID] = struct{}{}
		cards = append(cards, c)
	}
	if errs != nil {
		return nil, errs
	}
	return cards, nil
}
