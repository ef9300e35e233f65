package cardfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// The store file is JSONL: one card record per line, keyed by id. The format
// is human readable and diffs line by line under version control.

// DecodeCards reads a JSONL stream of card records. Each line must decode to
// a record and pass validation; decoding is strict so a corrupt store is
// reported, not silently truncated.
func DecodeCards(r io.Reader) ([]Card, error) {
	var cards []Card
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var c Card
		if err := json.Unmarshal(lineBytes, &c); err != nil {
			return nil, fmt.Errorf("could not parse card record on line %d: %w", line, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid card record on line %d: %w", line, err)
		}
		cards = append(cards, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return cards, nil
}

// maxLineBytes bounds a single record line. Embedded images are base64 so a
// line can be large, but not unbounded.
const maxLineBytes = 16 * 1024 * 1024

// EncodeCards writes cards to 'w' in JSONL format, ordered by creation time
// (oldest first, ties broken by id) so rewrites are canonical and stable.
func EncodeCards(w io.Writer, cards []Card) error {
	sorted := make([]Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	for _, c := range sorted {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("could not marshal card %q: %w", c.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("could not write card %q: %w", c.ID, err)
		}
	}
	return nil
}
