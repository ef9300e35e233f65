package cardfolio

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecodeCards(t *testing.T) {
	// A JSONL stream with an empty line, as a store file after hand edits.
	jsonlStream := `
{"id":"a","name":"Charizard","setOrSeries":"Base","buyDate":"2024-01-10","buyPrice":300,"isSold":false,"createdAt":"2024-01-10T10:00:00Z"}

{"id":"b","name":"Blastoise","buyDate":"2024-01-11","buyPrice":80,"isSold":true,"sellDate":"2024-02-01","sellPrice":120,"createdAt":"2024-01-11T10:00:00Z"}
`
	cards, err := DecodeCards(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeCards() returned an unexpected error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("DecodeCards() decoded %d records, want 2", len(cards))
	}
	if cards[0].ID != "a" || cards[0].Sold {
		t.Errorf("first record decoded wrong: %+v", cards[0])
	}
	if !cards[1].Sold || cards[1].SellPrice == nil || !cards[1].SellPrice.Equal(M(120, "")) {
		t.Errorf("second record decoded wrong: %+v", cards[1])
	}
}

func TestDecodeCards_RejectsBrokenRecord(t *testing.T) {
	// Sold flag set without sale fields: the store must report, not truncate.
	jsonlStream := `{"id":"a","name":"Charizard","buyDate":"2024-01-10","buyPrice":300,"isSold":true,"createdAt":"2024-01-10T10:00:00Z"}`
	if _, err := DecodeCards(strings.NewReader(jsonlStream)); err == nil {
		t.Fatal("DecodeCards() must reject a record with a broken sold-field coupling")
	}
}

func TestEncodeCards_StableOrder(t *testing.T) {
	a := NewCard("first", "", MustParseDate("2024-01-01"), M(1, ""))
	b := NewCard("second", "", MustParseDate("2024-01-02"), M(2, ""))

	// Encoding is ordered by creation time whatever the input order.
	var buf1, buf2 bytes.Buffer
	if err := EncodeCards(&buf1, []Card{a, b}); err != nil {
		t.Fatalf("EncodeCards() returned an unexpected error: %v", err)
	}
	if err := EncodeCards(&buf2, []Card{b, a}); err != nil {
		t.Fatalf("EncodeCards() returned an unexpected error: %v", err)
	}
	if buf1.String() != buf2.String() {
		t.Error("EncodeCards() must produce a canonical order independent of input order")
	}

	cards, err := DecodeCards(&buf1)
	if err != nil {
		t.Fatalf("DecodeCards() returned an unexpected error: %v", err)
	}
	if len(cards) != 2 || !cards[0].Equal(a) || !cards[1].Equal(b) {
		t.Errorf("encode/decode round trip mismatch: %+v", cards)
	}
}
