package cardfolio

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewCard(t *testing.T) {
	a := NewCard("Pikachu Illustrator", "Promo", MustParseDate("2024-05-01"), M(5000, "USD"))
	b := NewCard("Pikachu Illustrator", "Promo", MustParseDate("2024-05-01"), M(5000, "USD"))

	if a.ID == "" || b.ID == "" {
		t.Fatal("NewCard must assign an id")
	}
	if a.ID == b.ID {
		t.Error("two created records must never share an id")
	}
	if a.CreatedAt.IsZero() {
		t.Error("NewCard must stamp the creation time")
	}
	if a.Sold || a.SellDate != nil || a.SellPrice != nil {
		t.Error("a new card must be unsold with no sale fields")
	}
}

func TestCard_Validate(t *testing.T) {
	valid := NewCard("Blastoise", "Base", MustParseDate("2024-01-10"), M(80, "USD"))
	sellDate := MustParseDate("2024-02-01")
	sellPrice := M(120, "USD")

	testCases := []struct {
		name    string
		mutate  func(c Card) Card
		wantErr bool
	}{
		{name: "valid unsold", mutate: func(c Card) Card { return c }},
		{name: "valid sold", mutate: func(c Card) Card { return c.MarkSold(sellDate, sellPrice) }},
		{name: "missing id", mutate: func(c Card) Card { c.ID = ""; return c }, wantErr: true},
		{name: "missing name", mutate: func(c Card) Card { c.Name = ""; return c }, wantErr: true},
		{name: "negative buy price", mutate: func(c Card) Card { c.BuyPrice = M(-1, "USD"); return c }, wantErr: true},
		{name: "missing buy date", mutate: func(c Card) Card { c.BuyDate = Date{}; return c }, wantErr: true},
		{
			name:    "sold without sell price",
			mutate:  func(c Card) Card { c.Sold = true; c.SellDate = &sellDate; return c },
			wantErr: true,
		},
		{
			name:    "sold without sell date",
			mutate:  func(c Card) Card { c.Sold = true; c.SellPrice = &sellPrice; return c },
			wantErr: true,
		},
		{
			name:    "unsold with sale fields",
			mutate:  func(c Card) Card { c.SellDate = &sellDate; c.SellPrice = &sellPrice; return c },
			wantErr: true,
		},
		{
			name: "negative sell price",
			mutate: func(c Card) Card {
				neg := M(-5, "USD")
				c.Sold = true
				c.SellDate = &sellDate
				c.SellPrice = &neg
				return c
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.mutate(valid).Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("Validate() expected an error")
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("Validate() error is %T, want *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() returned an unexpected error: %v", err)
			}
		})
	}
}

func TestCard_JSONRoundTrip(t *testing.T) {
	card := NewCard("Mewtwo Holo", "Base Set 2", MustParseDate("2024-03-10"), M(42.50, "USD"))
	card.Notes = "near mint"
	card = card.MarkSold(MustParseDate("2024-04-01"), M(60, "USD"))

	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal() returned an unexpected error: %v", err)
	}

	// The wire shape uses the snapshot field names.
	for _, field := range []string{`"id"`, `"name"`, `"setOrSeries"`, `"buyDate"`, `"buyPrice"`, `"isSold"`, `"sellDate"`, `"sellPrice"`, `"createdAt"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshalled card misses field %s in %s", field, data)
		}
	}
	// Amounts are bare numbers, not strings.
	if strings.Contains(string(data), `"42.5"`) {
		t.Errorf("buyPrice must be a JSON number, got %s", data)
	}

	var back Card
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() returned an unexpected error: %v", err)
	}
	if !card.Equal(back) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", back, card)
	}
}

func TestCard_JSONUnsoldOmitsSaleFields(t *testing.T) {
	card := NewCard("Squirtle", "Base", MustParseDate("2024-01-01"), M(5, "USD"))
	data, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal() returned an unexpected error: %v", err)
	}
	if strings.Contains(string(data), "sellDate") || strings.Contains(string(data), "sellPrice") {
		t.Errorf("unsold card must omit sale fields, got %s", data)
	}
}
