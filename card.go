package cardfolio

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Card is one purchase, optionally followed by a sale, of a single physical
// card.
//
// ID and CreatedAt are assigned at creation and never change afterwards:
// CreatedAt determines the default list ordering (newest first), ID is the
// store key and is never reused.
type Card struct {
	ID        string // unique, immutable
	Name      string
	Series    string // set/series/edition label, free text
	Notes     string
	ImageRef  string // optional embedded image, base64 data
	BuyDate   Date
	BuyPrice  Money
	Sold      bool
	SellDate  *Date  // non-nil iff Sold
	SellPrice *Money // non-nil iff Sold
	CreatedAt time.Time
}

// NewCard creates a new unsold card record, assigning its id and creation
// timestamp.
func NewCard(name, series string, buyDate Date, buyPrice Money) Card {
	return Card{
		ID:        uuid.NewString(),
		Name:      name,
		Series:    series,
		BuyDate:   buyDate,
		BuyPrice:  buyPrice,
		CreatedAt: time.Now(),
	}
}

// MarkSold returns a copy of the card recorded as sold on the given day for
// the given price.
func (c Card) MarkSold(on Date, price Money) Card {
	c.Sold = true
	c.SellDate = &on
	c.SellPrice = &price
	return c
}

// Profit returns the realized profit of a sold card, or zero money otherwise.
func (c Card) Profit() Money {
	if !c.Sold || c.SellPrice == nil {
		return Money{}
	}
	return c.SellPrice.Sub(c.BuyPrice)
}

// Validate checks the card's field constraints: a non-empty id and name, a
// non-negative buy price, and the sold-field coupling (sold iff both sell
// date and sell price are set, sell price non-negative).
func (c Card) Validate() error {
	if c.ID == "" {
		return &ValidationError{ID: c.ID, Reason: "missing id"}
	}
	if c.Name == "" {
		return &ValidationError{ID: c.ID, Reason: "missing name"}
	}
	if c.BuyPrice.IsNegative() {
		return &ValidationError{ID: c.ID, Reason: "negative buy price"}
	}
	if c.BuyDate.IsZero() {
		return &ValidationError{ID: c.ID, Reason: "missing buy date"}
	}
	if c.Sold {
		if c.SellDate == nil || c.SellPrice == nil {
			return &ValidationError{ID: c.ID, Reason: "sold card requires both sell date and sell price"}
		}
		if c.SellPrice.IsNegative() {
			return &ValidationError{ID: c.ID, Reason: "negative sell price"}
		}
	} else if c.SellDate != nil || c.SellPrice != nil {
		return &ValidationError{ID: c.ID, Reason: "unsold card cannot have sell date or sell price"}
	}
	return nil
}

// Equal reports whether two cards are field-for-field equal.
func (c Card) Equal(o Card) bool {
	if c.ID != o.ID || c.Name != o.Name || c.Series != o.Series ||
		c.Notes != o.Notes || c.ImageRef != o.ImageRef ||
		c.BuyDate != o.BuyDate || !c.BuyPrice.Equal(o.BuyPrice) ||
		c.Sold != o.Sold || !c.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	if (c.SellDate == nil) != (o.SellDate == nil) || (c.SellPrice == nil) != (o.SellPrice == nil) {
		return false
	}
	if c.SellDate != nil && *c.SellDate != *o.SellDate {
		return false
	}
	if c.SellPrice != nil && !c.SellPrice.Equal(*o.SellPrice) {
		return false
	}
	return true
}

// jcard is the wire shape of a card record, shared by the store file and the
// snapshot format so that both round-trip field-for-field.
type jcard struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Series    string           `json:"setOrSeries,omitempty"`
	Notes     string           `json:"notes,omitempty"`
	ImageRef  string           `json:"imageUrl,omitempty"`
	BuyDate   Date             `json:"buyDate"`
	BuyPrice  decimal.Decimal  `json:"buyPrice"`
	Sold      bool             `json:"isSold"`
	SellDate  *Date            `json:"sellDate,omitempty"`
	SellPrice *decimal.Decimal `json:"sellPrice,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	j := jcard{
		ID:        c.ID,
		Name:      c.Name,
		Series:    c.Series,
		Notes:     c.Notes,
		ImageRef:  c.ImageRef,
		BuyDate:   c.BuyDate,
		BuyPrice:  c.BuyPrice.value,
		Sold:      c.Sold,
		SellDate:  c.SellDate,
		CreatedAt: c.CreatedAt,
	}
	if c.SellPrice != nil {
		j.SellPrice = &c.SellPrice.value
	}
	return json.Marshal(j)
}

func (c *Card) UnmarshalJSON(bytes []byte) error {
	var j jcard
	if err := json.Unmarshal(bytes, &j); err != nil {
		return err
	}
	*c = Card{
		ID:        j.ID,
		Name:      j.Name,
		Series:    j.Series,
		Notes:     j.Notes,
		ImageRef:  j.ImageRef,
		BuyDate:   j.BuyDate,
		BuyPrice:  Money{value: j.BuyPrice},
		Sold:      j.Sold,
		SellDate:  j.SellDate,
		CreatedAt: j.CreatedAt,
	}
	if j.SellPrice != nil {
		c.SellPrice = &Money{value: *j.SellPrice}
	}
	return nil
}

var _ json.Marshaler = (*Card)(nil)
var _ json.Unmarshaler = (*Card)(nil)

// ReadImageFile reads a local image file into the embedded representation
// stored in a card's ImageRef. It is a single-shot read, there is no
// streaming and no cancellation.
func ReadImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read image file %q: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
