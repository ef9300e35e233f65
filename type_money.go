package cardfolio

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents an exact monetary amount.
//
// The value is kept as a decimal to keep sums and profits exact. The currency
// is display-only: the tracker never converts between currencies, it only
// formats amounts in the currency the whole collection is priced in.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a numeric value and a currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported money value %T", value))
	}
}

// currency returns the money's full currency, defaulting to USD for display.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = money.USD
	}
	// to get a never nil currency call the Money constructor
	return *money.New(0, cur).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a
// sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string      { return m.cur }
func (m Money) Equal(n Money) bool    { return m.value.Equal(n.value) }
func (m Money) IsZero() bool          { return m.value.IsZero() }
func (m Money) IsNegative() bool      { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money     { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money     { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// In returns the same amount carrying the given display currency. Stored
// amounts have no currency of their own, so rendering paths use In to apply
// the configured one.
func (m Money) In(currency string) Money { return Money{value: m.value, cur: currency} }

// PercentOf returns m as a percentage of n (m/n*100), or 0 when n is zero.
func (m Money) PercentOf(n Money) Percent {
	if n.value.IsZero() {
		return 0
	}
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	return a.cur
}

// MarshalJSON persists the amount as a bare number. The display currency is
// configuration, not data, and is not written to data files.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }

// UnmarshalJSON reads a bare number amount.
func (m *Money) UnmarshalJSON(bytes []byte) error {
	var v decimal.Decimal
	if err := json.Unmarshal(bytes, &v); err != nil {
		return fmt.Errorf("invalid money amount %q: %w", string(bytes), err)
	}
	m.value = v
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
