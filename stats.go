package cardfolio

import (
	"fmt"
	"sort"
	"strings"
)

// This file is the aggregation engine: pure functions over a given record
// set. Nothing here touches the store.

// Status filters records by their sold flag.
type Status int

const (
	StatusAll Status = iota
	StatusSold
	StatusUnsold
)

func (s Status) String() string {
	switch s {
	case StatusAll:
		return "all"
	case StatusSold:
		return "sold"
	case StatusUnsold:
		return "unsold"
	default:
		panic(fmt.Sprintf("unknown status %d", s))
	}
}

// ParseStatus parses a status filter name.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return StatusAll, nil
	case "sold":
		return StatusSold, nil
	case "unsold":
		return StatusUnsold, nil
	default:
		return StatusAll, fmt.Errorf("unknown status %q", s)
	}
}

// Filter selects a subset of records by text search, sold status and date
// window.
type Filter struct {
	// Search matches case-insensitively as a substring of the name or the
	// series label. Empty matches everything.
	Search string
	Status Status
	// Range bounds the record dates; nil means no date bound. A record is in
	// range when its buy date falls in the window or, when sold, its sell
	// date does: a record can appear for its purchase and, independently,
	// for its sale.
	Range *Range
}

// Match reports whether the card passes the filter.
func (f Filter) Match(c Card) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Series), q) {
			return false
		}
	}
	switch f.Status {
	case StatusSold:
		if !c.Sold {
			return false
		}
	case StatusUnsold:
		if c.Sold {
			return false
		}
	}
	if f.Range != nil {
		if f.Range.Contains(c.BuyDate) {
			return true
		}
		if c.Sold && c.SellDate != nil && f.Range.Contains(*c.SellDate) {
			return true
		}
		return false
	}
	return true
}

// Select returns the records passing the filter, preserving input order.
func (f Filter) Select(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// SortBy names an ordering of a record list.
type SortBy int

const (
	// SortNewest orders by creation time, newest first. This is the default
	// list ordering.
	SortNewest SortBy = iota
	SortBuyDateAsc
	SortBuyDateDesc
	SortPriceAsc
	SortPriceDesc
)

// ParseSortBy parses an ordering name.
func ParseSortBy(s string) (SortBy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest", "":
		return SortNewest, nil
	case "date", "date-asc":
		return SortBuyDateAsc, nil
	case "date-desc":
		return SortBuyDateDesc, nil
	case "price", "price-asc":
		return SortPriceAsc, nil
	case "price-desc":
		return SortPriceDesc, nil
	default:
		return SortNewest, fmt.Errorf("unknown sort order %q", s)
	}
}

// Sort orders cards in place. The sort is stable: records with equal keys
// keep their relative order.
func (by SortBy) Sort(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		switch by {
		case SortBuyDateAsc:
			return a.BuyDate.Before(b.BuyDate)
		case SortBuyDateDesc:
			return b.BuyDate.Before(a.BuyDate)
		case SortPriceAsc:
			return a.BuyPrice.LessThan(b.BuyPrice)
		case SortPriceDesc:
			return b.BuyPrice.LessThan(a.BuyPrice)
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// Summary holds the derived statistics over a record set.
type Summary struct {
	Count     int // records in the set
	SoldCount int // sold records in the set

	TotalInvested Money // sum of buy prices, sold and unsold alike
	UnsoldValue   Money // sum of buy prices of unsold records
	SaleProceeds  Money // sum of sell prices of sold records
	CostOfSold    Money // sum of buy prices of sold records
	NetProfit     Money // SaleProceeds - CostOfSold
	ROI           Percent
}

// NewSummary computes the summary statistics over the given record set.
// An empty set yields an all-zero summary, not an error. A sold record with
// a nil sell price is excluded from sale-derived sums, defensively.
func NewSummary(cards []Card) *Summary {
	s := &Summary{Count: len(cards)}
	for _, c := range cards {
		s.TotalInvested = s.TotalInvested.Add(c.BuyPrice)
		if !c.Sold {
			s.UnsoldValue = s.UnsoldValue.Add(c.BuyPrice)
			continue
		}
		s.SoldCount++
		if c.SellPrice == nil {
			continue
		}
		s.SaleProceeds = s.SaleProceeds.Add(*c.SellPrice)
		s.CostOfSold = s.CostOfSold.Add(c.BuyPrice)
	}
	s.NetProfit = s.SaleProceeds.Sub(s.CostOfSold)
	s.ROI = s.NetProfit.PercentOf(s.CostOfSold)
	return s
}

// ProfitPoint is one point of the cumulative realized-profit series.
type ProfitPoint struct {
	Date     Date
	Profit   Money // cumulative realized profit up to and including Date
	Proceeds Money // cumulative sale proceeds up to and including Date
}

// ProfitHistory builds the cumulative realized-profit series over the sold
// records of the given set, in ascending sell-date order regardless of input
// order. Multiple sales on the same day collapse into one point reflecting
// the total after all of that day's sales. Records without a sell date or
// sell price are skipped.
func ProfitHistory(cards []Card) []ProfitPoint {
	sold := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Sold && c.SellDate != nil && c.SellPrice != nil {
			sold = append(sold, c)
		}
	}
	sort.SliceStable(sold, func(i, j int) bool {
		return sold[i].SellDate.Before(*sold[j].SellDate)
	})

	var points []ProfitPoint
	var profit, proceeds Money
	for _, c := range sold {
		profit = profit.Add(c.Profit())
		proceeds = proceeds.Add(*c.SellPrice)
		if n := len(points); n > 0 && points[n-1].Date == *c.SellDate {
			points[n-1].Profit = profit
			points[n-1].Proceeds = proceeds
			continue
		}
		points = append(points, ProfitPoint{Date: *c.SellDate, Profit: profit, Proceeds: proceeds})
	}
	return points
}
