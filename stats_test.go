package cardfolio

import "testing"

// sold returns a card sold on the given date for the given price.
func sold(name string, buy Date, buyPrice Money, sell Date, sellPrice Money) Card {
	c := NewCard(name, "", buy, buyPrice)
	return c.MarkSold(sell, sellPrice)
}

func TestNewSummary(t *testing.T) {
	unsoldCard := NewCard("held", "", MustParseDate("2024-01-01"), M(100, "USD"))
	soldCard := sold("flipped", MustParseDate("2024-01-02"), M(50, "USD"), MustParseDate("2024-02-01"), M(80, "USD"))

	s := NewSummary([]Card{unsoldCard, soldCard})

	if got, want := s.Count, 2; got != want {
		t.Errorf("Count = %d, want %d", got, want)
	}
	if got, want := s.SoldCount, 1; got != want {
		t.Errorf("SoldCount = %d, want %d", got, want)
	}
	if got, want := s.TotalInvested, M(150, "USD"); !got.Equal(want) {
		t.Errorf("TotalInvested = %s, want %s", got, want)
	}
	if got, want := s.UnsoldValue, M(100, "USD"); !got.Equal(want) {
		t.Errorf("UnsoldValue = %s, want %s", got, want)
	}
	if got, want := s.SaleProceeds, M(80, "USD"); !got.Equal(want) {
		t.Errorf("SaleProceeds = %s, want %s", got, want)
	}
	if got, want := s.NetProfit, M(30, "USD"); !got.Equal(want) {
		t.Errorf("NetProfit = %s, want %s", got, want)
	}
	if got, want := s.ROI, Percent(60); !got.Equal(want) {
		t.Errorf("ROI = %s, want %s", got, want)
	}
}

func TestNewSummary_EmptySet(t *testing.T) {
	s := NewSummary(nil)
	if s.Count != 0 || s.SoldCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", s.Count, s.SoldCount)
	}
	if !s.TotalInvested.IsZero() || !s.NetProfit.IsZero() {
		t.Errorf("sums not zero: invested=%s profit=%s", s.TotalInvested, s.NetProfit)
	}
	if !s.ROI.Equal(0) {
		t.Errorf("ROI = %s, want 0 when nothing was sold", s.ROI)
	}
}

func TestNewSummary_LossAndNegativeROI(t *testing.T) {
	c := sold("dud", MustParseDate("2024-01-01"), M(200, "USD"), MustParseDate("2024-03-01"), M(150, "USD"))

	s := NewSummary([]Card{c})
	if got, want := s.NetProfit, M(-50, "USD"); !got.Equal(want) {
		t.Errorf("NetProfit = %s, want %s", got, want)
	}
	if got, want := s.ROI, Percent(-25); !got.Equal(want) {
		t.Errorf("ROI = %s, want %s", got, want)
	}
}

func TestProfitHistory(t *testing.T) {
	// Input deliberately out of sell-date order.
	later := sold("b", MustParseDate("2024-01-01"), M(10, "USD"), MustParseDate("2024-03-02"), M(20, "USD"))
	earlier := sold("a", MustParseDate("2024-01-01"), M(10, "USD"), MustParseDate("2024-03-01"), M(15, "USD"))
	held := NewCard("held", "", MustParseDate("2024-01-01"), M(99, "USD"))

	points := ProfitHistory([]Card{later, held, earlier})
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	// Cumulative, ascending by sell date: +5 then +15.
	if got, want := points[0].Date, MustParseDate("2024-03-01"); got != want {
		t.Errorf("points[0].Date = %s, want %s", got, want)
	}
	if got, want := points[0].Profit, M(5, "USD"); !got.Equal(want) {
		t.Errorf("points[0].Profit = %s, want %s", got, want)
	}
	if got, want := points[1].Profit, M(15, "USD"); !got.Equal(want) {
		t.Errorf("points[1].Profit = %s, want %s", got, want)
	}
	if got, want := points[1].Proceeds, M(35, "USD"); !got.Equal(want) {
		t.Errorf("points[1].Proceeds = %s, want %s", got, want)
	}
}

func TestProfitHistory_SameDayCollapses(t *testing.T) {
	day := MustParseDate("2024-05-05")
	a := sold("a", MustParseDate("2024-01-01"), M(10, "USD"), day, M(12, "USD"))
	b := sold("b", MustParseDate("2024-01-01"), M(10, "USD"), day, M(18, "USD"))

	points := ProfitHistory([]Card{a, b})
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 point for same-day sales", len(points))
	}
	if got, want := points[0].Profit, M(10, "USD"); !got.Equal(want) {
		t.Errorf("Profit = %s, want %s", got, want)
	}
}

func TestFilter_Match(t *testing.T) {
	holo := NewCard("Charizard Holo", "Base Set", MustParseDate("2024-01-10"), M(300, "USD"))
	flipped := sold("Pikachu", MustParseDate("2024-01-05"), M(20, "USD"), MustParseDate("2024-02-20"), M(35, "USD"))
	flipped.Series = "Jungle"

	feb := NewRange(MustParseDate("2024-02-01"), MustParseDate("2024-02-28"))

	tests := []struct {
		name   string
		filter Filter
		card   Card
		want   bool
	}{
		{"empty filter matches", Filter{}, holo, true},
		{"search on name, case-insensitive", Filter{Search: "chariz"}, holo, true},
		{"search on series", Filter{Search: "jungle"}, flipped, true},
		{"search miss", Filter{Search: "mewtwo"}, holo, false},
		{"status sold", Filter{Status: StatusSold}, flipped, true},
		{"status sold excludes held", Filter{Status: StatusSold}, holo, false},
		{"status unsold", Filter{Status: StatusUnsold}, holo, true},
		{"range hits sell date", Filter{Range: &feb}, flipped, true},
		{"range misses buy date of held card", Filter{Range: &feb}, holo, false},
		{"search and status must both hold", Filter{Search: "pika", Status: StatusUnsold}, flipped, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.card); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortBy_Sort(t *testing.T) {
	cheapOld := NewCard("cheap old", "", MustParseDate("2023-01-01"), M(5, "USD"))
	midNew := NewCard("mid new", "", MustParseDate("2024-06-01"), M(50, "USD"))
	dearMid := NewCard("dear mid", "", MustParseDate("2024-01-01"), M(500, "USD"))

	tests := []struct {
		name string
		by   SortBy
		want []string // expected names in order
	}{
		{"date ascending", SortBuyDateAsc, []string{"cheap old", "dear mid", "mid new"}},
		{"date descending", SortBuyDateDesc, []string{"mid new", "dear mid", "cheap old"}},
		{"price ascending", SortPriceAsc, []string{"cheap old", "mid new", "dear mid"}},
		{"price descending", SortPriceDesc, []string{"dear mid", "mid new", "cheap old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := []Card{midNew, cheapOld, dearMid}
			tt.by.Sort(cards)
			for i, want := range tt.want {
				if cards[i].Name != want {
					t.Errorf("cards[%d] = %q, want %q", i, cards[i].Name, want)
				}
			}
		})
	}
}

func TestParseSortBy(t *testing.T) {
	if _, err := ParseSortBy("sideways"); err == nil {
		t.Error("expected an error for an unknown sort order")
	}
	by, err := ParseSortBy("")
	if err != nil || by != SortNewest {
		t.Errorf("ParseSortBy(\"\") = %v, %v, want default SortNewest", by, err)
	}
}
