package itineraryprovider

import (
	"context"
	"testing"
	"time"

	memclock "github.com/triplinker/triplinker-api/internal/adapters/memory/clock"
	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
)

func newTestProvider() *Provider {
	p := NewProvider(latency.NewSimulator(0), memclock.NewManualClock(time.Unix(1000, 0).UTC()))
	p.SetNewItineraryIDForTest(func() domain.ItineraryID { return "itin_test" })
	return p
}

func TestGenerateItinerary_BudgetTiers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		budget    float64
		totalDays int
	}{
		{100, 3},
		{499.99, 3},
		{500, 5},
		{1499, 5},
		{1500, 7},
		{10000, 7},
	}
	p := newTestProvider()
	for _, tc := range cases {
		it, err := p.GenerateItinerary(context.Background(), "Lisbon", tc.budget)
		if err != nil {
			t.Fatalf("budget=%g err=%v", tc.budget, err)
		}
		if it.TotalDays != tc.totalDays {
			t.Fatalf("budget=%g totalDays=%d, want %d", tc.budget, it.TotalDays, tc.totalDays)
		}
	}
}

func TestGenerateItinerary_CostMath(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	it, err := p.GenerateItinerary(context.Background(), "Lisbon", 300)
	if err != nil {
		t.Fatalf("err=%v", err)
	}

	// floor(300 * 0.92) = 276; daily budget floor(300/3) = 100.
	if it.EstimatedCost != 276 {
		t.Fatalf("estimatedCost=%d, want 276", it.EstimatedCost)
	}
	if it.Currency != "USD" || it.Budget != 300 {
		t.Fatalf("itinerary=%+v", it)
	}

	// Day 1: 40% accommodation, free walk, 25% dinner, free stroll.
	day1 := it.Days[0]
	wantCosts := []int{40, 0, 25, 0}
	for i, a := range day1.Activities {
		if a.Cost != wantCosts[i] {
			t.Fatalf("day1 activity %d cost=%d, want %d", i, a.Cost, wantCosts[i])
		}
	}
	if day1.Activities[0].Type != domain.ActivityAccommodation {
		t.Fatalf("day1 activity 0 type=%q", day1.Activities[0].Type)
	}
}

func TestGenerateItinerary_DayPlanCappedAtTemplates(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	it, err := p.GenerateItinerary(context.Background(), "Tokyo", 2000)
	if err != nil {
		t.Fatalf("err=%v", err)
	}

	// A 7-day trip still gets the 3 concrete template days; TotalDays keeps
	// reporting the full length.
	if it.TotalDays != 7 {
		t.Fatalf("totalDays=%d", it.TotalDays)
	}
	if len(it.Days) != 3 {
		t.Fatalf("len(days)=%d, want 3", len(it.Days))
	}
	for i, d := range it.Days {
		if d.Day != i+1 {
			t.Fatalf("days out of order: %+v", d)
		}
	}
}

func TestGenerateItinerary_Determinism(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	a, err := p.GenerateItinerary(context.Background(), "Lisbon", 450)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	b, err := p.GenerateItinerary(context.Background(), "Lisbon", 450)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if a.Summary != b.Summary || len(a.Days) != len(b.Days) || a.EstimatedCost != b.EstimatedCost {
		t.Fatalf("generation not deterministic:\n%+v\n%+v", a, b)
	}
	if a.GeneratedAt != time.Unix(1000, 0).UTC() {
		t.Fatalf("generatedAt=%v", a.GeneratedAt)
	}
	if len(a.Tips) != 5 {
		t.Fatalf("tips=%v", a.Tips)
	}
}

func TestGenerateItinerary_ContextCancelled(t *testing.T) {
	t.Parallel()

	p := NewProvider(latency.NewSimulator(1), memclock.NewManualClock(time.Unix(1000, 0).UTC()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.GenerateItinerary(ctx, "Lisbon", 450); err == nil {
		t.Fatalf("expected context error")
	}
}
