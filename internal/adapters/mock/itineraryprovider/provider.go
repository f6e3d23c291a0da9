// Package itineraryprovider is the mock AI itinerary generator. Output is
// deterministic given (location, budget) apart from the assigned ID and
// generation timestamp.
package itineraryprovider

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/clock"
	"github.com/triplinker/triplinker-api/internal/ports/out/itineraryprovider"
)

// generateDelay is longer than the other providers so generation feels like
// actual model inference.
const generateDelay = 2500 * time.Millisecond

type Provider struct {
	sim latency.Simulator
	clk clock.Clock

	newItineraryID func() domain.ItineraryID
}

var _ itineraryprovider.Provider = (*Provider)(nil)

func NewProvider(sim latency.Simulator, clk clock.Clock) *Provider {
	return &Provider{
		sim: sim,
		clk: clk,
		newItineraryID: func() domain.ItineraryID {
			return domain.ItineraryID("itin_" + uuid.NewString())
		},
	}
}

// SetNewItineraryIDForTest overrides itinerary ID generation for deterministic tests.
// It should not be used in production code.
func (p *Provider) SetNewItineraryIDForTest(fn func() domain.ItineraryID) {
	if fn != nil {
		p.newItineraryID = fn
	}
}

func (p *Provider) GenerateItinerary(ctx context.Context, location string, budget float64) (domain.Itinerary, error) {
	if err := p.sim.Wait(ctx, generateDelay); err != nil {
		return domain.Itinerary{}, err
	}

	totalDays := tripLength(budget)
	dailyBudget := int(math.Floor(budget / float64(totalDays)))

	return domain.Itinerary{
		ID:            p.newItineraryID(),
		Location:      location,
		Budget:        budget,
		Currency:      "USD",
		TotalDays:     totalDays,
		EstimatedCost: int(math.Floor(budget * 0.92)),
		Summary: fmt.Sprintf(
			"A %d-day curated journey through %s optimized for value and authentic experiences. "+
				"Blending iconic landmarks with hidden local gems, this itinerary balances adventure, culture, and relaxation.",
			totalDays, location),
		Days: buildDays(location, dailyBudget, totalDays),
		Tips: []string{
			fmt.Sprintf("Book accommodations in the city center for %s to minimize transport costs.", location),
			"Download offline maps – saves data and works in areas with poor coverage.",
			"Best local dishes to try: ask your host for the neighborhood restaurant they love.",
			"Carry local currency for markets and small establishments.",
			"Shoulder season travel can save 20–35% on accommodation in most destinations.",
		},
		GeneratedAt: p.clk.Now(),
	}, nil
}

// tripLength maps the budget to a trip length in days.
func tripLength(budget float64) int {
	switch {
	case budget < 500:
		return 3
	case budget < 1500:
		return 5
	default:
		return 7
	}
}

// buildDays assembles the day plan from the three fixed templates (arrival,
// culture, adventure) and truncates to the requested length, floored at 3.
// With only 3 templates the output never exceeds 3 concrete days even when
// totalDays is 5 or 7; TotalDays still reports the full length. Known quirk
// of the reference generator, kept on purpose.
func buildDays(location string, dailyBudget, totalDays int) []domain.ItineraryDay {
	days := []domain.ItineraryDay{
		{
			Day:   1,
			Title: "Arrival & First Impressions",
			Activities: []domain.Activity{
				{Time: "2:00 PM", Description: fmt.Sprintf("Arrive in %s, hotel check-in", location), Type: domain.ActivityAccommodation, Cost: share(dailyBudget, 0.4)},
				{Time: "4:30 PM", Description: "Explore the city center on foot", Type: domain.ActivitySightseeing, Cost: 0},
				{Time: "7:00 PM", Description: "Welcome dinner at a local restaurant", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.25)},
				{Time: "9:00 PM", Description: "Evening stroll & sunset viewpoint", Type: domain.ActivityLeisure, Cost: 0},
			},
		},
		{
			Day:   2,
			Title: "Cultural Deep Dive",
			Activities: []domain.Activity{
				{Time: "8:00 AM", Description: "Local market breakfast & coffee", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.1)},
				{Time: "10:00 AM", Description: fmt.Sprintf("%s Historical Museum tour", location), Type: domain.ActivitySightseeing, Cost: share(dailyBudget, 0.12)},
				{Time: "1:00 PM", Description: "Street food lunch in the old quarter", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.1)},
				{Time: "3:00 PM", Description: "Local neighborhood walk & photography", Type: domain.ActivityLeisure, Cost: 0},
				{Time: "7:30 PM", Description: "Rooftop dinner with panoramic views", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.3)},
			},
		},
		{
			Day:   3,
			Title: "Adventure & Nature",
			Activities: []domain.Activity{
				{Time: "7:00 AM", Description: "Early morning guided hike or tour", Type: domain.ActivitySightseeing, Cost: share(dailyBudget, 0.2)},
				{Time: "12:00 PM", Description: "Picnic lunch with scenic views", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.08)},
				{Time: "3:00 PM", Description: "Optional spa or relaxation afternoon", Type: domain.ActivityLeisure, Cost: share(dailyBudget, 0.2)},
				{Time: "6:00 PM", Description: "Farewell dinner & local experience", Type: domain.ActivityFood, Cost: share(dailyBudget, 0.25)},
			},
		},
	}

	limit := totalDays
	if limit < 3 {
		limit = 3
	}
	if limit > len(days) {
		limit = len(days)
	}
	return days[:limit]
}

// share is the floored fraction of a day's budget assigned to one activity.
func share(dailyBudget int, fraction float64) int {
	return int(math.Floor(float64(dailyBudget) * fraction))
}
