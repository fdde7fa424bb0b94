package lookup

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"hireboard/internal/refdata"
	"hireboard/pkg/models"
)

// Result is the bounded outcome of one city search
type Result struct {
	Options   []models.Option
	Truncated bool
}

// CityResolver answers city searches after a fixed delay, matching the async
// behavior of the reference lookup. A generation counter makes the latest
// request authoritative: a search that has been superseded while waiting
// resolves to ErrSuperseded instead of delivering stale results.
type CityResolver struct {
	cities     []refdata.City
	delay      time.Duration
	maxResults int
	generation atomic.Uint64
}

// NewCityResolver creates a resolver over the static city list
func NewCityResolver(cities []refdata.City, delay time.Duration, maxResults int) *CityResolver {
	if maxResults <= 0 {
		maxResults = 100
	}
	return &CityResolver{
		cities:     cities,
		delay:      delay,
		maxResults: maxResults,
	}
}

// Search filters the city list by case-insensitive substring after the
// configured delay. An empty query matches every city, capped at maxResults.
func (r *CityResolver) Search(ctx context.Context, query string) (Result, error) {
	gen := r.generation.Add(1)

	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	if r.generation.Load() != gen {
		return Result{}, ErrSuperseded
	}

	needle := strings.ToLower(query)
	options := make([]models.Option, 0, r.maxResults)
	truncated := false
	for _, city := range r.cities {
		if !strings.Contains(strings.ToLower(city.Name), needle) {
			continue
		}
		if len(options) == r.maxResults {
			truncated = true
			break
		}
		options = append(options, models.Option{Value: city.ID, Label: city.Name})
	}

	return Result{Options: options, Truncated: truncated}, nil
}
