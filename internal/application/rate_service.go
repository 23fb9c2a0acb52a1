package application

import (
	"context"
	"fmt"

	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/domain"
)

// fallbackDescriptions fills in descriptions for well-known rates that ship
// without one upstream. Keys are exact resolved names; no fuzzy matching.
var fallbackDescriptions = map[string]string{
	"Fully Flexible Rate":                        "Free cancellation up to 24 hours before check-in. Maximum flexibility for your travel plans.",
	"Non-Refundable":                             "Best available price with no cancellation. Ideal when your plans are set in stone.",
	"Breakfast Included - flexible cancellation": "Start every morning with a full breakfast buffet. Free cancellation up to 24 hours before arrival.",
	"Breakfast Included - non-refundable":        "Enjoy daily breakfast at our best non-refundable price. Great value for confirmed stays.",
	"Weekend Culinary Package":                   "A weekend getaway featuring curated dining experiences and local culinary tours.",
	"Direct booking":                             "Book directly with us for the best guaranteed rate and exclusive perks.",
	"Weekend deal":                               "Special weekend pricing for Friday through Sunday stays.",
	"Standard rate 7d cancellation fee":          "Standard rate with free cancellation up to 7 days before check-in.",
	"Multi-Day Rates":                            "Discounted pricing for extended stays of 3 nights or more.",
	"July Rates":                                 "Special seasonal pricing for July stays. Limited availability.",
	"Owner":                                      "Zero payment rate for property owners of apartments, rentals, and rooms.",
}

// RateService builds the bookable rate catalog from the upstream rate list.
type RateService struct {
	connector ConnectorAPI
	cfg       *config.Config
	featured  map[string]bool
}

// NewRateService creates a rate service with the configured curated set.
func NewRateService(connector ConnectorAPI, cfg *config.Config) *RateService {
	featured := make(map[string]bool, len(cfg.FeaturedRateIDs))
	for _, id := range cfg.FeaturedRateIDs {
		featured[id] = true
	}

	return &RateService{
		connector: connector,
		cfg:       cfg,
		featured:  featured,
	}
}

// ListRates returns the bookable rates, featured entries first. Upstream
// relative order is preserved within the featured and non-featured groups.
// Inactive and non-public rates never appear. Upstream failure propagates;
// no partial catalog is returned.
func (s *RateService) ListRates(ctx context.Context) ([]domain.RatePlan, error) {
	resp, err := s.connector.RatesGetAll(ctx, s.cfg.StaysServiceID)
	if err != nil {
		return nil, fmt.Errorf("error fetching rates: %w", err)
	}

	prefs := []string{s.cfg.PrimaryLocale}

	var featured, others []domain.RatePlan
	for _, r := range resp.Rates {
		if !r.IsActive || !r.IsPublic {
			continue
		}

		name := r.Name.Resolve(prefs, "")
		if name == "" {
			name = r.ShortName.Resolve(prefs, "")
		}
		if name == "" {
			name = "Unnamed Rate"
		}

		description := r.Description.Resolve(prefs, "")
		if description == "" {
			description = fallbackDescriptions[name]
		}

		rate := domain.RatePlan{
			ID:          r.ID,
			Name:        name,
			Description: description,
			Featured:    s.featured[r.ID],
		}

		if rate.Featured {
			featured = append(featured, rate)
		} else {
			others = append(others, rate)
		}
	}

	return append(featured, others...), nil
}
