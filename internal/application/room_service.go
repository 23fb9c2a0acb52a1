package application

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Maxito7/booking_gateway/internal/config"
	"github.com/Maxito7/booking_gateway/internal/domain"
)

// RoomService builds guest-facing room views: it normalizes the hotel's room
// categories and, when a stay is given, merges in availability and pricing.
type RoomService struct {
	engine BookingEngineAPI
	cfg    *config.Config
}

// NewRoomService creates a room service bound to the configured hotel.
func NewRoomService(engine BookingEngineAPI, cfg *config.Config) *RoomService {
	return &RoomService{
		engine: engine,
		cfg:    cfg,
	}
}

// ValidateStayQuery checks a date range and occupancy. Both timestamps must
// be RFC 3339 instants with start before end, adults at least 1 and children
// non-negative.
func ValidateStayQuery(q *domain.StayQuery) error {
	start, err := time.Parse(time.RFC3339, q.StartUTC)
	if err != nil {
		return domain.NewValidationError("startUtc", "must be an RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, q.EndUTC)
	if err != nil {
		return domain.NewValidationError("endUtc", "must be an RFC 3339 timestamp")
	}
	if !start.Before(end) {
		return domain.NewValidationError("startUtc", "must be before endUtc")
	}
	if q.Adults < 1 {
		return domain.NewValidationError("adults", "must be at least 1")
	}
	if q.Children < 0 {
		return domain.NewValidationError("children", "must not be negative")
	}

	return nil
}

// ListRooms returns every room category in upstream order, joined with
// availability when a stay is given. The metadata fetch and the availability
// fetch are independent, so they run concurrently; only the final join needs
// both.
func (s *RoomService) ListRooms(ctx context.Context, stay *domain.StayQuery) ([]domain.RoomView, error) {
	categories, availability, err := s.fetchBoth(ctx, stay)
	if err != nil {
		return nil, err
	}

	rooms := make([]domain.RoomView, 0, len(categories))
	for _, cat := range categories {
		rooms = append(rooms, joinRoomView(cat, availability))
	}

	return rooms, nil
}

// GetRoom returns the view for one room category, or domain.ErrNotFound when
// the id is not part of the current catalog.
func (s *RoomService) GetRoom(ctx context.Context, roomID string, stay *domain.StayQuery) (*domain.RoomView, error) {
	categories, availability, err := s.fetchBoth(ctx, stay)
	if err != nil {
		return nil, err
	}

	for _, cat := range categories {
		if cat.ID == roomID {
			view := joinRoomView(cat, availability)
			return &view, nil
		}
	}

	return nil, fmt.Errorf("room %s: %w", roomID, domain.ErrNotFound)
}

func (s *RoomService) fetchBoth(ctx context.Context, stay *domain.StayQuery) ([]domain.RoomCategory, map[string]domain.Availability, error) {
	if stay != nil {
		if err := ValidateStayQuery(stay); err != nil {
			return nil, nil, err
		}
	}

	var (
		categories    []domain.RoomCategory
		categoriesErr error
		availability  map[string]domain.Availability
		wg            sync.WaitGroup
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		categories, categoriesErr = s.fetchCategories(ctx)
	}()

	if stay != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			availability = s.fetchAvailability(ctx, stay)
		}()
	}

	wg.Wait()

	if categoriesErr != nil {
		return nil, nil, categoriesErr
	}

	return categories, availability, nil
}

// fetchCategories normalizes the hotel metadata into display-ready room
// categories in upstream order. Failures propagate; no category is made up.
func (s *RoomService) fetchCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	resp, err := s.engine.HotelsGet(ctx, s.cfg.HotelID)
	if err != nil {
		return nil, fmt.Errorf("error fetching hotel metadata: %w", err)
	}

	prefs := s.cfg.LocalePreferences()

	categories := make([]domain.RoomCategory, 0, len(resp.RoomCategories))
	for _, cat := range resp.RoomCategories {
		imageURLs := make([]string, 0, len(cat.ImageIDs))
		for _, id := range cat.ImageIDs {
			imageURLs = append(imageURLs, s.cfg.ImageBaseURL+"/"+id)
		}

		var primaryImage *string
		if len(imageURLs) > 0 {
			primaryImage = &imageURLs[0]
		}

		spaceType := cat.SpaceType
		if spaceType == "" {
			spaceType = "Room"
		}

		categories = append(categories, domain.RoomCategory{
			ID:            cat.ID,
			Name:          cat.Name.Resolve(prefs, "Unnamed"),
			Description:   cat.Description.Resolve(prefs, ""),
			ImageURL:      primaryImage,
			ImageURLs:     imageURLs,
			BedCount:      cat.NormalBedCount,
			ExtraBedCount: cat.ExtraBedCount,
			SpaceType:     spaceType,
		})
	}

	return categories, nil
}

// fetchAvailability merges availability and pricing for the stay into an
// id-keyed map. Pricing takes the first offer of the first occupancy entry,
// preferring the primary currency over the secondary one. This is the one
// upstream call whose failure is absorbed: pricing is an enhancement, not a
// precondition for listing rooms, so any error degrades to an empty result.
func (s *RoomService) fetchAvailability(ctx context.Context, stay *domain.StayQuery) map[string]domain.Availability {
	resp, err := s.engine.HotelsGetAvailability(
		ctx,
		s.cfg.HotelID,
		s.cfg.ConfigurationID,
		stay.StartUTC,
		stay.EndUTC,
		stay.Adults,
		stay.Children,
	)
	if err != nil {
		log.Printf("availability fetch degraded, listing rooms without pricing: %v", err)
		return nil
	}

	availability := make(map[string]domain.Availability, len(resp.RoomCategoryAvailabilities))
	for _, rca := range resp.RoomCategoryAvailabilities {
		entry := domain.Availability{AvailableCount: rca.AvailableRoomCount}

		// First offer wins; later occupancy entries and pricing options
		// are intentionally not considered.
		if len(rca.RoomOccupancyAvailabilities) > 0 && len(rca.RoomOccupancyAvailabilities[0].Pricing) > 0 {
			total := rca.RoomOccupancyAvailabilities[0].Pricing[0].Price.Total
			if v, ok := total[s.cfg.PrimaryCurrency]; ok {
				price := v
				entry.PriceTotal = &price
			} else if v, ok := total[s.cfg.SecondaryCurrency]; ok {
				price := v
				entry.PriceTotal = &price
			}
		}

		availability[rca.RoomCategoryID] = entry
	}

	return availability
}

// joinRoomView joins one category with its availability entry. A missing
// entry means "unknown", which keeps both pointers nil; an entry with zero
// rooms means "sold out" and yields available = 0. Callers must not conflate
// the two.
func joinRoomView(cat domain.RoomCategory, availability map[string]domain.Availability) domain.RoomView {
	view := domain.RoomView{RoomCategory: cat}

	if entry, ok := availability[cat.ID]; ok {
		count := entry.AvailableCount
		view.Available = &count
		view.TotalPrice = entry.PriceTotal
	}

	return view
}
