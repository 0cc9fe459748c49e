// File: ridelink/services/search/search.go
package search

import (
	"context"
	"strconv"
	"strings"

	"ridelink/database/repository"
	"ridelink/models"
	"ridelink/services/estimation"

	"go.uber.org/zap"
)

// Fixed user-facing messages. The transport layer returns these verbatim.
const (
	MsgInvalidForm       = "Invalid form data. Please check your inputs."
	MsgEstimationFailed  = "Failed to get ride estimation. Please try again later."
	MsgNoVehiclesMatched = "No vehicles found matching your criteria, but we can still estimate the duration."
)

// Traffic data integration is out of scope, so every estimate assumes
// moderate traffic.
const defaultTrafficConditions = "moderate"

// SearchService runs the vehicle search pipeline.
type SearchService interface {
	Search(ctx context.Context, form models.SearchForm) *models.SearchResponse
}

// DefaultSearchService validates the raw form, requests an estimate and
// filters the catalog by capacity. It holds no state of its own.
type DefaultSearchService struct {
	Estimator estimation.Estimator
	Catalog   repository.VehicleCatalog
	Logger    *zap.Logger
}

// searchQuery is the typed, validated form of a search request.
type searchQuery struct {
	Origin      string
	Destination string
	Capacity    int
	StartTime   string
}

// Search executes the full pipeline. All failure modes are folded into the
// response; the caller always receives a well-formed SearchResponse.
func (s *DefaultSearchService) Search(ctx context.Context, form models.SearchForm) *models.SearchResponse {
	query, err := parseSearchForm(form)
	if err != nil {
		s.Logger.Debug("search rejected", zap.Error(err))
		return &models.SearchResponse{Error: MsgInvalidForm, Results: []models.SearchResult{}}
	}

	estimate, err := s.Estimator.Estimate(ctx, models.EstimateRequest{
		Origin:            query.Origin,
		Destination:       query.Destination,
		TimeOfTravel:      query.StartTime,
		TrafficConditions: defaultTrafficConditions,
	})
	if err != nil {
		s.Logger.Error("route estimation failed", zap.Error(err))
		return &models.SearchResponse{Error: MsgEstimationFailed, Results: []models.SearchResult{}}
	}

	available := s.Catalog.FilterByCapacity(query.Capacity)
	if len(available) == 0 {
		return &models.SearchResponse{
			Message: MsgNoVehiclesMatched,
			Results: []models.SearchResult{{Estimation: estimate}},
		}
	}

	results := make([]models.SearchResult, 0, len(available))
	for _, v := range available {
		driver := v.Driver
		results = append(results, models.SearchResult{
			ID:         v.ID,
			Type:       v.Type,
			Capacity:   v.Capacity,
			Driver:     &driver,
			ImageURL:   v.ImageURL,
			Estimation: estimate,
			StartTime:  query.StartTime,
		})
	}
	return &models.SearchResponse{Results: results}
}

// parseSearchForm is the validation boundary between untrusted form input and
// the typed query the pipeline operates on.
func parseSearchForm(form models.SearchForm) (*searchQuery, error) {
	origin := strings.TrimSpace(form.Origin)
	if len(origin) < 3 {
		return nil, NewValidationError("origin must be at least 3 characters")
	}
	destination := strings.TrimSpace(form.Destination)
	if len(destination) < 3 {
		return nil, NewValidationError("destination must be at least 3 characters")
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(form.Capacity))
	if err != nil || capacity < 1 {
		return nil, NewValidationError("capacity must be an integer of at least 1")
	}
	startTime := strings.TrimSpace(form.StartTime)
	if startTime == "" {
		return nil, NewValidationError("start time is required")
	}

	return &searchQuery{
		Origin:      origin,
		Destination: destination,
		Capacity:    capacity,
		StartTime:   startTime,
	}, nil
}
