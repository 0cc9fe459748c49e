package search

import (
	"context"
	"errors"
	"testing"

	"ridelink/database/repository"
	"ridelink/models"

	"go.uber.org/zap"
)

// stubEstimator returns a canned estimate and records every invocation.
type stubEstimator struct {
	estimate *models.RouteEstimate
	err      error
	calls    []models.EstimateRequest
}

func (s *stubEstimator) Estimate(_ context.Context, req models.EstimateRequest) (*models.RouteEstimate, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.estimate, nil
}

func newTestService(est *stubEstimator) *DefaultSearchService {
	return &DefaultSearchService{
		Estimator: est,
		Catalog:   repository.NewMemoryVehicleCatalog(),
		Logger:    zap.NewNop(),
	}
}

func validForm() models.SearchForm {
	return models.SearchForm{
		Origin:      "110001",
		Destination: "400050",
		Capacity:    "4",
		StartTime:   "10:00",
	}
}

func TestSearchReturnsMatchingVehicles(t *testing.T) {
	est := &stubEstimator{estimate: &models.RouteEstimate{
		EstimatedDurationMinutes: 120,
		Explanation:              "The ride is estimated to take 2 hours based on moderate traffic.",
	}}
	svc := newTestService(est)

	resp := svc.Search(context.Background(), validForm())

	if resp.Error != "" {
		t.Fatalf("unexpected error: %q", resp.Error)
	}
	if resp.Message != "" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	// All five seeded vehicles have capacity >= 4.
	if len(resp.Results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(resp.Results))
	}
	for i, r := range resp.Results {
		if r.ID == 0 {
			t.Errorf("result %d has no vehicle id", i)
		}
		if r.Estimation != est.estimate {
			t.Errorf("result %d does not carry the shared estimate", i)
		}
		if r.StartTime != "10:00" {
			t.Errorf("result %d startTime = %q, want 10:00", i, r.StartTime)
		}
	}

	if len(est.calls) != 1 {
		t.Fatalf("estimator invoked %d times, want 1", len(est.calls))
	}
	call := est.calls[0]
	if call.Origin != "110001" || call.Destination != "400050" {
		t.Errorf("estimator got route %s -> %s", call.Origin, call.Destination)
	}
	if call.TimeOfTravel != "10:00" {
		t.Errorf("estimator got timeOfTravel %q, want 10:00", call.TimeOfTravel)
	}
	if call.TrafficConditions != "moderate" {
		t.Errorf("estimator got trafficConditions %q, want moderate", call.TrafficConditions)
	}
}

func TestSearchResultCountMatchesCapacityFilter(t *testing.T) {
	est := &stubEstimator{estimate: &models.RouteEstimate{EstimatedDurationMinutes: 45, Explanation: "ok"}}
	svc := newTestService(est)

	form := validForm()
	form.Capacity = "6"
	resp := svc.Search(context.Background(), form)

	// Seeded capacities are 4, 6, 10, 4, 7; three vehicles hold 6 or more.
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	// Catalog order is preserved.
	wantIDs := []int{2, 3, 5}
	for i, r := range resp.Results {
		if r.ID != wantIDs[i] {
			t.Errorf("result %d id = %d, want %d", i, r.ID, wantIDs[i])
		}
	}
}

func TestSearchNoMatchReturnsEstimationOnly(t *testing.T) {
	est := &stubEstimator{estimate: &models.RouteEstimate{
		EstimatedDurationMinutes: 130,
		Explanation:              "The ride is estimated to take 2 hours and 10 minutes.",
	}}
	svc := newTestService(est)

	form := validForm()
	form.Capacity = "20"
	resp := svc.Search(context.Background(), form)

	if resp.Message != MsgNoVehiclesMatched {
		t.Fatalf("message = %q, want %q", resp.Message, MsgNoVehiclesMatched)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("expected exactly 1 estimation-only result, got %d", len(resp.Results))
	}
	r := resp.Results[0]
	if r.ID != 0 || r.Type != "" || r.Driver != nil {
		t.Errorf("estimation-only result carries vehicle identity: %+v", r)
	}
	if r.Estimation != est.estimate {
		t.Errorf("estimation-only result does not carry the estimate")
	}
	if resp.Error != "" {
		t.Errorf("unexpected error: %q", resp.Error)
	}
}

func TestSearchInvalidInputSkipsEstimator(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.SearchForm)
	}{
		{"short origin", func(f *models.SearchForm) { f.Origin = "1" }},
		{"short destination", func(f *models.SearchForm) { f.Destination = "ab" }},
		{"non-numeric capacity", func(f *models.SearchForm) { f.Capacity = "four" }},
		{"zero capacity", func(f *models.SearchForm) { f.Capacity = "0" }},
		{"negative capacity", func(f *models.SearchForm) { f.Capacity = "-2" }},
		{"empty start time", func(f *models.SearchForm) { f.StartTime = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est := &stubEstimator{estimate: &models.RouteEstimate{EstimatedDurationMinutes: 10, Explanation: "x"}}
			svc := newTestService(est)

			form := validForm()
			tc.mutate(&form)
			resp := svc.Search(context.Background(), form)

			if resp.Error != MsgInvalidForm {
				t.Errorf("error = %q, want %q", resp.Error, MsgInvalidForm)
			}
			if len(resp.Results) != 0 {
				t.Errorf("expected empty results, got %d", len(resp.Results))
			}
			if len(est.calls) != 0 {
				t.Errorf("estimator was invoked %d times for invalid input", len(est.calls))
			}
		})
	}
}

func TestSearchEstimatorFailure(t *testing.T) {
	est := &stubEstimator{err: errors.New("model unavailable")}
	svc := newTestService(est)

	resp := svc.Search(context.Background(), validForm())

	if resp.Error != MsgEstimationFailed {
		t.Fatalf("error = %q, want %q", resp.Error, MsgEstimationFailed)
	}
	if len(resp.Results) != 0 {
		t.Fatalf("expected empty results, got %d", len(resp.Results))
	}
}
