package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ridelink/database/repository"
	"ridelink/models"
	searchSvc "ridelink/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fixedEstimator struct {
	estimate models.RouteEstimate
	err      error
}

func (f *fixedEstimator) Estimate(_ context.Context, _ models.EstimateRequest) (*models.RouteEstimate, error) {
	if f.err != nil {
		return nil, f.err
	}
	est := f.estimate
	return &est, nil
}

func newSearchRouter(est *fixedEstimator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &searchSvc.DefaultSearchService{
		Estimator: est,
		Catalog:   repository.NewMemoryVehicleCatalog(),
		Logger:    zap.NewNop(),
	}
	h := NewSearchHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/search", h.SearchVehicles)
	return r
}

func postSearchForm(r *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	est := &fixedEstimator{estimate: models.RouteEstimate{
		EstimatedDurationMinutes: 90,
		Explanation:              "Light evening traffic.",
	}}
	r := newSearchRouter(est)

	w := postSearchForm(r, map[string]string{
		"origin":      "110001",
		"destination": "400050",
		"capacity":    "4",
		"startTime":   "10:00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "" || resp.Message != "" {
		t.Fatalf("unexpected error/message: %q / %q", resp.Error, resp.Message)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("got %d results, want 5", len(resp.Results))
	}
	for _, result := range resp.Results {
		if result.Estimation == nil || result.Estimation.EstimatedDurationMinutes != 90 {
			t.Errorf("result is missing the shared estimate: %+v", result)
		}
	}
}

func TestSearchEndpointValidationError(t *testing.T) {
	est := &fixedEstimator{estimate: models.RouteEstimate{EstimatedDurationMinutes: 1, Explanation: "x"}}
	r := newSearchRouter(est)

	w := postSearchForm(r, map[string]string{
		"origin":      "1",
		"destination": "400050",
		"capacity":    "4",
		"startTime":   "10:00",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != searchSvc.MsgInvalidForm {
		t.Errorf("error = %q, want %q", resp.Error, searchSvc.MsgInvalidForm)
	}
	if len(resp.Results) != 0 {
		t.Errorf("got %d results, want 0", len(resp.Results))
	}
}

func TestSearchEndpointNoMatch(t *testing.T) {
	est := &fixedEstimator{estimate: models.RouteEstimate{
		EstimatedDurationMinutes: 130,
		Explanation:              "About two hours.",
	}}
	r := newSearchRouter(est)

	w := postSearchForm(r, map[string]string{
		"origin":      "110001",
		"destination": "400050",
		"capacity":    "20",
		"startTime":   "11:00",
	})

	var resp models.SearchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != searchSvc.MsgNoVehiclesMatched {
		t.Errorf("message = %q, want %q", resp.Message, searchSvc.MsgNoVehiclesMatched)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].ID != 0 {
		t.Errorf("estimation-only result has vehicle id %d", resp.Results[0].ID)
	}
}
