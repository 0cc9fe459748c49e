package models

// SearchForm carries the raw, still-untyped form fields of a vehicle search.
// Validation and coercion happen in the search service, not at the transport edge.
type SearchForm struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	Capacity    string `form:"capacity"`
	StartTime   string `form:"startTime"`
}

// SearchResult is a catalog vehicle paired with the estimate for the requested
// route. When no vehicle matched the requested capacity a single estimation-only
// result is returned instead; in that case the vehicle fields are absent.
type SearchResult struct {
	ID         int            `json:"id,omitempty"`
	Type       string         `json:"type,omitempty"`
	Capacity   int            `json:"capacity,omitempty"`
	Driver     *Driver        `json:"driver,omitempty"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	Estimation *RouteEstimate `json:"estimation"`
	StartTime  string         `json:"startTime,omitempty"`
}

// SearchResponse is the full outcome of one search. Exactly one of Error or
// Message may be set; Results is never nil.
type SearchResponse struct {
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
	Results []SearchResult `json:"results"`
}
