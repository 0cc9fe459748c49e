package models

// EstimateRequest describes a route for which a duration estimate is wanted.
type EstimateRequest struct {
	Origin            string `json:"origin"`
	Destination       string `json:"destination"`
	TimeOfTravel      string `json:"timeOfTravel"`                // "HH:MM"
	TrafficConditions string `json:"trafficConditions,omitempty"` // "heavy", "moderate" or "light"
}

// RouteEstimate is the structured answer produced by the estimation model.
type RouteEstimate struct {
	EstimatedDurationMinutes float64 `json:"estimatedDurationMinutes"`
	Explanation              string  `json:"explanation"`
}
