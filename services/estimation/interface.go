package estimation

import (
	"context"

	"ridelink/models"
)

// Estimator produces a duration estimate for a requested route.
type Estimator interface {
	Estimate(ctx context.Context, req models.EstimateRequest) (*models.RouteEstimate, error)
}
