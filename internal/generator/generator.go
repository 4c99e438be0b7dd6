package generator

import (
	"context"

	"travelgateway/internal/domain/models"
)

// ContentGenerator produces the natural-language content the gateway serves.
// Implementations report failures as errors; the gateway surfaces them as-is.
type ContentGenerator interface {
	DescribeCity(ctx context.Context, city string) (string, error)
	ListActivities(ctx context.Context, city string) ([]string, error)
	// GeneratePlan returns an opaque plan value. A nil or empty result
	// means the generator could not produce a plan.
	GeneratePlan(ctx context.Context, req models.PlanRequest) (any, error)
}
