package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

var plans = endpoint[types.Plan, types.PlanPayload]{name: "plans", path: "/plans", key: "data"}

// ListPlans returns every plan.
func ListPlans(ctx context.Context, rc *resty.Client) ([]types.Plan, error) {
	return plans.list(ctx, rc)
}

// GetPlan retrieves a plan by ID.
func GetPlan(ctx context.Context, rc *resty.Client, id types.ID) (*types.Plan, error) {
	return plans.get(ctx, rc, id)
}

// CreatePlan creates a plan and returns the stored record.
func CreatePlan(ctx context.Context, rc *resty.Client, req types.PlanPayload) (*types.Plan, error) {
	return plans.create(ctx, rc, req)
}

// UpdatePlan replaces a plan's editable fields.
func UpdatePlan(ctx context.Context, rc *resty.Client, id types.ID, req types.PlanPayload) (*types.Plan, error) {
	return plans.update(ctx, rc, id, req)
}

// UpdatePlanStatus sets a plan active or inactive.
func UpdatePlanStatus(ctx context.Context, rc *resty.Client, id types.ID, status string) (*types.Plan, error) {
	return plans.setStatus(ctx, rc, id, status)
}

// DeletePlan removes a plan.
func DeletePlan(ctx context.Context, rc *resty.Client, id types.ID) error {
	return plans.delete(ctx, rc, id)
}
