package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

var services = endpoint[types.PlanService, types.ServicePayload]{name: "services", path: "/plan-services", key: "data"}

// ListServices returns every plan service.
func ListServices(ctx context.Context, rc *resty.Client) ([]types.PlanService, error) {
	return services.list(ctx, rc)
}

// GetService retrieves a plan service by ID.
func GetService(ctx context.Context, rc *resty.Client, id types.ID) (*types.PlanService, error) {
	return services.get(ctx, rc, id)
}

// CreateService creates a plan service.
func CreateService(ctx context.Context, rc *resty.Client, req types.ServicePayload) (*types.PlanService, error) {
	return services.create(ctx, rc, req)
}

// UpdateService replaces a plan service's editable fields.
func UpdateService(ctx context.Context, rc *resty.Client, id types.ID, req types.ServicePayload) (*types.PlanService, error) {
	return services.update(ctx, rc, id, req)
}

// UpdateServiceStatus sets a plan service active or inactive.
func UpdateServiceStatus(ctx context.Context, rc *resty.Client, id types.ID, status string) (*types.PlanService, error) {
	return services.setStatus(ctx, rc, id, status)
}

// DeleteService removes a plan service.
func DeleteService(ctx context.Context, rc *resty.Client, id types.ID) error {
	return services.delete(ctx, rc, id)
}
