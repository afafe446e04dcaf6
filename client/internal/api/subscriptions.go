package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

var subscriptions = endpoint[types.Subscription, types.SubscriptionPayload]{name: "subscriptions", path: "/subscriptions", key: "data"}

// ListSubscriptions returns every subscription.
func ListSubscriptions(ctx context.Context, rc *resty.Client) ([]types.Subscription, error) {
	return subscriptions.list(ctx, rc)
}

// ListUserSubscriptions returns the subscriptions of one member.
func ListUserSubscriptions(ctx context.Context, rc *resty.Client, userID types.ID) ([]types.Subscription, error) {
	const op = "subscriptions.list_user"
	if err := requireID(op, userID); err != nil {
		return nil, err
	}
	body, err := do(ctx, rc, op, http.MethodGet, idPath("/subscriptions/user", userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeKeyed[types.Subscription](op, body, "data")
}

// GetSubscription retrieves a subscription by ID.
func GetSubscription(ctx context.Context, rc *resty.Client, id types.ID) (*types.Subscription, error) {
	return subscriptions.get(ctx, rc, id)
}

// CreateSubscription creates a subscription.
func CreateSubscription(ctx context.Context, rc *resty.Client, req types.SubscriptionPayload) (*types.Subscription, error) {
	return subscriptions.create(ctx, rc, req)
}

// UpdateSubscription replaces a subscription's editable fields.
func UpdateSubscription(ctx context.Context, rc *resty.Client, id types.ID, req types.SubscriptionPayload) (*types.Subscription, error) {
	return subscriptions.update(ctx, rc, id, req)
}

// DeleteSubscription removes a subscription.
func DeleteSubscription(ctx context.Context, rc *resty.Client, id types.ID) error {
	return subscriptions.delete(ctx, rc, id)
}
