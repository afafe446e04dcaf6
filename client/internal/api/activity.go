package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

// ListConversations returns every conversation with its messages.
func ListConversations(ctx context.Context, rc *resty.Client) ([]types.Conversation, error) {
	const op = "conversations.list"
	body, err := do(ctx, rc, op, http.MethodGet, "/conversations", nil)
	if err != nil {
		return nil, err
	}
	return decodeKeyed[types.Conversation](op, body, "conversations")
}

// ListNotifications returns every notification.
func ListNotifications(ctx context.Context, rc *resty.Client) ([]types.Notification, error) {
	const op = "notifications.list"
	body, err := do(ctx, rc, op, http.MethodGet, "/notifications", nil)
	if err != nil {
		return nil, err
	}
	return decodeKeyed[types.Notification](op, body, "notifications")
}
