package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/Akash8377/futuresoulmate-admin/client/internal/types"
)

func TestListConversationsAndNotifications(t *testing.T) {
	t.Parallel()
	rc := stub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/conversations":
			jsonReply(http.StatusOK, `{"conversations":[{"id":1,"user1_id":1,"user2_id":2,"messages":"[]"}]}`)(w, r)
		case "/notifications":
			jsonReply(http.StatusOK, `{"notifications":[{"id":4,"type":"connect","status":"pending","is_read":0}]}`)(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	cs, err := ListConversations(context.Background(), rc)
	if err != nil || len(cs) != 1 || len(cs[0].Messages) != 0 {
		t.Fatalf("ListConversations unexpected: got=%+v err=%v", cs, err)
	}
	ns, err := ListNotifications(context.Background(), rc)
	if err != nil || len(ns) != 1 || ns[0].IsRead || ns[0].Type != "connect" {
		t.Fatalf("ListNotifications unexpected: got=%+v err=%v", ns, err)
	}
}

func TestSubscriptionsForUser(t *testing.T) {
	t.Parallel()
	rc := stub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subscriptions/user/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		jsonReply(http.StatusOK, `{"data":[{"id":1,"user_id":7,"plan_name":"Gold","price":"10.50","status":"active","features":"[\"chat\"]"}]}`)(w, r)
	})
	got, err := ListUserSubscriptions(context.Background(), rc, types.ID("7"))
	if err != nil || len(got) != 1 || got[0].Price != 10.5 || len(got[0].Features) != 1 {
		t.Fatalf("ListUserSubscriptions unexpected: got=%+v err=%v", got, err)
	}
}
