package health

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/Akash8377/futuresoulmate-admin/localstate"
)

// Backend probes the admin API base URL. Any answer below 500 counts as
// reachable; the backend has no dedicated health route and rejects
// anonymous requests.
func Backend(baseURL string) Checker {
	rc := resty.New().SetBaseURL(baseURL)
	return CheckFunc{Label: "admin-api", Fn: func(ctx context.Context) error {
		resp, err := rc.R().SetContext(ctx).Head("/")
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("status %d", resp.StatusCode())
		}
		return nil
	}}
}

// Storage probes the session store with a read of the token key.
func Storage(s localstate.Storage) Checker {
	return CheckFunc{Label: "session-storage", Fn: func(ctx context.Context) error {
		_, _, err := s.Get(ctx, localstate.KeyToken)
		return err
	}}
}
