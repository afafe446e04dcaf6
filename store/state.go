package store

import (
	"time"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// DefaultHeading is the page title before any page sets one.
const DefaultHeading = "Dashboard"

// State is an immutable snapshot of the container. Reducers return a new
// State; slices inside are never mutated after publication.
type State struct {
	Session       Session
	Users         Collection[client.User]
	Subscriptions Collection[client.Subscription]
	Plans         Collection[client.Plan]
	Services      Collection[client.PlanService]
	Conversations Collection[client.Conversation]
	Notifications Collection[client.Notification]
	Heading       string
}

// InitialState is the state of a freshly constructed store before hydration.
func InitialState() State {
	return State{Heading: DefaultHeading}
}

// Session is the authenticated operator.
type Session struct {
	Token   string
	UserID  client.ID
	Profile *client.User
	Loading bool
	Err     *client.Error
	// ExpiresAt is the token's exp claim when it is a readable JWT. It is
	// informational; the backend decides validity.
	ExpiresAt time.Time
}

// IsAuthenticated reports whether a non-empty token is held.
func (s Session) IsAuthenticated() bool { return s.Token != "" }

// ProfileLoaded reports whether the operator's profile has been fetched.
func (s Session) ProfileLoaded() bool { return s.Profile != nil }

// ErrMessage is the operator-facing error text, or "".
func (s Session) ErrMessage() string { return s.Err.Display("") }
