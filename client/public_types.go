package client

import "github.com/Akash8377/futuresoulmate-admin/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	Credentials         = types.Credentials
	ProfileUpdate       = types.ProfileUpdate
	PlanPayload         = types.PlanPayload
	PlanServiceCount    = types.PlanServiceCount
	ServicePayload      = types.ServicePayload
	SubscriptionPayload = types.SubscriptionPayload

	// Domain entities
	Entity            = types.Entity
	ID                = types.ID
	Text              = types.Text
	Amount            = types.Amount
	Flag              = types.Flag
	StringList        = types.StringList
	User              = types.User
	FamilyDetails     = types.FamilyDetails
	PartnerPreference = types.PartnerPreference
	Plan              = types.Plan
	PlanServiceRef    = types.PlanServiceRef
	PlanService       = types.PlanService
	Subscription      = types.Subscription
	Conversation      = types.Conversation
	Message           = types.Message
	Messages          = types.Messages
	Notification      = types.Notification

	// Responses
	LoginResult = types.LoginResult
)

// Status values for plans and services.
const (
	StatusActive   = types.StatusActive
	StatusInactive = types.StatusInactive
)

var (
	// Validate checks a payload's struct tags locally.
	Validate = types.Validate
	// TrimCredentials strips whitespace from login fields.
	TrimCredentials = types.TrimCredentials
	// ValidateStatus accepts only "active" and "inactive".
	ValidateStatus = types.ValidateStatus
	// ToggleStatus flips active and inactive.
	ToggleStatus = types.ToggleStatus

	PlanPayloadFrom         = types.PlanPayloadFrom
	ServicePayloadFrom      = types.ServicePayloadFrom
	SubscriptionPayloadFrom = types.SubscriptionPayloadFrom
)
