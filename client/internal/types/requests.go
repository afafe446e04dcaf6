package types

// ------------------------------
// Request Types
// ------------------------------

// Status values accepted by the status endpoints of plans and services.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Credentials are the admin login fields.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate holds the editable fields of the admin account.
type ProfileUpdate struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty"`
}

// PlanServiceCount attaches a service to a plan with a per-plan count.
type PlanServiceCount struct {
	ID    ID  `json:"id" validate:"required"`
	Count int `json:"count" validate:"min=0"`
}

// PlanPayload is the body of plan create and update.
type PlanPayload struct {
	Name        string             `json:"name" validate:"required"`
	Price       Amount             `json:"price" validate:"required"`
	Description string             `json:"description"`
	Services    []PlanServiceCount `json:"services" validate:"dive"`
	Status      string             `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// PlanPayloadFrom builds an edit form from an existing plan.
func PlanPayloadFrom(p Plan) PlanPayload {
	services := make([]PlanServiceCount, 0, len(p.Services))
	for _, s := range p.Services {
		services = append(services, PlanServiceCount{ID: s.ID, Count: s.ServiceCount})
	}
	return PlanPayload{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Services:    services,
		Status:      p.Status,
	}
}

// ServicePayload is the body of plan-service create and update.
type ServicePayload struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ServicePayloadFrom builds an edit form from an existing service.
func ServicePayloadFrom(s PlanService) ServicePayload {
	return ServicePayload{Name: s.Name, Description: s.Description, Status: s.Status}
}

// SubscriptionPayload is the body of subscription create and update.
type SubscriptionPayload struct {
	UserID       ID       `json:"user_id" validate:"required"`
	PlanName     string   `json:"plan_name" validate:"required"`
	Price        Amount   `json:"price" validate:"required"`
	BillingCycle string   `json:"billing_cycle,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Status       string   `json:"status,omitempty" validate:"omitempty,oneof=active inactive canceled expired"`
	Features     []string `json:"features"`
}

// SubscriptionPayloadFrom builds an edit form from an existing subscription.
// Dates are trimmed to their YYYY-MM-DD prefix.
func SubscriptionPayloadFrom(s Subscription) SubscriptionPayload {
	features := append([]string(nil), s.Features...)
	if features == nil {
		features = []string{}
	}
	return SubscriptionPayload{
		UserID:       s.UserID,
		PlanName:     s.PlanName,
		Price:        s.Price,
		BillingCycle: s.BillingCycle,
		StartDate:    datePrefix(string(s.StartDate)),
		EndDate:      datePrefix(string(s.EndDate)),
		Status:       s.Status,
		Features:     features,
	}
}

// StatusPayload is the body of PATCH /{resource}/{id}/status.
type StatusPayload struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

func datePrefix(s string) string {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[:10]
	}
	return s
}
