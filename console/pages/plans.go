package pages

import (
	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// PlansView is the plans table plus the services the form can attach.
type PlansView struct {
	Items    []client.Plan            `json:"items"`
	Services []client.PlanService     `json:"services"`
	Loading  bool                     `json:"loading"`
	Error    string                   `json:"error,omitempty"`
	Success  bool                     `json:"success"`
	Form     Form[client.PlanPayload] `json:"form"`
	Deleting *client.Plan             `json:"deleting,omitempty"`
}

// PlansPage manages subscription plans.
type PlansPage struct {
	*crud[client.Plan, client.PlanPayload]
}

func NewPlansPage(st Store) *PlansPage {
	return &PlansPage{crud: &crud[client.Plan, client.PlanPayload]{
		st:          st,
		res:         store.Plans,
		payloadFrom: client.PlanPayloadFrom,
	}}
}

// Mount sets the heading and loads plans and the services the form offers.
func (p *PlansPage) Mount() Tickets {
	p.st.Dispatch(store.SetHeading("Subscription Plans"))
	return Tickets{
		p.st.Dispatch(store.Plans.FetchAll()),
		p.st.Dispatch(store.Services.FetchAll()),
	}
}

// ToggleStatus flips the plan between active and inactive.
func (p *PlansPage) ToggleStatus(id client.ID) (*store.Ticket, error) {
	return toggle(p.st, store.Plans, id, func(pl client.Plan) string { return pl.Status })
}

// View derives the page from the current state.
func (p *PlansPage) View() PlansView {
	st := p.st.State()
	return PlansView{
		Items:    st.Plans.Items,
		Services: Apply(st.Services.Items, Equal(client.StatusActive, func(s client.PlanService) string { return s.Status })),
		Loading:  st.Plans.Loading,
		Error:    st.Plans.ErrMessage(),
		Success:  st.Plans.Success,
		Form:     p.Form(),
		Deleting: p.PendingDelete(),
	}
}
