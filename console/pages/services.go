package pages

import (
	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// ServicesView is the services table as shown.
type ServicesView struct {
	Items    []client.PlanService        `json:"items"`
	Loading  bool                        `json:"loading"`
	Error    string                      `json:"error,omitempty"`
	Success  bool                        `json:"success"`
	Form     Form[client.ServicePayload] `json:"form"`
	Deleting *client.PlanService         `json:"deleting,omitempty"`
}

// ServicesPage manages the services plans bundle.
type ServicesPage struct {
	*crud[client.PlanService, client.ServicePayload]
}

func NewServicesPage(st Store) *ServicesPage {
	return &ServicesPage{crud: &crud[client.PlanService, client.ServicePayload]{
		st:          st,
		res:         store.Services,
		payloadFrom: client.ServicePayloadFrom,
	}}
}

// Mount sets the heading and loads services.
func (p *ServicesPage) Mount() *store.Ticket {
	p.st.Dispatch(store.SetHeading("Subscription Services"))
	return p.st.Dispatch(store.Services.FetchAll())
}

// ToggleStatus flips the service between active and inactive.
func (p *ServicesPage) ToggleStatus(id client.ID) (*store.Ticket, error) {
	return toggle(p.st, store.Services, id, func(s client.PlanService) string { return s.Status })
}

// View derives the page from the current state.
func (p *ServicesPage) View() ServicesView {
	st := p.st.State()
	return ServicesView{
		Items:    st.Services.Items,
		Loading:  st.Services.Loading,
		Error:    st.Services.ErrMessage(),
		Success:  st.Services.Success,
		Form:     p.Form(),
		Deleting: p.PendingDelete(),
	}
}
