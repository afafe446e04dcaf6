package pages

import (
	"sync"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// SubscriptionsView is the subscriptions table as shown.
type SubscriptionsView struct {
	Items   []client.Subscription            `json:"items"`
	Total   int                              `json:"total"`
	Loading bool                             `json:"loading"`
	Error   string                           `json:"error,omitempty"`
	Success bool                             `json:"success"`
	Search  string                           `json:"search"`
	Status  string                           `json:"status"`
	Form    Form[client.SubscriptionPayload] `json:"form"`

	Deleting *client.Subscription `json:"deleting,omitempty"`
}

// SubscriptionsPage manages member subscriptions.
type SubscriptionsPage struct {
	*crud[client.Subscription, client.SubscriptionPayload]

	fmu     sync.Mutex
	search  string
	status  string
	filters watchers
}

func NewSubscriptionsPage(st Store) *SubscriptionsPage {
	return &SubscriptionsPage{crud: &crud[client.Subscription, client.SubscriptionPayload]{
		st:          st,
		res:         store.Subscriptions,
		payloadFrom: client.SubscriptionPayloadFrom,
	}}
}

// Mount sets the heading and loads every subscription.
func (p *SubscriptionsPage) Mount() *store.Ticket {
	p.st.Dispatch(store.SetHeading("All Subscriptions"))
	return p.st.Dispatch(store.Subscriptions.FetchAll())
}

// ForUser narrows the table to one member's subscriptions.
func (p *SubscriptionsPage) ForUser(userID client.ID) *store.Ticket {
	return p.st.Dispatch(store.Subscriptions.FetchAllForUser(userID))
}

// SetSearch filters on member names, email and plan name.
func (p *SubscriptionsPage) SetSearch(term string) {
	p.fmu.Lock()
	p.search = term
	p.fmu.Unlock()
	p.filters.notify()
}

// SetStatus filters on subscription status; "" shows all.
func (p *SubscriptionsPage) SetStatus(status string) {
	p.fmu.Lock()
	p.status = status
	p.fmu.Unlock()
	p.filters.notify()
}

// Watch calls fn with the view now, after every store change and after every
// filter change until stop is called.
func (p *SubscriptionsPage) Watch(src Source, fn func(SubscriptionsView)) (stop func()) {
	return watchFiltered(src, &p.filters, p.Derive, fn)
}

// View derives the visible rows from the current state.
func (p *SubscriptionsPage) View() SubscriptionsView { return p.Derive(p.st.State()) }

// Derive computes the view for st with the page's current filters.
func (p *SubscriptionsPage) Derive(st store.State) SubscriptionsView {
	p.fmu.Lock()
	search, status := p.search, p.status
	p.fmu.Unlock()

	c := st.Subscriptions
	items := Apply(c.Items, All(
		Matching(search,
			func(s client.Subscription) string { return string(s.FirstName) },
			func(s client.Subscription) string { return string(s.LastName) },
			func(s client.Subscription) string { return string(s.Email) },
			func(s client.Subscription) string { return s.PlanName },
		),
		Equal(status, func(s client.Subscription) string { return s.Status }),
	))
	return SubscriptionsView{
		Items:   items,
		Total:   len(c.Items),
		Loading: c.Loading,
		Error:   c.ErrMessage(),
		Success: c.Success,
		Search:  search,
		Status:  status,
		Form:    p.Form(),

		Deleting: p.PendingDelete(),
	}
}
