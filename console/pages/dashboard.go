package pages

import (
	"time"

	"github.com/Akash8377/futuresoulmate-admin/store"
)

// DashboardPage shows headline numbers and distributions over every
// resource.
type DashboardPage struct {
	st  Store
	now func() time.Time
}

func NewDashboardPage(st Store) *DashboardPage {
	return &DashboardPage{st: st, now: time.Now}
}

// Mount loads the five resources. The fetches are independent: one failing
// leaves the others to complete and render.
func (p *DashboardPage) Mount() Tickets {
	p.st.Dispatch(store.SetHeading("Dashboard"))
	return Tickets{
		p.st.Dispatch(store.Users.FetchAll()),
		p.st.Dispatch(store.Subscriptions.FetchAll()),
		p.st.Dispatch(store.Plans.FetchAll()),
		p.st.Dispatch(store.Conversations.FetchAll()),
		p.st.Dispatch(store.Notifications.FetchAll()),
	}
}

// Analytics derives the dashboard from the current state.
func (p *DashboardPage) Analytics() Analytics {
	return ComputeAnalytics(p.st.State(), p.now())
}
