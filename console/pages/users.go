package pages

import (
	"sync"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/store"
)

// UsersView is the member directory as shown.
type UsersView struct {
	Items    []client.User `json:"items"`
	Total    int           `json:"total"`
	Loading  bool          `json:"loading"`
	Error    string        `json:"error,omitempty"`
	Search   string        `json:"search"`
	Gender   string        `json:"gender"`
	Selected *client.User  `json:"selected,omitempty"`
}

// UsersPage lists members with search and a gender filter.
type UsersPage struct {
	st Store

	mu      sync.Mutex
	search  string
	gender  string
	filters watchers
}

func NewUsersPage(st Store) *UsersPage { return &UsersPage{st: st} }

// Mount sets the heading and loads the directory.
func (p *UsersPage) Mount() *store.Ticket {
	p.st.Dispatch(store.SetHeading("Users"))
	return p.st.Dispatch(store.Users.FetchAll())
}

// SetSearch filters on user id, email, phone and names.
func (p *UsersPage) SetSearch(term string) {
	p.mu.Lock()
	p.search = term
	p.mu.Unlock()
	p.filters.notify()
}

// SetGender filters on gender; "" shows everyone.
func (p *UsersPage) SetGender(gender string) {
	p.mu.Lock()
	p.gender = gender
	p.mu.Unlock()
	p.filters.notify()
}

// Select opens the profile of the member with id.
func (p *UsersPage) Select(id client.ID) bool {
	u, idx := store.Users.Of(p.st.State()).Find(id)
	if idx < 0 {
		return false
	}
	p.st.Dispatch(store.Users.SetCurrent(&u))
	return true
}

// CloseProfile clears the selection.
func (p *UsersPage) CloseProfile() { p.st.Dispatch(store.Users.SetCurrent(nil)) }

// Watch calls fn with the view now, after every store change and after every
// filter change until stop is called.
func (p *UsersPage) Watch(src Source, fn func(UsersView)) (stop func()) {
	return watchFiltered(src, &p.filters, p.Derive, fn)
}

// View derives the visible rows from the current state.
func (p *UsersPage) View() UsersView { return p.Derive(p.st.State()) }

// Derive computes the view for st with the page's current filters.
func (p *UsersPage) Derive(st store.State) UsersView {
	p.mu.Lock()
	search, gender := p.search, p.gender
	p.mu.Unlock()

	c := st.Users
	items := Apply(c.Items, All(
		Matching(search,
			func(u client.User) string { return string(u.UserID) },
			func(u client.User) string { return string(u.Email) },
			func(u client.User) string { return string(u.Phone) },
			func(u client.User) string { return string(u.LastName) },
			func(u client.User) string { return string(u.FirstName) },
		),
		Equal(gender, func(u client.User) string { return string(u.Gender) }),
	))
	return UsersView{
		Items:    items,
		Total:    len(c.Items),
		Loading:  c.Loading,
		Error:    c.ErrMessage(),
		Search:   search,
		Gender:   gender,
		Selected: c.Current,
	}
}
