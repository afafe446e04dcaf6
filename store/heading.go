package store

import "strings"

// SetHeading sets the page title shown in the header. A blank title
// restores the default.
func SetHeading(title string) Command {
	return reducer{name: "heading/set", fn: func(st State) (State, []Effect) {
		st.Heading = strings.TrimSpace(title)
		if st.Heading == "" {
			st.Heading = DefaultHeading
		}
		return st, nil
	}}
}
