package console

import "sync"

// History records navigation requests from the store. The shell reads the
// last entry to tell the caller where a login landed.
type History struct {
	mu    sync.Mutex
	paths []string
}

// Navigate implements store.Navigator.
func (h *History) Navigate(path string) {
	h.mu.Lock()
	h.paths = append(h.paths, path)
	h.mu.Unlock()
}

// Last is the most recent path, or "".
func (h *History) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.paths) == 0 {
		return ""
	}
	return h.paths[len(h.paths)-1]
}

// Paths returns every recorded path in order.
func (h *History) Paths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.paths...)
}
