// Package health tracks whether the console's dependencies are usable: the
// admin API it proxies and the session storage it reads tokens from.
package health

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/console/respond"
)

// Checker is one dependency probe. Check returns nil when it is usable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckFunc adapts a function to Checker.
type CheckFunc struct {
	Label string
	Fn    func(ctx context.Context) error
}

func (c CheckFunc) Name() string                    { return c.Label }
func (c CheckFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

// Monitor aggregates checkers into one cached health flag.
type Monitor struct {
	healthy atomic.Int32
	lastErr atomic.Value // string
	deps    []Checker
	timeout time.Duration
	log     zerolog.Logger
	now     func() time.Time

	mu   sync.Mutex // serialises Evaluate
	prev int32
}

// NewMonitor starts unhealthy until the first evaluation.
func NewMonitor(log zerolog.Logger, deps ...Checker) *Monitor {
	m := &Monitor{
		deps:    deps,
		timeout: 5 * time.Second,
		log:     log.With().Str("component", "health").Logger(),
		now:     time.Now,
		prev:    -1,
	}
	m.lastErr.Store("not yet checked")
	return m
}

// IsHealthy returns the cached flag.
func (m *Monitor) IsHealthy() bool { return m.healthy.Load() == 1 }

// Evaluate probes every dependency once and updates the flag. Transitions
// are logged.
func (m *Monitor) Evaluate(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	var failures []string
	for _, c := range m.deps {
		cctx, cancel := context.WithTimeout(ctx, m.timeout)
		err := c.Check(cctx)
		cancel()
		if err != nil {
			failures = append(failures, c.Name()+": "+err.Error())
		}
	}

	cur := int32(1)
	if len(failures) > 0 {
		cur = 0
	}
	m.healthy.Store(cur)
	m.lastErr.Store(strings.Join(failures, "; "))

	if cur != m.prev {
		if cur == 1 {
			m.log.Info().Msg("console health: UP")
		} else {
			m.log.Error().Strs("failures", failures).Msg("console health: DOWN")
		}
		m.prev = cur
	}
	return cur == 1
}

// Start evaluates now and then every interval until ctx ends.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.Evaluate(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Evaluate(ctx)
		}
	}
}

// Status is the body of the health endpoint.
type Status struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ServeHTTP reports the cached flag: 200 UP or 503 DOWN.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	ts := m.now().UTC().Format(time.RFC3339)
	if m.IsHealthy() {
		respond.WriteJSON(w, http.StatusOK, Status{Status: "UP", Message: "Console is healthy", Timestamp: ts})
		return
	}
	msg, _ := m.lastErr.Load().(string)
	if msg == "" {
		msg = "One or more dependencies unavailable"
	}
	respond.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "DOWN", Message: msg, Timestamp: ts})
}
