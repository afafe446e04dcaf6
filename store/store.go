// Package store is the admin console's state container.
//
// A Store holds one immutable State. Commands are applied atomically and
// return descriptions of side effects; the store then runs those effects
// (network calls on a worker pool, timers, navigation) and feeds each
// completion back in as another command. Overlapping requests for the same
// slice are not serialised: whichever completes last wins.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Akash8377/futuresoulmate-admin/client"
	"github.com/Akash8377/futuresoulmate-admin/localstate"
	"github.com/Akash8377/futuresoulmate-admin/store/internal/runner"
)

// Storage persists the session token and id.
type Storage = localstate.Storage

// RunnerConfig tunes the effect worker pool.
type RunnerConfig = runner.Config

// DefaultSuccessTTL is how long a mutation's Success flag stays raised.
const DefaultSuccessTTL = 3 * time.Second

// Deps are the store's collaborators. Client and Storage are required.
type Deps struct {
	Client    API
	Storage   Storage
	Logger    zerolog.Logger
	Navigator Navigator
}

// Option configures a Store.
type Option func(*Store) error

// WithSuccessTTL sets how long Success stays true after a mutation.
func WithSuccessTTL(d time.Duration) Option {
	return func(s *Store) error {
		if d <= 0 {
			return fmt.Errorf("success TTL must be positive")
		}
		s.ttl = d
		return nil
	}
}

// WithRequestTimeout sets the per-attempt ceiling for every call.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Store) error {
		if d <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		s.runnerCfg.RequestTimeout = d
		return nil
	}
}

// WithRunner replaces the worker pool configuration. A request timeout set
// by WithRequestTimeout is kept when cfg leaves it zero.
func WithRunner(cfg RunnerConfig) Option {
	return func(s *Store) error {
		if cfg.RequestTimeout == 0 {
			cfg.RequestTimeout = s.runnerCfg.RequestTimeout
		}
		s.runnerCfg = cfg
		return nil
	}
}

// WithNavigator replaces Deps.Navigator.
func WithNavigator(nav Navigator) Option {
	return func(s *Store) error {
		s.nav = nav
		return nil
	}
}

// WithClock overrides time.Now for elapsed-time logging.
func WithClock(now func() time.Time) Option {
	return func(s *Store) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		s.env.now = now
		return nil
	}
}

// Store is safe for concurrent use.
type Store struct {
	mu    sync.Mutex // guards state
	state State

	notifyMu sync.Mutex // keeps subscriber notifications in apply order
	subsMu   sync.Mutex
	subs     map[int]func(State)
	nextSub  int

	timersMu sync.Mutex
	timers   map[string]*time.Timer

	env       env
	nav       Navigator
	log       zerolog.Logger
	ttl       time.Duration
	runnerCfg RunnerConfig
	run       *runner.Runner

	closing   atomic.Bool
	closeOnce sync.Once
}

// New builds a Store and hydrates the session from storage.
func New(deps Deps, opts ...Option) (*Store, error) {
	if deps.Client == nil {
		return nil, errors.New("store: client is required")
	}
	if deps.Storage == nil {
		return nil, errors.New("store: storage is required")
	}
	s := &Store{
		state:  InitialState(),
		subs:   make(map[int]func(State)),
		timers: make(map[string]*time.Timer),
		env:    env{api: deps.Client, storage: deps.Storage, now: time.Now},
		nav:    deps.Navigator,
		log:    deps.Logger.With().Str("component", "store").Logger(),
		ttl:    DefaultSuccessTTL,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}
	s.run = runner.New(s.runnerCfg, deps.Logger)
	s.runnerCfg = s.run.Config()

	if err := s.Dispatch(Hydrate()).Err(); err != nil {
		s.run.Stop()
		return nil, fmt.Errorf("store: hydrate session: %w", err)
	}
	return s, nil
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to receive every new state, in apply order. fn
// runs on the dispatching goroutine and must not call Dispatch itself.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// Dispatch applies cmd and starts its effects. The returned ticket settles
// once every effect spawned by cmd, transitively, has completed.
func (s *Store) Dispatch(cmd Command) *Ticket {
	t := newTicket()
	if s.closing.Load() {
		t.record(ErrClosed)
		t.release()
		return t
	}
	s.dispatch(cmd, t)
	t.release()
	return t
}

// Do dispatches cmd, waits for it and returns the resulting state.
func (s *Store) Do(ctx context.Context, cmd Command) (State, error) {
	err := s.Dispatch(cmd).Wait(ctx)
	return s.State(), err
}

// Close cancels pending timers and drains in-flight effects; their
// completions are still applied. Later dispatches fail with ErrClosed.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		s.closing.Store(true)
		s.stopTimers()
		s.run.Stop()
		s.log.Debug().Msg("store closed")
	})
	return nil
}

// ------------------------- internals -------------------------

func (s *Store) dispatch(cmd Command, t *Ticket) {
	for _, eff := range s.apply(cmd) {
		s.perform(eff, t)
	}
}

func (s *Store) apply(cmd Command) []Effect {
	s.mu.Lock()
	next, effects := cmd.apply(s.state, &s.env)
	s.state = next
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	s.log.Trace().Str("command", cmd.Name()).Int("effects", len(effects)).Msg("applied")
	s.notify(next)
	return effects
}

func (s *Store) notify(st State) {
	s.subsMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(State), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

func (s *Store) perform(eff Effect, t *Ticket) {
	switch e := eff.(type) {
	case reportEffect:
		t.record(e.err)
	case cancelEffect:
		s.cancelTimer(e.key)
	case afterEffect:
		s.schedule(e)
	case navigateEffect:
		if s.nav != nil {
			s.nav.Navigate(e.path)
		}
	case inlineEffect:
		ctx, cancel := context.WithTimeout(context.Background(), s.runnerCfg.RequestTimeout)
		next, err := e.run(ctx, &s.env)
		cancel()
		if err != nil {
			s.log.Warn().Str("op", e.name).Err(err).Msg("inline effect failed")
			t.record(err)
		}
		if next != nil {
			s.dispatch(next, t)
		}
	case callEffect:
		s.submit(e, t)
	default:
		s.log.Error().Str("effect", eff.effectName()).Msg("unknown effect")
	}
}

// submit hands a call to the runner. Its completion, success or failure,
// is always applied, so no slice is left loading.
func (s *Store) submit(e callEffect, t *Ticket) {
	reqID := uuid.NewString()
	log := s.log.With().Str("op", e.name).Str("request_id", reqID).Logger()
	log.Debug().Msg("pending")

	t.add()
	start := s.env.now()
	var follow Command
	task := runner.Task{
		Name:      e.name,
		Retryable: e.retryable,
		Run: func(ctx context.Context) error {
			cmd, err := e.do(client.ContextWithRequestID(ctx, reqID), &s.env)
			if err != nil {
				return err
			}
			follow = cmd
			return nil
		},
		Done: func(err error) { s.complete(e, t, log, start, follow, err) },
	}
	if err := s.run.Submit(context.Background(), task); err != nil {
		s.complete(e, t, log, start, nil, err)
	}
}

func (s *Store) complete(e callEffect, t *Ticket, log zerolog.Logger, start time.Time, follow Command, err error) {
	defer t.release()
	elapsed := s.env.now().Sub(start)
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", elapsed).Msg("rejected")
		t.record(err)
		follow = nil
		if e.fail != nil {
			follow = e.fail(err)
		}
	} else {
		log.Debug().Dur("elapsed", elapsed).Msg("fulfilled")
	}
	if follow != nil {
		s.dispatch(follow, t)
	}
}

func (s *Store) schedule(e afterEffect) {
	if s.closing.Load() {
		return
	}
	delay := e.delay
	if delay <= 0 {
		delay = s.ttl
	}
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if old, ok := s.timers[e.key]; ok {
		old.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.timersMu.Lock()
		current, ok := s.timers[e.key]
		if !ok || current != timer {
			s.timersMu.Unlock()
			return
		}
		delete(s.timers, e.key)
		s.timersMu.Unlock()
		s.Dispatch(e.cmd)
	})
	s.timers[e.key] = timer
}

func (s *Store) cancelTimer(key string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

func (s *Store) stopTimers() {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// ------------------------- tickets -------------------------

// Ticket tracks one Dispatch until all of its effects have completed.
type Ticket struct {
	mu      sync.Mutex
	pending int
	err     error
	done    chan struct{}
}

func newTicket() *Ticket {
	return &Ticket{pending: 1, done: make(chan struct{})}
}

// Done is closed once the dispatch has settled.
func (t *Ticket) Done() <-chan struct{} { return t.done }

// Err returns the first failure recorded so far.
func (t *Ticket) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Wait blocks until the dispatch settles or ctx ends. It returns the first
// failure any of its effects reported. The failure is also in State.
func (t *Ticket) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Ticket) add() {
	t.mu.Lock()
	t.pending++
	t.mu.Unlock()
}

func (t *Ticket) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending--
	if t.pending == 0 {
		close(t.done)
	}
}

func (t *Ticket) record(err error) {
	if err == nil {
		return
	}
	t.mu.Lock()
	if t.err == nil {
		t.err = err
	}
	t.mu.Unlock()
}
