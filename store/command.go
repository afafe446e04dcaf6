package store

import (
	"context"
	"time"
)

// Command is one state transition request. apply is pure over State: it
// returns the next state plus descriptions of the side effects to run.
// Effects carry closures but none of them execute during apply.
type Command interface {
	Name() string
	apply(st State, e *env) (State, []Effect)
}

// Reduce applies cmd to st and returns the next state, discarding effects.
func Reduce(st State, cmd Command) State {
	next, _ := cmd.apply(st, &env{})
	return next
}

// Effect describes work the store performs after a transition is published.
type Effect interface {
	effectName() string
}

// callEffect runs do on the runner. Its result command (or fail(err)) is
// dispatched back into the store on completion.
type callEffect struct {
	name      string
	retryable bool
	do        func(ctx context.Context, e *env) (Command, error)
	fail      func(err error) Command
}

// afterEffect dispatches cmd after delay. Scheduling a key again replaces the
// pending timer. A zero delay means the store's success TTL.
type afterEffect struct {
	key   string
	delay time.Duration
	cmd   Command
}

// cancelEffect stops the timer registered under key, if any.
type cancelEffect struct {
	key string
}

// inlineEffect runs synchronously before Dispatch returns. A non-nil
// command it returns is applied within the same dispatch.
type inlineEffect struct {
	name string
	run  func(ctx context.Context, e *env) (Command, error)
}

// navigateEffect asks the Navigator to show path.
type navigateEffect struct {
	path string
}

// reportEffect records a locally detected failure on the dispatch ticket.
type reportEffect struct {
	err error
}

func (e callEffect) effectName() string     { return e.name }
func (e afterEffect) effectName() string    { return "after:" + e.key }
func (e cancelEffect) effectName() string   { return "cancel:" + e.key }
func (e inlineEffect) effectName() string   { return e.name }
func (e navigateEffect) effectName() string { return "navigate:" + e.path }
func (e reportEffect) effectName() string   { return "report" }

// reducer is a command built from a closure; completion events use it.
type reducer struct {
	name string
	fn   func(State) (State, []Effect)
}

func (r reducer) Name() string { return r.name }

func (r reducer) apply(st State, _ *env) (State, []Effect) { return r.fn(st) }

// env gives effect closures access to the store's collaborators. Effects
// receive it when they run; apply never calls through it.
type env struct {
	api     API
	storage Storage
	now     func() time.Time
}
