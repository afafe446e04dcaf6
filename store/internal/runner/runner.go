// Package runner executes asynchronous store effects on a fixed worker pool.
//
// All workers read one shared queue, so independent requests overlap and
// complete in whatever order the backend answers. Retryable tasks are
// re-run with exponential backoff; every attempt gets its own deadline.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type queuedTask struct {
	ctx  context.Context
	task Task
}

// Runner is a bounded worker pool. The zero value is not usable; call New.
type Runner struct {
	cfg   Config
	queue chan queuedTask
	log   zerolog.Logger

	mu     sync.RWMutex // guards closed against in-flight sends
	closed bool
	done   chan struct{}

	wg sync.WaitGroup
}

// New starts cfg.Workers workers.
func New(cfg Config, log zerolog.Logger) *Runner {
	cfg = cfg.withDefaults()
	r := &Runner{
		cfg:   cfg,
		queue: make(chan queuedTask, cfg.QueueSize),
		log:   log.With().Str("component", "runner").Logger(),
		done:  make(chan struct{}),
	}
	for i := 0; i < cfg.Workers; i++ {
		r.wg.Add(1)
		go r.worker(i)
	}
	return r
}

// Config returns the effective configuration.
func (r *Runner) Config() Config { return r.cfg }

// Submit enqueues t.
//
//   - Returns nil on success; t.Done will be called exactly once.
//   - Returns ErrClosed if the runner is stopped.
//   - Returns *QueueFullError if the queue stays full for EnqueueTimeout.
//   - Returns ctx.Err() if ctx ends first.
//
// When Submit returns an error t.Done is never called.
func (r *Runner) Submit(ctx context.Context, t Task) error {
	if t.Run == nil {
		return errors.New("runner: nil task")
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return ErrClosed
	}

	timer := time.NewTimer(r.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case r.queue <- queuedTask{ctx: ctx, task: t}:
		submittedTotal.WithLabelValues(t.Name).Inc()
		queueDepth.Set(float64(len(r.queue)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.Inc()
		return &QueueFullError{Length: len(r.queue), Capacity: cap(r.queue)}
	}
}

// Stop rejects new work, lets workers finish the queue with a single attempt
// per task, and waits for them. Idempotent.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.wg.Wait()
		return
	}
	r.closed = true
	close(r.done)
	r.mu.Unlock()

	r.log.Debug().Int("queued", len(r.queue)).Msg("stopping runner")
	r.wg.Wait()
	queueDepth.Set(0)
	r.log.Debug().Msg("runner stopped")
}

// Close lets Runner satisfy io.Closer.
func (r *Runner) Close() error {
	r.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (r *Runner) worker(idx int) {
	defer r.wg.Done()
	for {
		select {
		case qt := <-r.queue:
			queueDepth.Set(float64(len(r.queue)))
			r.execute(qt, false)
		case <-r.done:
			drained := 0
			for {
				select {
				case qt := <-r.queue:
					r.execute(qt, true)
					drained++
				default:
					if drained > 0 {
						r.log.Debug().Int("worker", idx).Int("drained", drained).Msg("worker drained queue")
					}
					return
				}
			}
		}
	}
}

// execute runs qt to its final outcome and reports it through Done.
func (r *Runner) execute(qt queuedTask, draining bool) {
	t := qt.task
	err := r.attempts(qt, draining)
	if err != nil {
		failedTotal.WithLabelValues(t.Name).Inc()
		r.handleError(t.Name, err)
	}
	if t.Done != nil {
		r.safeDone(t, err)
	}
}

func (r *Runner) attempts(qt queuedTask, draining bool) error {
	t := qt.task
	// Honour caller context so a cancelled task doesn't occupy a worker.
	if err := qt.ctx.Err(); err != nil {
		return err
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.cfg.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = r.cfg.MaxInterval
	exp.Reset()

	maxAttempts := r.cfg.MaxAttempts
	if !t.Retryable || draining {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = r.runOnce(qt.ctx, t)
		if err == nil {
			return nil
		}
		var pe *PanicError
		if errors.As(err, &pe) || attempt >= maxAttempts || !r.cfg.ShouldRetry(err) {
			return err
		}
		r.log.Debug().Str("task", t.Name).Int("attempt", attempt).Err(err).Msg("retrying task")

		wait := exp.NextBackOff()
		select {
		case <-time.After(wait):
		case <-r.done:
			return err
		case <-qt.ctx.Done():
			return qt.ctx.Err()
		}
	}
}

// runOnce executes a single attempt under RequestTimeout, converting a panic
// into *PanicError.
func (r *Runner) runOnce(parent context.Context, t Task) (err error) {
	ctx, cancel := context.WithTimeout(parent, r.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		runDuration.WithLabelValues(t.Name).Observe(time.Since(start).Seconds())
		if rec := recover(); rec != nil {
			err = &PanicError{Task: t.Name, Value: rec}
		}
	}()
	return t.Run(ctx)
}

func (r *Runner) handleError(task string, err error) {
	if r.cfg.ErrorHandler == nil {
		return
	}
	defer func() {
		// Guard against panics in the user-supplied handler.
		if rec := recover(); rec != nil {
			r.log.Error().Str("task", task).Interface("panic", rec).Msg("error handler panic")
		}
	}()
	r.cfg.ErrorHandler(task, err)
}

func (r *Runner) safeDone(t Task, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Str("task", t.Name).Interface("panic", rec).Msg("completion panic")
		}
	}()
	t.Done(err)
}
