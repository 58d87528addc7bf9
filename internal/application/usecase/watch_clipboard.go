package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/pastor/internal/application/port"
	"github.com/bnema/pastor/internal/logging"
)

// DefaultPollInterval is the clipboard polling period used when none is configured.
const DefaultPollInterval = time.Second

// ErrPollerRunning is returned by Start on a poller that is already running.
var ErrPollerRunning = errors.New("clipboard poller already running")

// ClipObserver receives clipboard text picked up by the poller.
type ClipObserver interface {
	Observe(ctx context.Context, text string, opts ...ObserveOption) error
}

// doRequest is a function scheduled onto the poller goroutine.
type doRequest struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// ClipboardPoller watches the pasteboard change counter on a fixed interval
// and forwards new text to a ClipObserver.
//
// While running, the poller goroutine is the only caller of the observer;
// other mutations are funneled onto it with Do.
type ClipboardPoller struct {
	board    port.Pasteboard
	observer ClipObserver
	interval time.Duration
	doCh     chan doRequest

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	// lastCount is owned by the poller goroutine once started.
	lastCount uint64
}

// NewClipboardPoller creates a stopped poller. A non-positive interval
// selects DefaultPollInterval.
func NewClipboardPoller(board port.Pasteboard, observer ClipObserver, interval time.Duration) *ClipboardPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ClipboardPoller{
		board:    board,
		observer: observer,
		interval: interval,
		doCh:     make(chan doRequest),
	}
}

// Interval returns the polling period.
func (p *ClipboardPoller) Interval() time.Duration {
	return p.interval
}

// Start records the current change count as the baseline and begins
// polling. Content already on the clipboard is not observed.
func (p *ClipboardPoller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return ErrPollerRunning
	}

	baseline, err := p.board.ChangeCount(ctx)
	if err != nil {
		return fmt.Errorf("read baseline change count: %w", err)
	}
	p.lastCount = baseline

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.run(loopCtx, p.done)

	logging.FromContext(ctx).Info().
		Dur("interval", p.interval).
		Uint64("baseline", baseline).
		Msg("clipboard poller started")
	return nil
}

// Stop cancels polling and waits for an in-flight tick to finish.
// Stopping a stopped poller does nothing.
func (p *ClipboardPoller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}

// IsRunning reports whether the poller is running.
func (p *ClipboardPoller) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Do runs fn on the poller goroutine and returns its error. When the poller
// is stopped fn runs on the calling goroutine. fn must not call Do.
func (p *ClipboardPoller) Do(ctx context.Context, fn func(context.Context) error) error {
	p.mu.Lock()
	running, done := p.running, p.done
	p.mu.Unlock()

	if !running {
		return fn(ctx)
	}

	req := doRequest{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case p.doCh <- req:
	case <-done:
		return fn(ctx)
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ClipboardPoller) run(ctx context.Context, done chan struct{}) {
	defer func() {
		// The parent context may end the loop without Stop.
		p.mu.Lock()
		if p.done == done {
			p.running = false
		}
		p.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.FromContext(ctx).Info().Msg("clipboard poller stopped")
			return
		case <-ticker.C:
			p.tick(ctx)
		case req := <-p.doCh:
			req.done <- req.fn(req.ctx)
		}
	}
}

// tick observes the clipboard text when the change count strictly increased.
// Errors are logged and polling continues.
func (p *ClipboardPoller) tick(ctx context.Context) {
	log := logging.FromContext(ctx)

	count, err := p.board.ChangeCount(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read clipboard change count")
		return
	}
	if count <= p.lastCount {
		return
	}
	p.lastCount = count

	text, ok, err := p.board.ReadText(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read clipboard text")
		return
	}
	if !ok || text == "" {
		log.Trace().Uint64("change_count", count).Msg("clipboard changed without text")
		return
	}

	if err := p.observer.Observe(ctx, text); err != nil {
		log.Error().Err(err).Msg("failed to record clipboard change")
	}
}
