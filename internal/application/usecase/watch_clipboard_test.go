package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/pastor/internal/application/port/mocks"
	"github.com/bnema/pastor/internal/application/usecase"
)

const testPollInterval = 5 * time.Millisecond

// fakePasteboard is a thread-safe clipboard with a manual change counter.
type fakePasteboard struct {
	mu    sync.Mutex
	count uint64
	text  string
	has   bool
}

func (f *fakePasteboard) copy(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	f.text = text
	f.has = text != ""
}

func (f *fakePasteboard) ChangeCount(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count, nil
}

func (f *fakePasteboard) ReadText(context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, f.has, nil
}

func (f *fakePasteboard) WriteText(_ context.Context, text string) error {
	f.copy(text)
	return nil
}

// recordingObserver collects observed texts.
type recordingObserver struct {
	mu    sync.Mutex
	texts []string
	block chan struct{}
}

func (r *recordingObserver) Observe(_ context.Context, text string, _ ...usecase.ObserveOption) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return nil
}

func (r *recordingObserver) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func TestClipboardPoller_ObservesOnlyNewChanges(t *testing.T) {
	ctx := testContext()
	board := &fakePasteboard{}
	board.copy("already there")
	observer := &recordingObserver{}

	poller := usecase.NewClipboardPoller(board, observer, testPollInterval)
	require.NoError(t, poller.Start(ctx))
	defer poller.Stop()

	time.Sleep(4 * testPollInterval)
	assert.Empty(t, observer.seen(), "baseline content is not observed")

	board.copy("fresh")
	assert.Eventually(t, func() bool {
		return len(observer.seen()) == 1
	}, time.Second, testPollInterval)

	time.Sleep(4 * testPollInterval)
	assert.Equal(t, []string{"fresh"}, observer.seen(), "unchanged counter is not observed twice")
}

func TestClipboardPoller_SkipsNonText(t *testing.T) {
	ctx := testContext()
	board := &fakePasteboard{}
	observer := &recordingObserver{}

	poller := usecase.NewClipboardPoller(board, observer, testPollInterval)
	require.NoError(t, poller.Start(ctx))

	board.copy("")
	time.Sleep(4 * testPollInterval)
	board.copy("text")
	assert.Eventually(t, func() bool {
		return len(observer.seen()) == 1
	}, time.Second, testPollInterval)

	poller.Stop()
	assert.Equal(t, []string{"text"}, observer.seen())
}

func TestClipboardPoller_StartStop(t *testing.T) {
	ctx := testContext()
	poller := usecase.NewClipboardPoller(&fakePasteboard{}, &recordingObserver{}, testPollInterval)

	assert.False(t, poller.IsRunning())
	require.NoError(t, poller.Start(ctx))
	assert.True(t, poller.IsRunning())
	assert.ErrorIs(t, poller.Start(ctx), usecase.ErrPollerRunning)

	poller.Stop()
	assert.False(t, poller.IsRunning())
	poller.Stop()

	require.NoError(t, poller.Start(ctx), "a stopped poller can start again")
	poller.Stop()
}

func TestClipboardPoller_StopWaitsForInFlightTick(t *testing.T) {
	ctx := testContext()
	board := &fakePasteboard{}
	observer := &recordingObserver{block: make(chan struct{})}

	poller := usecase.NewClipboardPoller(board, observer, testPollInterval)
	require.NoError(t, poller.Start(ctx))
	board.copy("slow")

	// Let the tick reach the blocked observer.
	time.Sleep(4 * testPollInterval)

	var stopped atomic.Bool
	go func() {
		poller.Stop()
		stopped.Store(true)
	}()

	time.Sleep(4 * testPollInterval)
	assert.False(t, stopped.Load(), "Stop returns only after the tick completes")

	close(observer.block)
	assert.Eventually(t, stopped.Load, time.Second, testPollInterval)
	assert.Equal(t, []string{"slow"}, observer.seen())
}

func TestClipboardPoller_ParentCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	poller := usecase.NewClipboardPoller(&fakePasteboard{}, &recordingObserver{}, testPollInterval)
	require.NoError(t, poller.Start(ctx))

	cancel()
	assert.Eventually(t, func() bool { return !poller.IsRunning() }, time.Second, testPollInterval)
	poller.Stop()
}

func TestClipboardPoller_BaselineError(t *testing.T) {
	ctx := testContext()
	board := portmocks.NewMockPasteboard(t)
	board.EXPECT().ChangeCount(mock.Anything).Return(uint64(0), errors.New("no display")).Once()

	poller := usecase.NewClipboardPoller(board, &recordingObserver{}, testPollInterval)
	err := poller.Start(ctx)

	require.Error(t, err)
	assert.False(t, poller.IsRunning())
}

func TestClipboardPoller_TickErrorsKeepPolling(t *testing.T) {
	ctx := testContext()
	board := portmocks.NewMockPasteboard(t)
	observer := &recordingObserver{}

	var calls atomic.Int32
	board.EXPECT().ChangeCount(mock.Anything).RunAndReturn(func(context.Context) (uint64, error) {
		n := calls.Add(1)
		switch {
		case n == 1:
			return 0, nil
		case n == 2:
			return 0, errors.New("transient")
		default:
			return 1, nil
		}
	})
	board.EXPECT().ReadText(mock.Anything).Return("after error", true, nil).Once()

	poller := usecase.NewClipboardPoller(board, observer, testPollInterval)
	require.NoError(t, poller.Start(ctx))

	assert.Eventually(t, func() bool {
		return len(observer.seen()) == 1
	}, time.Second, testPollInterval)
	poller.Stop()
	assert.Equal(t, []string{"after error"}, observer.seen())
}

func TestClipboardPoller_DoRunsOnPollerOrInline(t *testing.T) {
	ctx := testContext()
	poller := usecase.NewClipboardPoller(&fakePasteboard{}, &recordingObserver{}, testPollInterval)

	var ran int
	require.NoError(t, poller.Do(ctx, func(context.Context) error {
		ran++
		return nil
	}))

	require.NoError(t, poller.Start(ctx))
	defer poller.Stop()

	wantErr := errors.New("mutation failed")
	err := poller.Do(ctx, func(context.Context) error {
		ran++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, ran)
}

func TestClipboardPoller_FeedsHistoryManager(t *testing.T) {
	ctx := testContext()
	board := &fakePasteboard{}
	manager, _ := newEmptyManager(t, 3)

	poller := usecase.NewClipboardPoller(board, manager, testPollInterval)
	require.NoError(t, poller.Start(ctx))

	for _, text := range []string{"one", "two"} {
		board.copy(text)
		want := text
		assert.Eventually(t, func() bool {
			var head string
			_ = poller.Do(ctx, func(context.Context) error {
				if e, ok := manager.Entry(0); ok {
					head = e.Content
				}
				return nil
			})
			return head == want
		}, time.Second, testPollInterval)
	}

	poller.Stop()
	assert.Equal(t, []string{"two", "one"}, contentsOf(manager.Entries()))
}

func TestClipboardPoller_DefaultInterval(t *testing.T) {
	poller := usecase.NewClipboardPoller(&fakePasteboard{}, &recordingObserver{}, 0)
	assert.Equal(t, usecase.DefaultPollInterval, poller.Interval())
}
