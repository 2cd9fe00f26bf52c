package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	mu    sync.Mutex
	calls []time.Duration
	err   error
	done  chan struct{}
}

func newFakePurger() *fakePurger {
	return &fakePurger{done: make(chan struct{}, 16)}
}

func (f *fakePurger) PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	f.mu.Lock()
	f.calls = append(f.calls, olderThan)
	f.mu.Unlock()
	select {
	case f.done <- struct{}{}:
	default:
	}
	return 1, f.err
}

func (f *fakePurger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestScheduler_PurgesOnStartAndTick(t *testing.T) {
	purger := newFakePurger()
	s := New(purger, 20*time.Millisecond, 30*24*time.Hour)
	s.Start()
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-purger.done:
		case <-time.After(2 * time.Second):
			t.Fatal("purge did not run")
		}
	}

	purger.mu.Lock()
	defer purger.mu.Unlock()
	for _, olderThan := range purger.calls {
		require.Equal(t, 30*24*time.Hour, olderThan)
	}
}

func TestScheduler_DisabledWithoutRetention(t *testing.T) {
	purger := newFakePurger()
	s := New(purger, 10*time.Millisecond, 0)
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	require.Zero(t, purger.count())
}

func TestScheduler_SurvivesPurgeErrors(t *testing.T) {
	purger := newFakePurger()
	purger.err = errors.New("database is locked")
	s := New(purger, 10*time.Millisecond, time.Hour)
	s.Start()

	for i := 0; i < 2; i++ {
		select {
		case <-purger.done:
		case <-time.After(2 * time.Second):
			t.Fatal("purge did not run after an error")
		}
	}
	s.Stop()

	stopped := purger.count()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, stopped, purger.count())
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := New(newFakePurger(), time.Hour, time.Hour)
	s.Start()
	s.Stop()
	s.Stop()
}
