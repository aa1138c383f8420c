package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/m-mizutani/gt"
	"github.com/pipewatch/pipewatch/pkg/domain/mock"
	"github.com/pipewatch/pipewatch/pkg/usecase"
)

func TestPoller(t *testing.T) {
	clock := clockwork.NewFakeClock()
	refreshed := make(chan struct{}, 16)

	mockUC := &mock.UseCaseMock{
		RefreshAllFunc: func(ctx context.Context) error {
			refreshed <- struct{}{}
			return nil
		},
	}

	poller := usecase.NewPoller(mockUC, 3*time.Second, usecase.WithPollerClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- poller.Run(ctx)
	}()

	waitRefresh := func() {
		select {
		case <-refreshed:
		case <-time.After(5 * time.Second):
			t.Fatal("no refresh cycle observed")
		}
	}

	// The first cycle runs before the first tick.
	waitRefresh()

	clock.BlockUntil(1)
	clock.Advance(3 * time.Second)
	waitRefresh()

	clock.BlockUntil(1)
	clock.Advance(3 * time.Second)
	waitRefresh()

	cancel()
	err := <-done
	gt.B(t, errors.Is(err, context.Canceled)).True()
	gt.B(t, len(mockUC.RefreshAllCalls()) >= 3).True()
}

func TestPollerKeepsGoingAfterFailure(t *testing.T) {
	clock := clockwork.NewFakeClock()
	refreshed := make(chan struct{}, 16)

	var calls int
	mockUC := &mock.UseCaseMock{
		RefreshAllFunc: func(ctx context.Context) error {
			calls++
			refreshed <- struct{}{}
			if calls == 1 {
				return errors.New("backend unavailable")
			}
			return nil
		},
	}

	poller := usecase.NewPoller(mockUC, time.Second, usecase.WithPollerClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- poller.Run(ctx)
	}()

	select {
	case <-refreshed:
	case <-time.After(5 * time.Second):
		t.Fatal("initial refresh never ran")
	}

	// The failed first cycle must not stop the loop.
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	select {
	case <-refreshed:
	case <-time.After(5 * time.Second):
		t.Fatal("loop stopped after a failed cycle")
	}

	cancel()
	<-done
}
