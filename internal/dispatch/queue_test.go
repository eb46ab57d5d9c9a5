package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSubmitWaitsForHandler(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()

	var handled []string
	runDone := make(chan error, 1)
	go func() {
		runDone <- q.Run(ctx, func(_ context.Context, cmd Command) error {
			handled = append(handled, cmd.(LaunchGame).GameID)
			return nil
		})
	}()

	for _, id := range []string{"vortex", "numbers", "trivia"} {
		if err := q.Submit(ctx, LaunchGame{GameID: id}); err != nil {
			t.Fatalf("Submit(%s) = %v", id, err)
		}
		// Submit returns only after the handler ran.
		if handled[len(handled)-1] != id {
			t.Fatalf("handled %v after submitting %s", handled, id)
		}
	}

	if err := q.Submit(ctx, Quit{}); err != nil {
		t.Fatalf("Submit(Quit) = %v", err)
	}
	select {
	case err := <-runDone:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Quit")
	}

	if len(handled) != 3 {
		t.Errorf("handled %v", handled)
	}
}

func TestHandlerErrorGoesToSubmitter(t *testing.T) {
	q := NewQueue()
	ctx := context.Background()
	boom := errors.New("boom")

	go q.Run(ctx, func(context.Context, Command) error { return boom })

	if err := q.Submit(ctx, LaunchGame{GameID: "vortex"}); !errors.Is(err, boom) {
		t.Errorf("Submit = %v, expected boom", err)
	}
	// Loop is still running.
	if err := q.Submit(ctx, Quit{}); err != nil {
		t.Errorf("Quit after handler error = %v", err)
	}
}

func TestSubmitAfterStop(t *testing.T) {
	q := NewQueue()
	q.Stop()
	q.Stop()

	if err := q.Submit(context.Background(), LaunchGame{GameID: "vortex"}); !errors.Is(err, ErrStopped) {
		t.Errorf("Submit after Stop = %v", err)
	}
	if err := q.Run(context.Background(), nil); err != nil {
		t.Errorf("Run after Stop = %v", err)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithCancel(context.Background())

	runDone := make(chan error, 1)
	go func() { runDone <- q.Run(ctx, nil) }()
	cancel()

	select {
	case err := <-runDone:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run = %v, expected context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run ignored cancellation")
	}

	if err := q.Submit(context.Background(), Quit{}); !errors.Is(err, ErrStopped) {
		t.Errorf("Submit after cancel = %v", err)
	}
}

func TestSubmitHonorsContext(t *testing.T) {
	q := NewQueue()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Nobody runs the queue: the first command fills the buffer and waits
	// for a reply that never comes.
	if err := q.Submit(ctx, LaunchGame{GameID: "vortex"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Submit = %v, expected deadline", err)
	}
}
