// Package dispatch hands commands from input goroutines to the goroutine
// that owns the terminal. A submitter blocks until its command has been
// handled, so it never reads input while a game is running.
package dispatch

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Submit once the queue no longer accepts work.
var ErrStopped = errors.New("dispatch: queue stopped")

// Command is a request for the main loop.
type Command interface {
	command()
}

// LaunchGame asks the main loop to run a game until it exits.
type LaunchGame struct {
	GameID string
}

func (LaunchGame) command() {}

// Quit ends Run after it is acknowledged.
type Quit struct{}

func (Quit) command() {}

// Handler runs one command on the main goroutine.
type Handler func(ctx context.Context, cmd Command) error

type envelope struct {
	cmd   Command
	reply chan error
}

// Queue is a single-consumer command queue.
type Queue struct {
	msgChan  chan envelope
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		msgChan: make(chan envelope, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Submit enqueues cmd and waits for the handler's result.
func (q *Queue) Submit(ctx context.Context, cmd Command) error {
	select {
	case <-q.done:
		return ErrStopped
	default:
	}

	env := envelope{cmd: cmd, reply: make(chan error, 1)}
	select {
	case q.msgChan <- env:
	case <-q.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-env.reply:
		return err
	case <-q.stopped:
		// Run exited between accepting and answering.
		select {
		case err := <-env.reply:
			return err
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run handles commands on the calling goroutine until a Quit command,
// Stop, or ctx is done. A handler error goes back to its submitter and
// does not end the loop.
func (q *Queue) Run(ctx context.Context, handle Handler) error {
	defer close(q.stopped)

	for {
		select {
		case env := <-q.msgChan:
			if _, ok := env.cmd.(Quit); ok {
				q.stop()
				env.reply <- nil
				return nil
			}
			env.reply <- handle(ctx, env.cmd)
		case <-q.done:
			return nil
		case <-ctx.Done():
			q.stop()
			return ctx.Err()
		}
	}
}

// Stop makes Run return and Submit fail. Safe to call more than once.
func (q *Queue) Stop() {
	q.stop()
}

func (q *Queue) stop() {
	q.stopOnce.Do(func() { close(q.done) })
}
