// Package console is the line-based launcher menu. It reads standard input
// on its own goroutine and hands each choice to the main loop through a
// dispatch queue.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/dispatch"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

// QuitKey ends the console session.
const QuitKey = 'q'

// InvalidInput is printed for anything that is not a menu key.
const InvalidInput = "Invalid input! Please try again!"

// Console prompts for a game key and submits the matching command.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	queue  *dispatch.Queue
	logger *log.Logger
}

// New creates a console reading lines from in and writing prompts to out.
func New(in io.Reader, out io.Writer, queue *dispatch.Queue, logger *log.Logger) *Console {
	if logger == nil {
		logger = log.Default()
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		queue:  queue,
		logger: logger,
	}
}

// Parse maps one input line to a command. Case and surrounding space are
// ignored; anything but a single known key is rejected.
func Parse(line string) (dispatch.Command, bool) {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) != 1 {
		return nil, false
	}
	key, _ := utf8.DecodeRuneInString(line)
	key = unicode.ToLower(key)

	if key == QuitKey {
		return dispatch.Quit{}, true
	}
	if id, ok := registry.ByKey(key); ok {
		return dispatch.LaunchGame{GameID: id}, true
	}
	return nil, false
}

func (c *Console) prompt() {
	for _, g := range registry.List() {
		if g.Key == 0 {
			continue
		}
		fmt.Fprintf(c.out, "Press %c to play %s.\n", unicode.ToUpper(g.Key), g.Title)
	}
	fmt.Fprintf(c.out, "Press %c to quit.\n", unicode.ToUpper(QuitKey))
}

// Run prompts until the quit key, end of input, or ctx is done. Every exit
// path submits Quit so the main loop stops too.
func (c *Console) Run(ctx context.Context) error {
	defer c.quit(ctx)

	for {
		c.prompt()
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("console: read input: %w", err)
			}
			return nil
		}

		cmd, ok := Parse(c.in.Text())
		if !ok {
			fmt.Fprintln(c.out, InvalidInput)
			continue
		}
		if _, quit := cmd.(dispatch.Quit); quit {
			fmt.Fprintln(c.out, "Exiting...")
			return nil
		}

		c.logger.Debug("console command", "cmd", fmt.Sprintf("%+v", cmd))
		if err := c.queue.Submit(ctx, cmd); err != nil {
			if errors.Is(err, dispatch.ErrStopped) || ctx.Err() != nil {
				return nil
			}
			c.logger.Error("command failed", "err", err)
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

func (c *Console) quit(ctx context.Context) {
	if err := c.queue.Submit(ctx, dispatch.Quit{}); err != nil && !errors.Is(err, dispatch.ErrStopped) {
		c.logger.Debug("quit not delivered", "err", err)
	}
}
