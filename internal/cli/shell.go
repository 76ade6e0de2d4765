// Package cli runs the interactive read-loop of the assistant.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/handler"
	"github.com/tartampluch/go-contacts/internal/messages"
)

// Shell reads commands line by line and prints the replies.
type Shell struct {
	in       io.Reader
	out      io.Writer
	book     *book.AddressBook
	handlers map[string]handler.Handler
	messages *messages.Catalog
	prompt   string
}

// NewShell wires a shell around an address book and its command service.
func NewShell(in io.Reader, out io.Writer, b *book.AddressBook, svc *handler.Service, catalog *messages.Catalog, prompt string) *Shell {
	return &Shell{
		in:       in,
		out:      out,
		book:     b,
		handlers: svc.Handlers(),
		messages: catalog,
		prompt:   prompt,
	}
}

// ParseInput splits a line on whitespace. The verb is lower-cased; a blank
// line yields an empty verb.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run loops until EOF, an exit command or ctx cancellation.
// Lines are read on a separate goroutine so a cancelled ctx ends the loop
// even while a read is still blocked.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.println(s.messages.Get(config.MsgIDWelcome)); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := s.readLines(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.out, s.prompt); err != nil {
			return fmt.Errorf("%s: %w", config.ErrOutputWrite, err)
		}

		var line string
		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompShell)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					return fmt.Errorf("%s: %w", config.ErrInputRead, err)
				}
				slog.Info(config.MsgShellStopped, config.LogKeyComponent, config.CompShell)
				return nil
			}
			line = l
		}

		reply, stop := s.Execute(line)
		if reply != "" {
			if err := s.println(reply); err != nil {
				return err
			}
		}
		if stop {
			slog.Info(config.MsgShellStopped, config.LogKeyComponent, config.CompShell)
			return nil
		}
	}
}

// readLines feeds input lines until EOF, a read error or ctx cancellation.
// The error channel receives exactly one value before lines is closed.
func (s *Shell) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// Execute runs one input line and returns the reply and whether the loop
// should stop.
func (s *Shell) Execute(line string) (string, bool) {
	verb, args := ParseInput(line)
	if verb == "" {
		return "", false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompShell,
		config.LogKeyCommand, verb,
		config.LogKeyArgs, len(args),
	)

	switch verb {
	case config.CmdExit, config.CmdClose:
		return s.messages.Get(config.MsgIDGoodbye), true
	case config.CmdHello:
		return s.messages.Get(config.MsgIDGreeting), false
	}

	h, err := s.lookup(verb)
	if errors.Is(err, handler.ErrUnknownCommand) {
		slog.Debug(config.MsgCommandUnknown,
			config.LogKeyComponent, config.CompShell,
			config.LogKeyCommand, verb,
		)
		return s.messages.Get(config.MsgIDUnknownCommand), false
	}
	return h(args, s.book), false
}

func (s *Shell) lookup(verb string) (handler.Handler, error) {
	h, ok := s.handlers[verb]
	if !ok {
		return nil, fmt.Errorf("%w: %s", handler.ErrUnknownCommand, verb)
	}
	return h, nil
}

func (s *Shell) println(text string) error {
	if _, err := fmt.Fprintln(s.out, text); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOutputWrite, err)
	}
	return nil
}
