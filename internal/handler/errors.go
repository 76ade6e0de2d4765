package handler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Sentinel errors raised at the handler level.
var (
	ErrInvalidArguments = errors.New(config.ErrInvalidArguments)
	ErrUnknownCommand   = errors.New(config.ErrUnknownCommand)
)

// usageHints maps a verb to the message ID of its usage line.
var usageHints = map[string]string{
	config.CmdAdd:          config.MsgIDUsageAdd,
	config.CmdChange:       config.MsgIDUsageChange,
	config.CmdPhone:        config.MsgIDUsagePhone,
	config.CmdAll:          config.MsgIDUsageAll,
	config.CmdDelete:       config.MsgIDUsageDelete,
	config.CmdAddBirthday:  config.MsgIDUsageAddBday,
	config.CmdShowBirthday: config.MsgIDUsageShowBday,
	config.CmdBirthdays:    config.MsgIDUsageBirthdays,
	config.CmdExport:       config.MsgIDUsageExport,
	config.CmdCalendar:     config.MsgIDUsageCalendar,
}

// errorMapping turns one error kind into display text.
type errorMapping struct {
	kind   error
	render func(s *Service, verb string, err error) string
}

// errorTable is consulted in order; the first kind matched by errors.Is wins.
var errorTable = []errorMapping{
	{
		kind: ErrInvalidArguments,
		render: func(s *Service, verb string, _ error) string {
			return s.withUsage(verb, s.text(config.MsgIDInvalidArguments))
		},
	},
	{
		kind: book.ErrContactNotFound,
		render: func(s *Service, _ string, _ error) string {
			return s.text(config.MsgIDContactNotFound)
		},
	},
	{
		kind: book.ErrInvalidFormat,
		render: func(s *Service, verb string, err error) string {
			reason := err.Error()
			var fe *book.FormatError
			if errors.As(err, &fe) {
				reason = fe.Reason
			}
			return s.withUsage(verb, s.text(config.MsgIDInvalidArguments)+" "+reason)
		},
	},
}

// arity returns ErrInvalidArguments unless args has exactly want entries.
func arity(args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrInvalidArguments, want, len(args))
	}
	return nil
}

func (s *Service) withUsage(verb, msg string) string {
	id, ok := usageHints[verb]
	if !ok {
		return msg
	}
	return fmt.Sprintf(config.FormatUsage, msg, s.text(id))
}

// Wrap composes fn with both error layers and returns the boundary handler.
func (s *Service) Wrap(verb string, fn Func) Handler {
	return s.catchAll(verb, s.translate(verb, fn))
}

// translate is the inner layer: known error kinds become their message,
// anything else is passed through unchanged.
func (s *Service) translate(verb string, fn Func) Func {
	return func(args []string, b *book.AddressBook) (string, error) {
		out, err := fn(args, b)
		if err == nil {
			return out, nil
		}
		for _, m := range errorTable {
			if errors.Is(err, m.kind) {
				return m.render(s, verb, err), nil
			}
		}
		return "", err
	}
}

// catchAll is the outer layer. It renders every error and panic that got
// past translate as "Error: <message>".
func (s *Service) catchAll(verb string, fn Func) Handler {
	return func(args []string, b *book.AddressBook) (out string) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error(config.MsgHandlerRecover,
					config.LogKeyComponent, config.CompHandler,
					config.LogKeyCommand, verb,
					config.LogKeyError, r,
				)
				out = s.generic(fmt.Sprint(r))
			}
		}()

		res, err := fn(args, b)
		if err != nil {
			slog.Warn(config.MsgHandlerFallback,
				config.LogKeyComponent, config.CompHandler,
				config.LogKeyCommand, verb,
				config.LogKeyError, err,
			)
			return s.generic(err.Error())
		}
		return res
	}
}

func (s *Service) generic(msg string) string {
	return s.messages.Format(config.MsgIDGenericError, map[string]any{"Error": msg})
}
