package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abgdnv/inventory/internal/inventory/validator"
)

const (
	actionPrompt  = "Action: "
	confirmPrompt = "Are you sure you want to exit? (y/n): "
)

type state int

const (
	stateContinue state = iota
	stateExit
)

type action func(ctx context.Context) (state, error)

// Loop reads commands from the operator and dispatches them until exit is confirmed.
type Loop struct {
	prompter validator.Prompter
	out      io.Writer
	logger   *slog.Logger
	actions  map[Command]action
}

// NewLoop creates a Loop with a handler for every Command.
func NewLoop(h *Handler, prompter validator.Prompter, out io.Writer, logger *slog.Logger) *Loop {
	l := &Loop{
		prompter: prompter,
		out:      out,
		logger:   logger.With("component", "shell"),
	}
	l.actions = map[Command]action{
		CmdViewAll:        continueAfter(h.ListAll),
		CmdViewByCategory: continueAfter(h.ListByCategory),
		CmdAdd:            continueAfter(h.Add),
		CmdUpdate:         continueAfter(h.Update),
		CmdDelete:         continueAfter(h.Delete),
		CmdExit:           l.confirmExit,
	}
	return l
}

func continueAfter(f func(ctx context.Context) error) action {
	return func(ctx context.Context) (state, error) {
		return stateContinue, f(ctx)
	}
}

// Run shows the menu and executes commands until the operator exits, the input ends
// or ctx is cancelled. End of input counts as a confirmed exit and returns nil.
// Store failures end the loop and are returned.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.DebugContext(ctx, "Shell started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(l.out, menu()); err != nil {
			return fmt.Errorf("failed to write menu: %w", err)
		}

		token, err := l.prompter.Prompt(actionPrompt)
		if err != nil {
			return l.endOfInput(ctx, err)
		}

		cmd, err := ParseCommand(token)
		if err != nil {
			l.logger.DebugContext(ctx, "Unrecognized command", "token", token)
			if _, err := fmt.Fprintln(l.out, msgInvalidCommand); err != nil {
				return err
			}
			continue
		}

		l.logger.DebugContext(ctx, "Dispatching command", "command", cmd.String())
		next, err := l.actions[cmd](ctx)
		if err != nil {
			return l.endOfInput(ctx, err)
		}
		if next == stateExit {
			l.logger.DebugContext(ctx, "Shell stopped")
			return nil
		}
	}
}

// confirmExit asks for confirmation. Only "y" or "yes", ignoring surrounding blanks, confirms.
func (l *Loop) confirmExit(_ context.Context) (state, error) {
	answer, err := l.prompter.Prompt(confirmPrompt)
	if err != nil {
		return stateContinue, err
	}
	switch strings.TrimSpace(answer) {
	case "y", "yes":
		return stateExit, nil
	default:
		return stateContinue, nil
	}
}

// endOfInput turns io.EOF into a clean exit and passes every other error through.
func (l *Loop) endOfInput(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		l.logger.DebugContext(ctx, "Input closed, exiting")
		_, _ = fmt.Fprintln(l.out)
		return nil
	}
	return err
}
