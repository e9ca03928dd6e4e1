// Package shell runs the interactive budget menu over a line-oriented
// console.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"
)

const (
	choiceAdd      = "1"
	choiceSummary  = "2"
	choiceCategory = "3"
	choiceExit     = "4"
)

const menuPrompt = "Choose an option (1-4): "

// errExit ends the menu loop normally.
var errExit = errors.New("exit requested")

// Shell is the menu-driven control loop. Every flow reloads the store, so
// the shell itself holds no ledger state between choices.
type Shell struct {
	Store Store
	Now   func() time.Time

	in  *bufio.Reader
	out io.Writer

	commands map[string]func(ctx context.Context) error
}

// New creates a Shell reading choices from in and printing to out.
func New(store Store, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		Store: store,
		Now:   time.Now,
		in:    bufio.NewReader(in),
		out:   out,

		commands: make(map[string]func(ctx context.Context) error),
	}

	s.Register(choiceAdd, s.addEntry)
	s.Register(choiceSummary, s.showSummary)
	s.Register(choiceCategory, s.showExpensesByCategory)
	s.Register(choiceExit, s.exit)

	return s
}

// Register binds a menu choice to a flow.
func (s *Shell) Register(choice string, flow func(ctx context.Context) error) {
	s.commands[choice] = flow
}

// Run shows the menu until the user exits or input ends. It returns an error
// only when a flow fails in a way the user cannot correct, such as an
// unreadable ledger file.
func (s *Shell) Run(ctx context.Context) error {
	slog.DebugContext(ctx, "shell started")
	for {
		s.displayMenu()
		choice, err := s.prompt(menuPrompt)
		if err != nil {
			return s.stop(ctx, err)
		}

		flow, ok := s.commands[choice]
		if !ok {
			s.println("Invalid choice. Please try again.")
			continue
		}

		if err := flow(ctx); err != nil {
			return s.stop(ctx, err)
		}
	}
}

func (s *Shell) stop(ctx context.Context, err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		slog.DebugContext(ctx, "shell stopped", "reason", err)
		return nil
	}
	return err
}

func (s *Shell) displayMenu() {
	s.println("\nPersonal Budget Tracker")
	s.println("1. Add Income/Expense")
	s.println("2. View Budget Summary")
	s.println("3. View Expenses by Category")
	s.println("4. Exit")
}

func (s *Shell) exit(_ context.Context) error {
	s.println("Exiting the program. Goodbye!")
	return errExit
}
