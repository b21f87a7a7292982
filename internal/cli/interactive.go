package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

type loopState int

const (
	stateMenu loopState = iota
	stateAwaitingInput
	stateDispatching
	stateDone
)

const choiceExit = "6"

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(a.out, "Available actions:")
	fmt.Fprintln(a.out, "1. Search entries")
	fmt.Fprintln(a.out, "2. Get credentials")
	fmt.Fprintln(a.out, "3. Get full entry details")
	fmt.Fprintln(a.out, "4. Execute autotype sequence")
	fmt.Fprintln(a.out, "5. Compare GUI vs console")
	fmt.Fprintln(a.out, "6. Exit")
}

// runInteractive opens one session and serves the menu until the user
// exits. A failure to open the session is printed and is not an error.
func (a *App) runInteractive(ctx context.Context, method vault.InputMethod) error {
	fmt.Fprintf(a.out, "\n=== keeperdemo Interactive Mode (using %s input) ===\n", method)

	db := a.cfg.DatabasePath
	if db == "" {
		var err error
		if db, err = a.readOptional(ctx, "Enter path to database file: "); err != nil {
			return err
		}
	}
	if db == "" {
		fmt.Fprintln(a.out, "No database path provided. Exiting.")
		return nil
	}

	err := a.withSession(ctx, db, method, func(s Session) error {
		return a.menuLoop(ctx, s, db, method)
	})
	if err != nil && !isCancelled(err) {
		fmt.Fprintf(a.out, "Error in interactive mode: %v\n", err)
		return nil
	}
	return err
}

func (a *App) menuLoop(ctx context.Context, s Session, db string, method vault.InputMethod) error {
	state := stateMenu
	var choice string

	for state != stateDone {
		switch state {
		case stateMenu:
			a.printMenu()
			state = stateAwaitingInput

		case stateAwaitingInput:
			line, err := a.readLine(ctx, "\nEnter your choice (1-6): ")
			switch {
			case errors.Is(err, io.EOF):
				fmt.Fprintln(a.out)
				choice = choiceExit
			case err != nil:
				return err
			default:
				choice = line
			}
			state = stateDispatching

		case stateDispatching:
			next, err := a.dispatch(ctx, s, db, method, choice)
			if err != nil {
				return err
			}
			state = next
		}
	}
	return nil
}

// dispatch runs one menu choice against the open session. Handler failures
// are printed; only cancellation is returned.
func (a *App) dispatch(ctx context.Context, s Session, db string, method vault.InputMethod, choice string) (loopState, error) {
	var err error
	switch choice {
	case "1":
		var term string
		if term, err = a.readOptional(ctx, "Enter search term: "); err == nil && term != "" {
			err = a.handled("Error", a.showSearch(ctx, s, term))
		}
	case "2":
		var title string
		if title, err = a.readOptional(ctx, "Enter entry title: "); err == nil && title != "" {
			err = a.handled("Error", a.showCredentials(ctx, s, title))
		}
	case "3":
		var title string
		if title, err = a.readOptional(ctx, "Enter entry title: "); err == nil && title != "" {
			err = a.handled("Error", a.showFullEntry(ctx, s, title))
		}
	case "4":
		var title string
		if title, err = a.readOptional(ctx, "Enter entry title for autotype: "); err == nil && title != "" {
			err = a.handled("Error", a.playAutotype(ctx, s, title))
		}
	case "5":
		err = a.compareInputMethods(ctx, db)
	case choiceExit:
		fmt.Fprintln(a.out, "Exiting interactive mode...")
		return stateDone, nil
	default:
		fmt.Fprintln(a.out, "Invalid choice. Please enter 1-6.")
	}
	if err != nil {
		return stateDone, err
	}
	return stateMenu, nil
}
