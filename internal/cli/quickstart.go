package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

// askOneFunc is a test seam for survey.AskOne.
var askOneFunc = survey.AskOne

func (a *App) confirm(msg string) (bool, error) {
	var yes bool
	if err := askOneFunc(&survey.Confirm{Message: msg, Default: false}, &yes); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, common.ErrCancelled
		}
		return false, err
	}
	return yes, nil
}

// quickStart is shown when keeperdemo runs without arguments.
func (a *App) quickStart(ctx context.Context) error {
	fmt.Fprintln(a.out, "keeperdemo")
	fmt.Fprintln(a.out, strings.Repeat("=", 40))
	fmt.Fprintln(a.out, "No arguments provided. Here are some quick examples:")
	fmt.Fprintln(a.out, "\nQuick start options:")
	fmt.Fprintln(a.out, "  keeperdemo --interactive           # Interactive mode with console input")
	fmt.Fprintln(a.out, "  keeperdemo --interactive --gui     # Interactive mode with GUI input")
	fmt.Fprintln(a.out, "  keeperdemo --help                  # Show all options")
	fmt.Fprintln(a.out, "\nFor GUI vs Console comparison:")
	fmt.Fprintln(a.out, "  keeperdemo --compare")
	fmt.Fprintln(a.out)

	start, err := a.confirm("Would you like to start in interactive mode?")
	if err != nil {
		return err
	}
	if !start {
		fmt.Fprintln(a.out, "Run with --help for full usage information.")
		return nil
	}

	gui, err := a.confirm("Use GUI for password input?")
	if err != nil {
		return err
	}
	method := vault.InputConsole
	if gui {
		method = vault.InputGUI
	}
	return a.runInteractive(ctx, method)
}
