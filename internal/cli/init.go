package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
	"github.com/spf13/cobra"
)

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errEmptyPassword    = errors.New("master password must not be empty")
)

func (a *App) prompter() (vault.PasswordPrompter, error) {
	p, ok := a.prompters[a.method()]
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: %s", vault.ErrUnsupportedInput, a.method())
	}
	return p, nil
}

func (a *App) requireDB(cmd string) error {
	if a.cfg.DatabasePath == "" {
		return usageErrorf("--db is required for "+cmd, usageHint)
	}
	return nil
}

func newInitCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new empty vault at --db",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireDB("init"); err != nil {
				return err
			}
			return a.initVault(cmd.Context(), a.cfg.DatabasePath)
		},
	}
}

// initVault asks for a new master password twice and creates the vault.
func (a *App) initVault(ctx context.Context, db string) error {
	cr, ok := a.vault.(Creator)
	if !ok {
		return errors.New("vault does not support creating databases")
	}
	p, err := a.prompter()
	if err != nil {
		return err
	}

	pw, err := p.PromptPassword(ctx, "New master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return errEmptyPassword
	}

	again, err := p.PromptPassword(ctx, "Repeat master password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)
	if !bytes.Equal(pw, again) {
		return errPasswordMismatch
	}

	if err := cr.Create(ctx, db, pw); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created vault %s\n", db)
	return nil
}
