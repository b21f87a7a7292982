package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/spf13/cobra"
)

func newAddCmd(a *App) *cobra.Command {
	var c models.Credential

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the vault at --db",
		Long: `Add an entry to the vault at --db. The master password is asked first,
then the password of the new entry (leave it empty for none).`,
		Example: `  keeperdemo add --db ~/vault.db --title "My Website" --username alice --url https://example.com`,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireDB("add"); err != nil {
				return err
			}
			if c.Title == "" {
				return usageErrorf("--title is required for add", usageHint)
			}
			return a.addEntry(cmd.Context(), a.cfg.DatabasePath, c)
		},
	}

	f := cmd.Flags()
	f.StringVar(&c.Title, "title", "", "entry title")
	f.StringVar(&c.Username, "username", "", "entry username")
	f.StringVar(&c.URL, "url", "", "entry url")
	f.StringVar(&c.Notes, "notes", "", "free-form notes")
	f.StringVar(&c.AutotypeSequence, "autotype-sequence", "", "autotype sequence, e.g. {USERNAME}{TAB}{PASSWORD}{ENTER}")
	return cmd
}

// addEntry opens db, asks for the entry password and stores c.
func (a *App) addEntry(ctx context.Context, db string, c models.Credential) error {
	p, err := a.prompter()
	if err != nil {
		return err
	}

	return a.withSession(ctx, db, a.method(), func(s Session) error {
		ed, ok := s.(Editor)
		if !ok {
			return errors.New("vault does not support adding entries")
		}

		pw, err := p.PromptPassword(ctx, fmt.Sprintf("Password for '%s'", c.Title))
		if err != nil {
			return err
		}
		c.Password = string(pw)
		common.WipeByteArray(pw)

		id, err := ed.Add(ctx, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Added entry '%s' (%s)\n", c.Title, id)
		return nil
	})
}
