package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// maskPassword never prints a zero-length mask.
func maskPassword(pw string) string {
	return orNA(common.Mask(pw))
}

func (a *App) printNotFound(title string) {
	fmt.Fprintf(a.out, "Entry not found: '%s'\n", title)
}

// getCredentials prints the username and masked password of title.
func (a *App) getCredentials(ctx context.Context, db, title string, method vault.InputMethod) error {
	fmt.Fprintf(a.out, "Getting credentials for entry: '%s' (using %s input)\n", title, method)
	err := a.withSession(ctx, db, method, func(s Session) error {
		return a.showCredentials(ctx, s, title)
	})
	return a.handled("Error getting credentials", err)
}

func (a *App) showCredentials(ctx context.Context, s Session, title string) error {
	c, err := s.Lookup(ctx, title)
	if errors.Is(err, common.ErrorNotFound) {
		a.printNotFound(title)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Username: %s\n", orNA(c.Username))
	fmt.Fprintf(a.out, "Password: %s\n", maskPassword(c.Password))
	return nil
}

// getFullEntry prints every field of title, notes truncated.
func (a *App) getFullEntry(ctx context.Context, db, title string, method vault.InputMethod) error {
	fmt.Fprintf(a.out, "Getting full entry details for: '%s' (using %s input)\n", title, method)
	err := a.withSession(ctx, db, method, func(s Session) error {
		return a.showFullEntry(ctx, s, title)
	})
	return a.handled("Error getting entry details", err)
}

func (a *App) showFullEntry(ctx context.Context, s Session, title string) error {
	c, err := s.Lookup(ctx, title)
	if errors.Is(err, common.ErrorNotFound) {
		a.printNotFound(title)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nEntry Details:")
	fmt.Fprintf(a.out, "   Title: %s\n", c.Title)
	fmt.Fprintf(a.out, "   Username: %s\n", orNA(c.Username))
	fmt.Fprintf(a.out, "   Password: %s\n", maskPassword(c.Password))
	fmt.Fprintf(a.out, "   URL: %s\n", orNA(c.URL))
	fmt.Fprintf(a.out, "   Notes: %s\n", orNA(common.Truncate(c.Notes, a.cfg.NotesPreviewLen)))
	fmt.Fprintf(a.out, "   Has Autotype: %s\n", yesNo(c.HasAutotype()))
	if c.HasAutotype() {
		fmt.Fprintf(a.out, "   Autotype Sequence: %s\n", c.AutotypeSequence)
	}
	return nil
}

// runAutotype looks up title, counts down and plays its sequence.
func (a *App) runAutotype(ctx context.Context, db, title string, method vault.InputMethod) error {
	fmt.Fprintf(a.out, "Executing autotype sequence for entry: '%s' (using %s input)\n", title, method)
	err := a.withSession(ctx, db, method, func(s Session) error {
		return a.playAutotype(ctx, s, title)
	})
	return a.handled("Error executing autotype", err)
}

func (a *App) playAutotype(ctx context.Context, s Session, title string) error {
	if _, err := s.Lookup(ctx, title); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.printNotFound(title)
			return nil
		}
		return err
	}

	fmt.Fprintln(a.out, "Make sure the target application window is active!")
	if err := a.countdown(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Executing autotype sequence...")

	if err := s.PlayAutotype(ctx, title); err != nil {
		if isCancelled(err) {
			return err
		}
		fmt.Fprintf(a.out, "Error executing autotype: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "Autotype sequence completed successfully!")
	return nil
}

// countdown ticks once per second for the configured delay.
func (a *App) countdown(ctx context.Context) error {
	secs := int(a.cfg.AutotypeDelay / time.Second)
	if secs <= 0 {
		return nil
	}
	for i := secs; i > 0; i-- {
		fmt.Fprintf(a.out, "\rStarting autotype in %d seconds...", i)
		if err := sleep(ctx, time.Second); err != nil {
			fmt.Fprintln(a.out)
			return common.ErrCancelled
		}
	}
	fmt.Fprintln(a.out)
	return nil
}

// searchEntries lists entries whose title, username or url contain term.
func (a *App) searchEntries(ctx context.Context, db, term string, method vault.InputMethod) error {
	fmt.Fprintf(a.out, "Searching for entries containing '%s' (using %s input):\n", term, method)
	err := a.withSession(ctx, db, method, func(s Session) error {
		return a.showSearch(ctx, s, term)
	})
	return a.handled("Error searching entries", err)
}

func (a *App) showSearch(ctx context.Context, s Session, term string) error {
	found, err := s.Search(ctx, term, a.cfg.SearchLimit)
	if err != nil {
		return err
	}

	unique := dedupe(found)
	if len(unique) == 0 {
		fmt.Fprintf(a.out, "No entries found containing '%s'.\n", term)
		return nil
	}

	fmt.Fprintf(a.out, "\nFound %d matching entries:\n", len(unique))
	fmt.Fprintln(a.out, strings.Repeat("-", 60))
	for i, c := range unique {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c.Title)
		if c.Username != "" {
			fmt.Fprintf(a.out, "   Username: %s\n", c.Username)
		}
		if c.URL != "" {
			fmt.Fprintf(a.out, "   URL: %s\n", c.URL)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// dedupe drops entries whose ID was already seen, keeping first-seen order.
func dedupe(in []models.Credential) []models.Credential {
	seen := make(map[string]struct{}, len(in))
	out := make([]models.Credential, 0, len(in))
	for _, c := range in {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return out
}
