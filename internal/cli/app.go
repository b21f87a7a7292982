package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/keeperdemo/internal/config"
	"github.com/dmitrijs2005/keeperdemo/internal/logging"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

// App carries the resolved configuration and the I/O of one invocation.
type App struct {
	cfg       *config.Config
	vault     Vault
	prompters Prompters
	log       logging.Logger
	in        *bufio.Reader
	out       io.Writer
	errw      io.Writer
}

func newApp(in io.Reader, out, errw io.Writer) *App {
	var cfg config.Config
	cfg.LoadDefaults()
	return &App{
		cfg:  &cfg,
		log:  logging.Nop(),
		in:   bufio.NewReader(in),
		out:  out,
		errw: errw,
	}
}

// configure installs cfg and builds the vault unless one was injected.
func (a *App) configure(cfg *config.Config) {
	a.cfg = cfg
	a.log = logging.New(a.errw, cfg.Verbose)
	if a.prompters == nil {
		a.prompters = newPrompters(a.in, a.errw)
	}
	if a.vault == nil {
		a.vault = openVault(a.prompters, a.log)
	}
}

func (a *App) method() vault.InputMethod {
	if a.cfg.UseGUI {
		return vault.InputGUI
	}
	return vault.InputConsole
}

// withSession opens db with method, runs fn and closes the session on
// every path. A close failure is returned only when fn succeeded.
func (a *App) withSession(ctx context.Context, db string, method vault.InputMethod, fn func(Session) error) (err error) {
	s, err := a.vault.Open(ctx, db, method)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// handled converts a handler failure into a printed message. Only user
// cancellation is passed on.
func (a *App) handled(prefix string, err error) error {
	if err == nil {
		return nil
	}
	if isCancelled(err) {
		return err
	}
	a.log.Debug(context.Background(), "handler failed", "error", err)
	fmt.Fprintf(a.out, "%s: %v\n", prefix, err)
	return nil
}

// sleep is a test seam for the autotype countdown.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
