package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/keeperdemo/internal/autotype"
	"github.com/dmitrijs2005/keeperdemo/internal/logging"
	"github.com/dmitrijs2005/keeperdemo/internal/models"
	"github.com/dmitrijs2005/keeperdemo/internal/prompt"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

// Vault opens credential databases.
type Vault interface {
	Open(ctx context.Context, path string, method vault.InputMethod) (Session, error)
}

// Session is an open database. Close must be called exactly once.
type Session interface {
	EntryCount(ctx context.Context) (int, error)
	// Lookup returns an error wrapping common.ErrorNotFound when no entry
	// has the exact title.
	Lookup(ctx context.Context, title string) (models.Credential, error)
	Search(ctx context.Context, query string, maxResults int) ([]models.Credential, error)
	PlayAutotype(ctx context.Context, title string) error
	Close() error
}

// Creator is implemented by vaults that can initialize new databases.
type Creator interface {
	Create(ctx context.Context, path string, password []byte) error
}

// Editor is implemented by sessions that accept new entries.
type Editor interface {
	Add(ctx context.Context, c models.Credential) (string, error)
}

// vaultAdapter exposes *vault.Vault through the Vault interface.
type vaultAdapter struct {
	*vault.Vault
}

func (v vaultAdapter) Open(ctx context.Context, path string, method vault.InputMethod) (Session, error) {
	s, err := v.Vault.Open(ctx, path, method)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Prompters collects the password prompters for every input method.
type Prompters map[vault.InputMethod]vault.PasswordPrompter

// newPrompters is a test seam building the console and GUI prompters.
var newPrompters = func(in *bufio.Reader, errw io.Writer) Prompters {
	return Prompters{
		vault.InputConsole: &prompt.Console{In: in, Out: errw, Fd: int(os.Stdin.Fd())},
		vault.InputGUI:     &prompt.Dialog{Title: "keeperdemo"},
	}
}

// openVault is a test seam building the vault used by every command.
var openVault = func(p Prompters, log logging.Logger) Vault {
	return vaultAdapter{vault.New(p, autotype.Xdotool{DelayMS: 12}, log)}
}
