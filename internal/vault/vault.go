package vault

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/keeperdemo/internal/autotype"
	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/dmitrijs2005/keeperdemo/internal/cryptox"
	"github.com/dmitrijs2005/keeperdemo/internal/dbx"
	"github.com/dmitrijs2005/keeperdemo/internal/filex"
	"github.com/dmitrijs2005/keeperdemo/internal/logging"
	"github.com/dmitrijs2005/keeperdemo/internal/repositories/entries"
	"github.com/dmitrijs2005/keeperdemo/internal/repositories/metadata"
)

// FormatVersion is written to the metadata table of new vaults.
const FormatVersion = "1"

// InputMethod selects how the master password is requested.
type InputMethod int

const (
	InputConsole InputMethod = iota
	InputGUI
)

func (m InputMethod) String() string {
	switch m {
	case InputConsole:
		return "console"
	case InputGUI:
		return "GUI"
	}
	return fmt.Sprintf("InputMethod(%d)", int(m))
}

// ErrUnsupportedInput is returned when no prompter is registered for a method.
var ErrUnsupportedInput = errors.New("unsupported input method")

// PasswordPrompter asks the user for a master password.
type PasswordPrompter interface {
	PromptPassword(ctx context.Context, label string) ([]byte, error)
}

// Vault creates and opens vault files.
type Vault struct {
	prompters map[InputMethod]PasswordPrompter
	typer     autotype.Typer
	log       logging.Logger
}

// New returns a Vault that prompts with the given prompters and plays
// autotype through typer. A nil typer disables autotype.
func New(prompters map[InputMethod]PasswordPrompter, typer autotype.Typer, log logging.Logger) *Vault {
	if log == nil {
		log = logging.Nop()
	}
	return &Vault{prompters: prompters, typer: typer, log: log}
}

// Create initializes a new, empty vault at path protected by password.
// It refuses to overwrite an existing file.
func (v *Vault) Create(ctx context.Context, path string, password []byte) error {
	path, err := filex.ExpandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("create %s: %w", path, common.ErrorAlreadyExists)
	}
	if err := filex.EnsureParentDir(path); err != nil {
		return err
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := RunMigrations(ctx, db, v.log); err != nil {
		return err
	}

	salt := cryptox.NewSalt()
	key := cryptox.DeriveMasterKey(password, salt)
	defer common.WipeByteArray(key)

	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeySalt, salt); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyVerifier, cryptox.MakeVerifier(key)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyFormat, []byte(FormatVersion))
	})
	if err != nil {
		return fmt.Errorf("write vault header: %w", err)
	}

	v.log.Info(ctx, "vault created", "path", path)
	return nil
}

// Open unlocks the vault at path, asking for the master password with the
// given input method. The returned session must be closed by the caller.
func (v *Vault) Open(ctx context.Context, path string, method InputMethod) (s *Session, err error) {
	prompter, ok := v.prompters[method]
	if !ok || prompter == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, method)
	}

	path, err = filex.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := filex.RequireFile(path); err != nil {
		return nil, err
	}

	log := v.log.With("db", path, "input", method.String())
	log.Debug(ctx, "opening vault")

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = db.Close()
		}
	}()

	salt, verifier, err := readHeader(ctx, db)
	if err != nil {
		return nil, err
	}

	password, err := prompter.PromptPassword(ctx, fmt.Sprintf("Enter master password for %s", filepath.Base(path)))
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	key := cryptox.DeriveMasterKey(password, salt)
	if subtle.ConstantTimeCompare(cryptox.MakeVerifier(key), verifier) == 0 {
		common.WipeByteArray(key)
		log.Warn(ctx, "wrong master password")
		return nil, common.ErrorUnauthorized
	}

	if err := RunMigrations(ctx, db, log); err != nil {
		common.WipeByteArray(key)
		return nil, err
	}

	log.Debug(ctx, "vault unlocked")
	return &Session{
		db:      db,
		key:     key,
		entries: entries.NewSQLiteRepository(db),
		typer:   v.typer,
		log:     log,
	}, nil
}

// readHeader checks that db is a vault and returns its salt and verifier.
// It only reads; schema upgrades wait until the password is verified.
func readHeader(ctx context.Context, db *sql.DB) (salt, verifier []byte, err error) {
	ok, err := dbx.TableExists(ctx, db, "metadata")
	if err != nil {
		return nil, nil, fmt.Errorf("read vault header: %w", err)
	}
	if !ok {
		return nil, nil, common.ErrorNotInitialized
	}

	repo := metadata.NewSQLiteRepository(db)
	if salt, err = repo.Get(ctx, metadata.KeySalt); err != nil {
		return nil, nil, fmt.Errorf("read vault header: %w", err)
	}
	if verifier, err = repo.Get(ctx, metadata.KeyVerifier); err != nil {
		return nil, nil, fmt.Errorf("read vault header: %w", err)
	}
	if len(salt) == 0 || len(verifier) == 0 {
		return nil, nil, common.ErrorNotInitialized
	}
	return salt, verifier, nil
}
