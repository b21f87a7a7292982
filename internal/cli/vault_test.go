package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/keeperdemo/internal/logging"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultAdapter_EndToEnd(t *testing.T) {
	env := newTestEnv(t, "", nil)
	env.console.answers = []string{"master", "master", "master", "p4ss", "master"}

	v := vaultAdapter{vault.New(env.app.prompters, nil, logging.Nop())}
	env.app.vault = v
	db := filepath.Join(t.TempDir(), "vault.db")

	require.Equal(t, 0, env.run("init", "--db", db))

	env.out.Reset()
	require.Equal(t, 0, env.run("add", "--db", db, "--title", "Site", "--username", "alice"))
	assert.Contains(t, env.out.String(), "Added entry 'Site'")

	env.out.Reset()
	require.Equal(t, 0, env.run("--db", db, "--entry", "Site", "--get-credentials"))
	assert.Contains(t, env.out.String(), "Username: alice\n")
	assert.Contains(t, env.out.String(), "Password: ****\n")
}

func TestVaultAdapter_OpenErrorIsNilSession(t *testing.T) {
	a := vaultAdapter{vault.New(Prompters{}, nil, nil)}

	s, err := a.Open(context.Background(), "missing.db", vault.InputConsole)
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestDefaultSeams(t *testing.T) {
	p := newPrompters(bufio.NewReader(strings.NewReader("")), &bytes.Buffer{})
	assert.Contains(t, p, vault.InputConsole)
	assert.Contains(t, p, vault.InputGUI)

	v := openVault(p, logging.Nop())
	_, ok := v.(Creator)
	assert.True(t, ok)
}
