package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "", c.DatabasePath)
	assert.False(t, c.UseGUI)
	assert.Equal(t, 5*time.Second, c.AutotypeDelay)
	assert.Equal(t, 10, c.SearchLimit)
	assert.Equal(t, 100, c.NotesPreviewLen)
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("db", "", "")
	fs.Bool("gui", false, "")
	fs.BoolP("verbose", "v", false, "")
	fs.Duration("autotype-delay", 5*time.Second, "")
	fs.Int("search-limit", 10, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	v := NewViper()
	require.NoError(t, BindFlags(v, testFlags()))

	cfg, err := Load(v, "")
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "keeperdemo.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"db: /from/file.db\nsearch_limit: 3\nnotes_preview_len: 20\nautotype_delay: 2s\n"), 0o600))

	t.Setenv("KEEPERDEMO_SEARCH_LIMIT", "7")
	t.Setenv("KEEPERDEMO_GUI", "true")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--db", "/from/flag.db"}))

	v := NewViper()
	require.NoError(t, BindFlags(v, fs))

	cfg, err := Load(v, file)
	require.NoError(t, err)

	assert.Equal(t, "/from/flag.db", cfg.DatabasePath, "flag beats file")
	assert.Equal(t, 7, cfg.SearchLimit, "env beats file")
	assert.True(t, cfg.UseGUI)
	assert.Equal(t, 20, cfg.NotesPreviewLen)
	assert.Equal(t, 2*time.Second, cfg.AutotypeDelay)
}

func TestLoad_JSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"db":"vault.db","gui":true}`), 0o600))

	cfg, err := Load(NewViper(), file)
	require.NoError(t, err)
	assert.Equal(t, "vault.db", cfg.DatabasePath)
	assert.True(t, cfg.UseGUI)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("KEEPERDEMO_AUTOTYPE_DELAY", "-1s")

	_, err := Load(NewViper(), "")
	require.ErrorIs(t, err, ErrInvalid)
}
