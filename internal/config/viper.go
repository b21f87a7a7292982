package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads.
const EnvPrefix = "KEEPERDEMO"

// Keys shared by the config file, the environment and bound flags.
const (
	KeyDatabase        = "db"
	KeyGUI             = "gui"
	KeyVerbose         = "verbose"
	KeyAutotypeDelay   = "autotype_delay"
	KeySearchLimit     = "search_limit"
	KeyNotesPreviewLen = "notes_preview_len"
)

// flagKeys maps flag names onto config keys.
var flagKeys = map[string]string{
	"db":             KeyDatabase,
	"gui":            KeyGUI,
	"verbose":        KeyVerbose,
	"autotype-delay": KeyAutotypeDelay,
	"search-limit":   KeySearchLimit,
}

// NewViper returns a viper instance with defaults and environment lookup
// configured. Flags are attached later with BindFlags.
func NewViper() *viper.Viper {
	var d Config
	d.LoadDefaults()

	v := viper.New()
	v.SetDefault(KeyDatabase, d.DatabasePath)
	v.SetDefault(KeyGUI, d.UseGUI)
	v.SetDefault(KeyVerbose, d.Verbose)
	v.SetDefault(KeyAutotypeDelay, d.AutotypeDelay)
	v.SetDefault(KeySearchLimit, d.SearchLimit)
	v.SetDefault(KeyNotesPreviewLen, d.NotesPreviewLen)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the known flags present in fs. Only flags the user
// actually set override lower layers.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads cfgFile (if not empty) into v and returns the merged Config.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{
		DatabasePath:    v.GetString(KeyDatabase),
		UseGUI:          v.GetBool(KeyGUI),
		Verbose:         v.GetBool(KeyVerbose),
		AutotypeDelay:   v.GetDuration(KeyAutotypeDelay),
		SearchLimit:     v.GetInt(KeySearchLimit),
		NotesPreviewLen: v.GetInt(KeyNotesPreviewLen),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects settings that cannot be used.
func (c *Config) Validate() error {
	if c.AutotypeDelay < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalid, KeyAutotypeDelay)
	}
	return nil
}
