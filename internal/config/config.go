package config

import "time"

// Config holds runtime settings for the keeperdemo CLI.
//
// Fields:
//   - DatabasePath: vault file used when --db is not given.
//   - UseGUI: request the master password through the graphical dialog.
//   - Verbose: log at debug level.
//   - AutotypeDelay: countdown before autotype starts typing.
//   - SearchLimit: maximum number of search results (<= 0 means no limit).
//   - NotesPreviewLen: characters of notes shown before truncation (<= 0 shows all).
type Config struct {
	DatabasePath    string
	UseGUI          bool
	Verbose         bool
	AutotypeDelay   time.Duration
	SearchLimit     int
	NotesPreviewLen int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = ""
	c.UseGUI = false
	c.Verbose = false
	c.AutotypeDelay = 5 * time.Second
	c.SearchLimit = 10
	c.NotesPreviewLen = 100
}
