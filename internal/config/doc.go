// Package config defines runtime settings for keeperdemo and loads them.
//
// Sources are layered, later ones winning:
//
//  1. LoadDefaults
//  2. an optional config file (JSON, YAML or TOML, chosen by extension)
//  3. environment variables prefixed with KEEPERDEMO_ (KEEPERDEMO_DB, KEEPERDEMO_GUI, ...)
//  4. command-line flags bound with BindFlags
package config
