package cli

import (
	"strings"

	"github.com/dmitrijs2005/keeperdemo/internal/config"
	"github.com/dmitrijs2005/keeperdemo/internal/vault"
)

type action int

const (
	actionNone action = iota
	actionGetCredentials
	actionGetFullEntry
	actionAutotype
	actionSearch
	actionInteractive
	actionCompare
)

// flagName is the flag that selects each single-shot action.
var flagName = map[action]string{
	actionGetCredentials: "get-credentials",
	actionGetFullEntry:   "get-full-entry",
	actionAutotype:       "autotype",
	actionSearch:         "search",
}

// options are the root command flags that are not part of Config.
type options struct {
	entry          string
	search         string
	getCredentials bool
	getFullEntry   bool
	autotype       bool
	interactive    bool
	compare        bool
}

// request is a resolved invocation.
type request struct {
	action action
	db     string
	target string
	method vault.InputMethod
}

const helpHint = "Use --help for available actions."

// resolve validates o against cfg and picks exactly one action.
// --interactive and --compare ignore every action flag.
func resolve(o options, cfg *config.Config) (request, error) {
	req := request{db: cfg.DatabasePath, method: vault.InputConsole}
	if cfg.UseGUI {
		req.method = vault.InputGUI
	}

	switch {
	case o.interactive:
		req.action = actionInteractive
		return req, nil
	case o.compare:
		req.action = actionCompare
		return req, nil
	}

	if req.db == "" {
		return request{}, usageErrorf("--db is required for non-interactive mode",
			"Use --interactive for interactive mode or --help for usage information.")
	}

	var picked []action
	if o.getCredentials {
		picked = append(picked, actionGetCredentials)
	}
	if o.getFullEntry {
		picked = append(picked, actionGetFullEntry)
	}
	if o.autotype {
		picked = append(picked, actionAutotype)
	}
	if o.search != "" {
		picked = append(picked, actionSearch)
	}

	switch len(picked) {
	case 0:
		return request{}, usageErrorf("no action specified", helpHint)
	case 1:
	default:
		return request{}, usageErrorf("only one action at a time", helpHint)
	}

	req.action = picked[0]
	if req.action == actionSearch {
		req.target = o.search
		return req, nil
	}

	req.target = strings.TrimSpace(o.entry)
	if req.target == "" {
		return request{}, usageErrorf("--entry is required for --"+flagName[req.action], helpHint)
	}
	return req, nil
}
