// Package cli implements the keeperdemo command line: flag and mode
// resolution, one handler per demo action, the interactive menu and the
// console/GUI input comparison.
//
// Handlers talk to the credential store only through the Vault and Session
// interfaces. Each single-shot handler opens one session, performs one
// action, prints the result and closes the session on every path.
// Handler failures are printed at the handler boundary; only usage errors
// and unexpected failures change the exit code, and a user interrupt exits 0.
package cli
