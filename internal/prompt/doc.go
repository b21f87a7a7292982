// Package prompt reads master passwords from the user.
//
// Two input methods are provided:
//
//   - Console prints a label and reads from the terminal without echo
//     (golang.org/x/term). When stdin is not a terminal it reads one line
//     from the supplied reader, which keeps scripted use and tests simple.
//   - Dialog opens a full-screen password dialog rendered with bubbletea.
//
// Both honour context cancellation and report user interrupts as
// common.ErrCancelled.
package prompt
