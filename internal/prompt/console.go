package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"golang.org/x/term"
)

// Test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	getState     = term.GetState
	restoreState = term.Restore
)

// Console reads passwords on the terminal.
type Console struct {
	// In is used when Fd is not a terminal.
	In *bufio.Reader
	// Out receives the label. Typically stderr so stdout stays clean.
	Out io.Writer
	// Fd is the terminal file descriptor, usually os.Stdin.Fd().
	Fd int
}

type readResult struct {
	pw  []byte
	err error
}

// PromptPassword prints label and returns the entered password. The caller
// owns the returned slice and should wipe it.
func (c *Console) PromptPassword(ctx context.Context, label string) ([]byte, error) {
	if _, err := fmt.Fprintf(c.Out, "%s: ", label); err != nil {
		return nil, err
	}

	tty := isTerminal(c.Fd)
	var state *term.State
	if tty {
		// ReadPassword only restores echo when it returns; keep a copy so an
		// interrupt mid-read does not leave the terminal silent.
		state, _ = getState(c.Fd)
	}

	read := readPassword
	ch := make(chan readResult, 1)
	go func() {
		if tty {
			pw, err := read(c.Fd)
			ch <- readResult{pw: pw, err: err}
			return
		}
		ch <- c.readLine()
	}()

	select {
	case <-ctx.Done():
		if state != nil {
			_ = restoreState(c.Fd, state)
		}
		fmt.Fprintln(c.Out)
		return nil, common.ErrCancelled
	case r := <-ch:
		if tty {
			fmt.Fprintln(c.Out)
		}
		if r.err != nil {
			return nil, fmt.Errorf("read password: %w", r.err)
		}
		return r.pw, nil
	}
}

func (c *Console) readLine() readResult {
	if c.In == nil {
		return readResult{err: errors.New("no input available")}
	}
	line, err := c.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return readResult{err: err}
	}
	return readResult{pw: []byte(strings.TrimRight(line, "\r\n"))}
}
