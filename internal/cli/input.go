package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
)

type lineResult struct {
	line string
	err  error
}

// readLine prints prompt and reads one line from the app input. The
// trailing newline and surrounding spaces are trimmed. If EOF occurs after
// some input was read, the partial line is returned; EOF on an empty line
// is returned as io.EOF. A cancelled ctx aborts the wait with
// common.ErrCancelled.
func (a *App) readLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", common.ErrCancelled
	}
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return "", err
	}

	ch := make(chan lineResult, 1)
	go func() {
		line, err := a.in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(a.out)
		return "", common.ErrCancelled
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, io.EOF) && len(r.line) > 0 {
				return strings.TrimSpace(r.line), nil
			}
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

// readOptional is readLine where EOF counts as an empty answer.
func (a *App) readOptional(ctx context.Context, prompt string) (string, error) {
	s, err := a.readLine(ctx, prompt)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		return "", nil
	}
	return s, err
}
