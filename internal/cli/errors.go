package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
)

// UsageError reports bad, missing or conflicting flags. It is raised before
// any vault call and makes the process exit with status 1.
type UsageError struct {
	Msg  string
	Hint string
}

func (e *UsageError) Error() string { return e.Msg }

func usageErrorf(msg, hint string) *UsageError {
	return &UsageError{Msg: msg, Hint: hint}
}

// isCancelled reports whether err stems from a user interrupt.
func isCancelled(err error) bool {
	return common.IsCancelled(err) || errors.Is(err, context.Canceled)
}
