package autotype

import (
	"context"
	"fmt"
	"time"
)

// Typer injects input into the focused window.
type Typer interface {
	TypeText(ctx context.Context, text string) error
	PressKey(ctx context.Context, keysym string) error
}

// FieldSource resolves placeholder names to values.
type FieldSource interface {
	Field(name string) (string, bool)
}

// sleep is a test seam for time-based pauses.
var sleep = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Play parses seq, resolves fields from src and drives typer. An empty seq
// falls back to DefaultSequence. Playback stops at the first error.
func Play(ctx context.Context, typer Typer, seq string, src FieldSource) error {
	if seq == "" {
		seq = DefaultSequence
	}
	tokens, err := Parse(seq)
	if err != nil {
		return fmt.Errorf("parse sequence: %w", err)
	}

	for _, tok := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch tok.Kind {
		case KindText:
			err = typer.TypeText(ctx, tok.Value)
		case KindField:
			v, _ := src.Field(tok.Value)
			if v != "" {
				err = typer.TypeText(ctx, v)
			}
		case KindKey:
			for i := 0; i < tok.Repeat && err == nil; i++ {
				err = typer.PressKey(ctx, keys[tok.Value])
			}
		case KindDelay:
			err = sleep(ctx, tok.Delay)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
