package autotype

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNoTyper is returned when no input injection tool is available.
var ErrNoTyper = errors.New("xdotool not found in PATH")

// execCommand is a test seam for exec.CommandContext.
var execCommand = exec.CommandContext

// lookPath is a test seam for exec.LookPath.
var lookPath = exec.LookPath

// Xdotool types through the xdotool binary (X11).
type Xdotool struct {
	// Path overrides the binary location; empty means look it up in PATH.
	Path string
	// DelayMS is xdotool's per-keystroke delay.
	DelayMS int
}

func (x Xdotool) bin() (string, error) {
	if x.Path != "" {
		return x.Path, nil
	}
	p, err := lookPath("xdotool")
	if err != nil {
		return "", ErrNoTyper
	}
	return p, nil
}

func (x Xdotool) run(ctx context.Context, args ...string) error {
	bin, err := x.bin()
	if err != nil {
		return err
	}
	out, err := execCommand(ctx, bin, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("xdotool %s: %w: %s", args[0], err, out)
	}
	return nil
}

func (x Xdotool) TypeText(ctx context.Context, text string) error {
	return x.run(ctx, "type", "--clearmodifiers", "--delay", fmt.Sprint(x.DelayMS), "--", text)
}

func (x Xdotool) PressKey(ctx context.Context, keysym string) error {
	return x.run(ctx, "key", "--clearmodifiers", keysym)
}
