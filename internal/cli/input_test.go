package cli

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/keeperdemo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	env := newTestEnv(t, "  hello world \nlast", nil)
	ctx := context.Background()

	got, err := env.app.readLine(ctx, "Name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name: ", env.out.String())

	got, err = env.app.readLine(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = env.app.readLine(ctx, "")
	require.ErrorIs(t, err, io.EOF)
}

func TestReadOptional_EOFIsEmpty(t *testing.T) {
	env := newTestEnv(t, "", nil)

	got, err := env.app.readOptional(context.Background(), "Path: ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadLine_Cancelled(t *testing.T) {
	env := newTestEnv(t, "ignored\n", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.app.readLine(ctx, "Name: ")
	require.ErrorIs(t, err, common.ErrCancelled)
}

func TestReadLine_CancelWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	env := newTestEnv(t, "", nil)
	env.app = newApp(pr, env.out, env.errw)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := env.app.readLine(ctx, "")
		done <- err
	}()
	cancel()

	require.ErrorIs(t, <-done, common.ErrCancelled)
}
