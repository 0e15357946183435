//go:build linux || darwin

package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchWait(t *testing.T) {
	dir := writeEnvDir(t, map[string]string{"A": "1\n", "B": "two\n"})
	ta := newTestApp(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := newRootCmd(ta.app)
	cmd.SetArgs([]string{"watch", "--wait", "A,B", dir})
	cmd.SetOut(&ta.stdout)
	cmd.SetErr(&ta.stderr)

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Equal(t, "A=1 B=two\n", ta.stdout.String())
}

func TestWatchStopsWithContext(t *testing.T) {
	dir := writeEnvDir(t, map[string]string{"A": "1\n"})
	ta := newTestApp(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	cmd := newRootCmd(ta.app)
	cmd.SetArgs([]string{"watch", dir})
	cmd.SetOut(&ta.stdout)
	cmd.SetErr(&ta.stderr)

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Equal(t, "A=1\n", ta.stdout.String())
}
