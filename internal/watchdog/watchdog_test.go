package watchdog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWatch_NoParentPID_ReturnsImmediately(t *testing.T) {
	done := make(chan struct{})
	go func() {
		Watch(context.Background(), 0, zerolog.Nop(), func(int) {})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return immediately for parentPID <= 0")
	}
}

func TestWatch_ExitsWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var exited bool
	done := make(chan struct{})

	go func() {
		Watch(ctx, os.Getpid(), zerolog.Nop(), func(int) { exited = true })
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after context cancellation")
	}
	assert.False(t, exited, "exit must not be called on context cancellation")
}

func TestAlive_CurrentProcess(t *testing.T) {
	assert.True(t, alive(os.Getpid()))
}
