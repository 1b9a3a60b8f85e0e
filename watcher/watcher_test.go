package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	err := os.WriteFile(path, []byte("one"), 0600)
	require.Nil(t, err)

	var calls atomic.Int32
	changed := make(chan string, 8)
	w, err := New(path, 20*time.Millisecond, func(name string) {
		calls.Add(1)
		changed <- name
	})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	// give the watcher a moment before generating events
	time.Sleep(50 * time.Millisecond)
	err = os.WriteFile(filepath.Join(dir, "other.txt"), []byte("ignored"), 0600)
	require.Nil(t, err)
	err = os.WriteFile(path, []byte("two"), 0600)
	require.Nil(t, err)

	select {
	case name := <-changed:
		absPath, err := filepath.Abs(path)
		require.Nil(t, err)
		require.Equal(t, absPath, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	cancel()
	require.Nil(t, <-done)
	require.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestCloseStopsRun(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "missing.txt"), 0, func(string) {})
	require.Nil(t, err)
	require.Equal(t, DefaultDelay, w.delay)

	done := make(chan error, 1)
	go func() {
		done <- w.Run(context.Background())
	}()
	time.Sleep(20 * time.Millisecond)
	require.Nil(t, w.Close())
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
	require.Nil(t, w.Close())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nodir", "file.txt"), 0, func(string) {})
	require.NotNil(t, err)
}

func TestRunWaitsForCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	err := os.WriteFile(path, []byte("one"), 0600)
	require.Nil(t, err)

	var calls atomic.Int32
	entered := make(chan struct{}, 8)
	release := make(chan struct{})
	w, err := New(path, 20*time.Millisecond, func(string) {
		calls.Add(1)
		entered <- struct{}{}
		<-release
	})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	err = os.WriteFile(path, []byte("two"), 0600)
	require.Nil(t, err)
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}

	// Run cannot return while the callback is still running
	cancel()
	select {
	case <-done:
		t.Fatal("Run returned during callback")
	case <-time.After(100 * time.Millisecond):
	}
	close(release)
	require.Nil(t, <-done)

	count := calls.Load()
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, count, calls.Load())
}

func TestRunCancelDropsPending(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	err := os.WriteFile(path, []byte("one"), 0600)
	require.Nil(t, err)

	var calls atomic.Int32
	w, err := New(path, 300*time.Millisecond, func(string) {
		calls.Add(1)
	})
	require.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	err = os.WriteFile(path, []byte("two"), 0600)
	require.Nil(t, err)
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.Nil(t, <-done)

	time.Sleep(400 * time.Millisecond)
	require.Equal(t, int32(0), calls.Load())
}
