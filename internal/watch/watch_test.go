package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"version":"1.0.0"}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{dir}, 100*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte(`{"version":"1.0.1"}`), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunCallbackErrorKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "contributors.json")
	require.NoError(t, os.WriteFile(file, []byte(`[]`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{dir}, 20*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return assert.AnError
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(`[{"name":"a"}]`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(file, []byte(`[{"name":"b"}]`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRunFileSurvivesReplace(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	other := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(file, []byte(`{"version":"1.0.0"}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, []string{file}, 20*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		})
	}()
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(other, []byte("# docs"), 0o644))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// Save by remove and recreate.
	require.NoError(t, os.Remove(file))
	require.NoError(t, os.WriteFile(file, []byte(`{"version":"1.0.1"}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	// The file is still watched after being replaced.
	require.NoError(t, os.WriteFile(file, []byte(`{"version":"1.0.2"}`), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 3*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestTargetMatches(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "contributors.json")
	require.NoError(t, os.WriteFile(file, []byte(`[]`), 0o644))
	sub := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(sub, 0o755))

	tgt := make(target)
	require.NoError(t, tgt.add(file))
	require.NoError(t, tgt.add(sub))

	assert.True(t, tgt.matches(file))
	assert.False(t, tgt.matches(filepath.Join(dir, "other.json")))
	assert.True(t, tgt.matches(filepath.Join(sub, "anything.yaml")))
	require.Error(t, tgt.add(filepath.Join(dir, "missing.json")))
}

func TestRunErrors(t *testing.T) {
	err := Run(context.Background(), nil, time.Millisecond, func(context.Context) error { return nil })
	require.Error(t, err)

	err = Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, time.Millisecond,
		func(context.Context) error { return nil })
	require.Error(t, err)
}
