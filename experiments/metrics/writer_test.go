package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Run("writes one line per trial", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "results.txt")
		w, err := NewWriter(path)
		require.NoError(t, err)

		require.NoError(t, w.WriteTrial(18446744073709551615, 120, 80))
		require.NoError(t, w.WriteTrial(3, 0, 0))
		require.NoError(t, w.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t,
			"Seed: 18446744073709551615, Final Bankrolls: 120, 80\nSeed: 3, Final Bankrolls: 0, 0\n",
			string(data))
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "results.txt"))
		require.Error(t, err)
	})
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	got := DefaultPath("output", 500, now)

	require.Equal(t, filepath.Join("output", "500_simulations_2024-03-09_14-05-07.txt"), got)
}

func TestEarlyExitPath(t *testing.T) {
	t.Run("keeps directory and extension", func(t *testing.T) {
		got := EarlyExitPath(filepath.Join("output", "500_simulations.txt"), 42)
		require.Equal(t, filepath.Join("output", "500_simulations_early_exit_42_simulations_completed.txt"), got)
	})

	t.Run("path without extension", func(t *testing.T) {
		require.Equal(t, "results_early_exit_0_simulations_completed", EarlyExitPath("results", 0))
	})

	t.Run("only the last extension is kept", func(t *testing.T) {
		require.Equal(t, "run.log_early_exit_3_simulations_completed.txt", EarlyExitPath("run.log.txt", 3))
	})
}

func TestRenameEarlyExit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	got, err := RenameEarlyExit(path, 7)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "results_early_exit_7_simulations_completed.txt"), got)
	require.FileExists(t, got)
	require.NoFileExists(t, path)
}
