package metrics

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02_15-04-05"

// Writer appends one line per completed trial to the result log.
type Writer struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create result file: %w", err)
	}

	return &Writer{
		path: path,
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

func (w *Writer) Path() string {
	return w.path
}

func (w *Writer) WriteTrial(seed uint64, strat1, strat2 int) error {
	_, err := fmt.Fprintf(w.buf, "Seed: %d, Final Bankrolls: %d, %d\n", seed, strat1, strat2)
	if err != nil {
		return fmt.Errorf("failed to write trial: %w", err)
	}
	return nil
}

// Close flushes buffered trials and releases the file. The file is closed
// even when the flush fails.
func (w *Writer) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush result file: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close result file: %w", closeErr)
	}
	return nil
}

// DefaultPath names a result file after the requested trial count and the start time.
func DefaultPath(dir string, numSims int, now time.Time) string {
	name := fmt.Sprintf("%d_simulations_%s.txt", numSims, now.Format(timestampLayout))
	return filepath.Join(dir, name)
}

// EarlyExitPath marks path as an interrupted run with completed trials,
// keeping its directory and extension.
func EarlyExitPath(path string, completed int) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if ext == base {
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, fmt.Sprintf("%s_early_exit_%d_simulations_completed%s", stem, completed, ext))
}

// RenameEarlyExit moves the result file at path to its early exit name.
func RenameEarlyExit(path string, completed int) (string, error) {
	newPath := EarlyExitPath(path, completed)
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("failed to rename result file: %w", err)
	}
	return newPath, nil
}
