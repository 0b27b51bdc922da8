// Package logger provides levelled logging for the mevzuat CLI.
//
// Every line is timestamped. Lines always go to the log file attached with
// OpenFile; they are echoed to stderr only when verbose mode is enabled via
// the --verbose flag.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	sink    io.Writer
	now     = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the console writer used in verbose mode.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetSink sets the writer that receives every log line regardless of
// verbosity. Nil disables it.
func SetSink(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	sink = w
}

// OpenFile opens path in append mode and attaches it as the sink.
// The caller closes the returned file; closing detaches it.
func OpenFile(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	SetSink(f)
	return &fileSink{File: f}, nil
}

type fileSink struct {
	*os.File
}

func (f *fileSink) Close() error {
	mu.Lock()
	if sink == f.File {
		sink = nil
	}
	mu.Unlock()
	return f.File.Close()
}

// Tail returns the last n lines of the log file at path.
func Tail(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	return lines, scanner.Err()
}

func write(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if sink == nil && !verbose {
		return
	}
	line := fmt.Sprintf("%s [%s] %s\n", now().Format(time.RFC3339), level, fmt.Sprintf(format, args...))
	if sink != nil {
		_, _ = io.WriteString(sink, line)
	}
	if verbose {
		_, _ = io.WriteString(output, line)
	}
}

// Debug logs a diagnostic message.
func Debug(format string, args ...any) {
	write("DEBUG", format, args...)
}

// Section prints a section header if verbose mode is enabled.
// Sections are console decoration and are not written to the log file.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info logs an informational message.
func Info(format string, args ...any) {
	write("INFO", format, args...)
}

// Warn logs a recoverable problem.
func Warn(format string, args ...any) {
	write("WARN", format, args...)
}

// Error logs a failure that is being surfaced to the caller.
func Error(format string, args ...any) {
	write("ERROR", format, args...)
}

// Truncate shortens s to at most n runes for log output.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
