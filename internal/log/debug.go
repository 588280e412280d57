// Package log writes debug traces for prompt renders to an optional file.
// Nothing is ever written to stdout or stderr: the shell captures stdout as
// the prompt and stderr would corrupt the terminal on every render.
package log

import (
	"log"
	"os"
	"sync"
)

// maxBuffered bounds the bytes held before a destination is chosen.
const maxBuffered = 64 << 10

// fileWriter buffers writes until a destination is configured, then
// flushes them to the file or drops them.
type fileWriter struct {
	mu      sync.Mutex
	file    *os.File
	buffer  []byte
	discard bool
}

var (
	sink   = &fileWriter{}
	logger = log.New(sink, "gitprompt ", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer.
func (w *fileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.discard {
		return len(p), nil
	}
	if w.file != nil {
		return w.file.Write(p)
	}
	if len(w.buffer)+len(p) <= maxBuffered {
		w.buffer = append(w.buffer, p...)
	}
	return len(p), nil
}

// SetFile directs debug output to path, appending to it. An empty path
// drops buffered and future output.
func SetFile(path string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		_ = sink.file.Close()
		sink.file = nil
	}

	if path == "" {
		sink.discard = true
		sink.buffer = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec
	if err != nil {
		sink.discard = true
		sink.buffer = nil
		return err
	}

	sink.file = f
	sink.discard = false
	if len(sink.buffer) > 0 {
		_, _ = f.Write(sink.buffer)
		sink.buffer = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	logger.Printf(format, args...)
}

// Close closes the debug log file if one is open.
func Close() error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file == nil {
		return nil
	}
	err := sink.file.Close()
	sink.file = nil
	return err
}
