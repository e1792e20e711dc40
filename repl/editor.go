package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/chzyer/readline"
)

// Editor is a LineReader with terminal line editing and arrow-key history.
type Editor struct {
	rl    *readline.Instance
	stdin *readline.CancelableStdin

	// mu is held for the whole of a read, so Close can wait for the read
	// to finish before tearing the instance down.
	mu        sync.Mutex
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// EditorOptions configures NewEditor. A nil Stdin reads the process
// terminal; any other reader is treated as a plain stream with no raw mode.
type EditorOptions struct {
	HistoryLimit int
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
}

func NewEditor(opts EditorOptions) (*Editor, error) {
	limit := opts.HistoryLimit
	if limit == 0 {
		// readline treats 0 as "use the default"; we mean no history.
		limit = -1
	}
	cfg := &readline.Config{
		HistoryLimit:           limit,
		DisableAutoSaveHistory: true,
		Stdout:                 opts.Stdout,
		Stderr:                 opts.Stderr,
	}
	src := opts.Stdin
	if src == nil {
		src = os.Stdin
	} else {
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
		cfg.FuncGetWidth = func() int { return 80 }
		cfg.FuncOnWidthChanged = func(func()) {}
	}
	// readline only cancels a pending read when it owns this wrapper, and
	// Instance.Close never closes it. Keep our own so Close can.
	stdin := readline.NewCancelableStdin(src)
	cfg.Stdin = stdin

	rl, err := readline.NewEx(cfg)
	if err != nil {
		stdin.Close()
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}
	return &Editor{rl: rl, stdin: stdin}, nil
}

func (e *Editor) ReadLine(prompt string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return "", io.EOF
	}
	e.rl.SetPrompt(prompt)
	line, err := e.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

func (e *Editor) AddHistory(line string) error {
	return e.rl.SaveHistory(line)
}

// Close releases the terminal. It is safe to call from another goroutine
// while ReadLine is blocked; that read returns io.EOF.
func (e *Editor) Close() error {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		// Unblocks a pending Readline, which then releases mu.
		e.stdin.Close()
		e.mu.Lock()
		defer e.mu.Unlock()
		e.closeErr = e.rl.Close()
	})
	return e.closeErr
}
