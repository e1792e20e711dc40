package repl

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"sync"
)

// MaxLineSize bounds a single line read by LineScanner.
const MaxLineSize = 16 << 20

// ErrInterrupted is returned by a LineReader when the user interrupts a read.
var ErrInterrupted = errors.New("interrupted")

// LineReader is the engine's source of input lines. ReadLine returns
// ErrInterrupted or io.EOF for the two expected ways a session ends.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	AddHistory(line string) error
}

type scanResult struct {
	line string
	err  error
}

// LineScanner reads lines from a plain io.Reader, for piped input where no
// terminal editing is possible. Reading happens in a background goroutine
// so that a pending ReadLine can be abandoned through the cancel channel.
type LineScanner struct {
	scanner *bufio.Scanner
	prompts io.Writer
	cancel  <-chan struct{}
	history []string

	start   sync.Once
	results chan scanResult
}

// NewLineScanner reads from r. Prompts are written to prompts, which may be
// nil to suppress them.
func NewLineScanner(r io.Reader, prompts io.Writer) *LineScanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return &LineScanner{
		scanner: scanner,
		prompts: prompts,
		results: make(chan scanResult),
	}
}

// CancelOn makes a pending or future ReadLine return ErrInterrupted once
// done is closed.
func (l *LineScanner) CancelOn(done <-chan struct{}) *LineScanner {
	l.cancel = done
	return l
}

func (l *LineScanner) scan() {
	defer close(l.results)
	for l.scanner.Scan() {
		l.results <- scanResult{line: strings.TrimSuffix(l.scanner.Text(), "\r")}
	}
	if err := l.scanner.Err(); err != nil {
		l.results <- scanResult{err: err}
	}
}

func (l *LineScanner) ReadLine(prompt string) (string, error) {
	if l.prompts != nil {
		if _, err := io.WriteString(l.prompts, prompt); err != nil {
			return "", err
		}
	}
	l.start.Do(func() { go l.scan() })
	select {
	case res, ok := <-l.results:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-l.cancel:
		return "", ErrInterrupted
	}
}

func (l *LineScanner) AddHistory(line string) error {
	l.history = append(l.history, line)
	return nil
}

// History returns the lines recorded so far.
func (l *LineScanner) History() []string {
	return l.history
}
