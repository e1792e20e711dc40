package repl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/stackrepl/signals"
)

func TestLineScanner(t *testing.T) {
	var prompts bytes.Buffer
	s := NewLineScanner(strings.NewReader("push 1\r\npop\n"), &prompts)

	line, err := s.ReadLine("cmd> ")
	require.NoError(t, err)
	assert.Equal(t, "push 1", line)
	line, err = s.ReadLine("cmd> ")
	require.NoError(t, err)
	assert.Equal(t, "pop", line)
	_, err = s.ReadLine("cmd> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "cmd> cmd> cmd> ", prompts.String())
}

func TestLineScannerLongLine(t *testing.T) {
	long := "push " + strings.Repeat("0", 200*1024) + "7"
	s := NewLineScanner(strings.NewReader(long+"\npop\n"), nil)

	line, err := s.ReadLine("cmd> ")
	require.NoError(t, err)
	assert.Equal(t, long, line)
	line, err = s.ReadLine("cmd> ")
	require.NoError(t, err)
	assert.Equal(t, "pop", line)
}

func TestLineScannerDrivesEngine(t *testing.T) {
	var out bytes.Buffer
	s := NewLineScanner(strings.NewReader("push 1\npush 2\npop --backwards\n"), nil)
	e := NewEngine(s, alwaysRunning{}, &PlainReporter{Out: &out, Err: io.Discard}, "cmd> ")
	require.NoError(t, e.Run())
	assert.Equal(t, []int32{2}, e.Stack().Values())
	assert.Equal(t, []string{"push 1", "push 2", "pop --backwards"}, s.History())
}

func TestColorReporterKeepsText(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, true)
	r.Notice("popped %d", 3)
	r.Error(io.ErrUnexpectedEOF)
	assert.Contains(t, out.String(), "popped 3")
	assert.Contains(t, errOut.String(), io.ErrUnexpectedEOF.Error())

	_, ok := NewReporter(&out, &errOut, false).(*PlainReporter)
	assert.True(t, ok)
}

func TestLineScannerCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	done := make(chan struct{})
	s := NewLineScanner(pr, nil).CancelOn(done)

	errs := make(chan error, 1)
	go func() {
		_, err := s.ReadLine("cmd> ")
		errs <- err
	}()
	close(done)
	assert.ErrorIs(t, <-errs, ErrInterrupted)
}

func TestInterruptWhileBlockedEndsSession(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	m := signals.NewMonitor()
	s := NewLineScanner(pr, nil).CancelOn(m.Done())

	var out bytes.Buffer
	e := NewEngine(s, m, &PlainReporter{Out: &out, Err: io.Discard}, "cmd> ")
	finished := make(chan error, 1)
	go func() { finished <- e.Run() }()

	_, err := io.WriteString(pw, "push 3\n")
	require.NoError(t, err)
	m.Trigger()
	// Nothing more is written to the pipe; Run only returns if the pending
	// read is abandoned.
	require.NoError(t, <-finished)
	assert.True(t, strings.HasSuffix(out.String(), "\nExiting.\n"))
}
