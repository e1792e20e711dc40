// Package repl runs the interactive stack loop.
package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/stackrepl/command"
	"github.com/timewinder-dev/stackrepl/stack"
)

// RunFlag reports whether the loop may keep going.
type RunFlag interface {
	Running() bool
}

type Engine struct {
	Reader   LineReader
	Flag     RunFlag
	Reporter Reporter
	Prompt   string

	stack *stack.Stack
}

func NewEngine(r LineReader, flag RunFlag, rep Reporter, prompt string) *Engine {
	return &Engine{
		Reader:   r,
		Flag:     flag,
		Reporter: rep,
		Prompt:   prompt,
		stack:    stack.New(),
	}
}

func (e *Engine) Stack() *stack.Stack {
	return e.stack
}

// Run loops until shutdown is requested or the reader stops producing lines.
// It always finishes by printing the exit notice. The returned error is a
// read failure other than an interrupt or end of input; it has already been
// reported by the time Run returns.
func (e *Engine) Run() error {
	err := e.loop()
	e.Reporter.Printf("\nExiting.\n")
	return err
}

func (e *Engine) loop() error {
	for e.Flag.Running() {
		e.Reporter.Stack(e.stack.String())

		line, err := e.Reader.ReadLine(e.Prompt)
		if err != nil {
			if errors.Is(err, ErrInterrupted) || errors.Is(err, io.EOF) || !e.Flag.Running() {
				log.Debug().Err(err).Msg("input closed")
				return nil
			}
			e.Reporter.Error(err)
			return err
		}

		input := strings.TrimSpace(line)
		if err := e.Reader.AddHistory(input); err != nil {
			log.Debug().Err(err).Msg("couldn't record history")
		}
		e.Execute(command.Parse(input))
	}
	log.Debug().Msg("shutdown requested")
	return nil
}

// Execute applies a single command to the stack and reports the outcome.
func (e *Engine) Execute(cmd command.Command) {
	log.Debug().Interface("command", cmd).Int("depth", e.stack.Len()).Msg("execute")
	switch c := cmd.(type) {
	case command.Push:
		e.stack.Push(c.Value)
	case command.PushUsage:
		e.Reporter.Notice("usage: push <n>")
	case command.InvalidNumber:
		e.Reporter.Notice("invalid number: %s", c.Token)
	case command.Pop:
		if c.FromBottom {
			e.popBottom(c.Count)
		} else {
			e.popTop(c.Count)
		}
	case command.Empty:
	case command.Unknown:
		e.Reporter.Notice("unknown command: '%s'", c.Raw)
		e.Reporter.Printf("    Usage:\n")
		e.Reporter.Printf("      push <n>\n")
		e.Reporter.Printf("      pop [--backwards] [n]\n")
	}
}

func (e *Engine) popBottom(count int) {
	popped := e.stack.PopBottom(count)
	e.Reporter.Notice("popped from bottom: %s", stack.FormatValues(popped))
}

// popTop stops at the first empty pop; the rest of count is dropped.
func (e *Engine) popTop(count int) {
	for i := 0; i < count; i++ {
		v, ok := e.stack.Pop()
		if !ok {
			e.Reporter.Notice("stack is empty")
			return
		}
		e.Reporter.Notice("popped %d", v)
	}
}
