// Package signals turns an OS interrupt into a one-way shutdown flag.
package signals

import (
	"errors"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var ErrAlreadyInstalled = errors.New("interrupt handler already installed")

// Monitor holds the shutdown flag. It starts out running and flips to
// stopped once, on the first interrupt or Trigger.
type Monitor struct {
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}

	mu        sync.Mutex
	installed bool
	sigs      chan os.Signal
	quit      chan struct{}
	watching  sync.WaitGroup
	hooks     []func()
}

func NewMonitor() *Monitor {
	return &Monitor{
		done: make(chan struct{}),
	}
}

// Install registers for os.Interrupt and starts watching for it.
func (m *Monitor) Install() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.installed {
		return ErrAlreadyInstalled
	}
	m.installed = true
	m.sigs = make(chan os.Signal, 1)
	m.quit = make(chan struct{})
	signal.Notify(m.sigs, os.Interrupt)
	m.watching.Add(1)
	go m.watch(m.sigs, m.quit)
	return nil
}

func (m *Monitor) watch(sigs <-chan os.Signal, quit <-chan struct{}) {
	defer m.watching.Done()
	for {
		select {
		case sig := <-sigs:
			log.Info().Str("signal", sig.String()).Msg("received interrupt")
			m.Trigger()
		case <-m.done:
			return
		case <-quit:
			return
		}
	}
}

// Stop unregisters the handler and waits for the watcher to exit. The flag
// keeps its current value.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if m.sigs != nil {
		signal.Stop(m.sigs)
		close(m.quit)
		m.sigs = nil
	}
	m.mu.Unlock()
	// The watcher may be inside Trigger, which takes mu.
	m.watching.Wait()
}

// Running reports whether shutdown has not been requested yet.
func (m *Monitor) Running() bool {
	return !m.stopped.Load()
}

// Done is closed on shutdown.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// OnShutdown registers fn to run once when shutdown is requested. If that
// has already happened fn runs immediately.
func (m *Monitor) OnShutdown(fn func()) {
	m.mu.Lock()
	if m.stopped.Load() {
		m.mu.Unlock()
		fn()
		return
	}
	m.hooks = append(m.hooks, fn)
	m.mu.Unlock()
}

// Trigger requests shutdown. Calls after the first are no-ops.
func (m *Monitor) Trigger() {
	m.once.Do(func() {
		m.mu.Lock()
		m.stopped.Store(true)
		hooks := m.hooks
		m.hooks = nil
		m.mu.Unlock()
		close(m.done)
		for _, fn := range hooks {
			fn()
		}
	})
}
