// Package session owns the lifetime of the streaming-session backend and
// the HTTP surface it is served on.
package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// State tracks the lifecycle of the session resource.
type State int

const (
	Uninitialized State = iota
	Running
	ShuttingDown
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Resource is the contract a streaming-session backend must satisfy.
// Backends that lack a uniform start/stop surface are wrapped into this
// interface once, at this boundary, rather than probed for capabilities at
// call sites.
type Resource interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Manager acquires the session resource at server start-up and releases it
// at termination. It is acquired once and read-only-shared afterwards;
// concurrent request handlers never mutate it.
type Manager struct {
	resource Resource
	logger   *slog.Logger

	mu    sync.Mutex
	state State
}

// NewManager creates a manager for the given resource.
func NewManager(resource Resource, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{resource: resource, logger: logger}
}

// Start acquires the resource. A start failure is returned to the caller:
// the server fails fast instead of serving in an undefined degraded state.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Uninitialized {
		return fmt.Errorf("session manager already %s", m.state)
	}
	if err := m.resource.Start(ctx); err != nil {
		m.state = Stopped
		return fmt.Errorf("starting session resource: %w", err)
	}
	m.state = Running
	m.logger.Info("session manager started")
	return nil
}

// Stop releases the resource. Release failures are logged and swallowed;
// shutdown always completes. Stop is idempotent.
func (m *Manager) Stop(ctx context.Context) {
	m.mu.Lock()
	if m.state == ShuttingDown || m.state == Stopped {
		m.mu.Unlock()
		return
	}
	started := m.state == Running
	m.state = ShuttingDown
	m.mu.Unlock()

	if started {
		if err := m.resource.Stop(ctx); err != nil {
			m.logger.Warn("error stopping session resource", "error", err)
		}
	}

	m.mu.Lock()
	m.state = Stopped
	m.mu.Unlock()
	m.logger.Info("session manager stopped")
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CloserResource adapts a backend that only exposes Close into a Resource.
type CloserResource struct {
	Closer io.Closer
}

func (r CloserResource) Start(context.Context) error { return nil }

func (r CloserResource) Stop(context.Context) error { return r.Closer.Close() }
