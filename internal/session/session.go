// Package session keeps one contact form per visitor.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTTL is how long an untouched session is kept.
const DefaultTTL = 30 * time.Minute

// Factory builds the controller for a new session.
type Factory func() *contact.Controller

type entry struct {
	ctrl     *contact.Controller
	lastSeen time.Time
}

// Manager maps session ids to contact controllers and evicts idle ones.
type Manager struct {
	factory Factory
	ttl     time.Duration
	now     func() time.Time
	logger  zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewManager returns an empty Manager. ttl <= 0 selects DefaultTTL.
func NewManager(factory Factory, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		logger:   logging.Component("session"),
		sessions: make(map[string]*entry),
	}
}

// Get returns the controller for id, creating a fresh session when id is
// empty, malformed or unknown. The returned id is the one to hand back to
// the visitor.
func (m *Manager) Get(id string) (string, *contact.Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := uuid.Parse(id); err == nil {
		if e, ok := m.sessions[id]; ok {
			e.lastSeen = m.now()
			return id, e.ctrl, false
		}
	}

	id = uuid.NewString()
	m.sessions[id] = &entry{ctrl: m.factory(), lastSeen: m.now()}
	m.logger.Debug().Str("session", id).Int("active", len(m.sessions)).Msg("session created")
	return id, m.sessions[id].ctrl, true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep closes and forgets sessions idle for longer than the TTL. Sessions
// with a submission in flight are kept until it resolves.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	cutoff := m.now().Add(-m.ttl)
	var stale []*contact.Controller
	for id, e := range m.sessions {
		if e.lastSeen.After(cutoff) {
			continue
		}
		if e.ctrl.State().Status == contact.StatusSubmitting {
			continue
		}
		stale = append(stale, e.ctrl)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, c := range stale {
		_ = c.Close()
	}
	if len(stale) > 0 {
		m.logger.Info().Int("evicted", len(stale)).Msg("evicted idle contact sessions")
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done, then closes every session.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Close()
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Close tears down every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range sessions {
		_ = e.ctrl.Close()
	}
}
