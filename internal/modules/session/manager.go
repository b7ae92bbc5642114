package session

import (
	"errors"
	"sync"
	"time"

	"github.com/reusedev/prompt-studio/internal/modules/cache"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
)

var ErrBusy = errors.New("another action is still running for this session")

// Manager keeps session states in memory until they sit idle for ttl, and
// guards each session against overlapping actions.
type Manager struct {
	states *cache.Manager[State]
	ttl    time.Duration

	mu   sync.Mutex
	busy map[string]struct{}
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		states: cache.NewManager[State](ttl, ttl),
		ttl:    ttl,
		busy:   make(map[string]struct{}),
	}
}

// Get returns a copy of the session's state, or the defaults for a new or
// expired session.
func (m *Manager) Get(id string) State {
	s, found, err := m.states.GetValue(id)
	if err != nil {
		logs.Logger.Warn().Err(err).Str("session", id).Msg("read session")
	}
	if !found {
		return NewState()
	}
	return s.clone()
}

func (m *Manager) Put(id string, s State) error {
	s.UpdatedAt = time.Now()
	return m.states.SetWithExpiration(id, s.clone(), m.ttl)
}

func (m *Manager) Delete(id string) error {
	return m.states.Delete(id)
}

// Acquire marks the session busy. The returned func releases it.
func (m *Manager) Acquire(id string) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.busy[id]; ok {
		return nil, ErrBusy
	}
	m.busy[id] = struct{}{}
	return func() {
		m.mu.Lock()
		delete(m.busy, id)
		m.mu.Unlock()
	}, nil
}
