package concierge

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"miohost/catalog"
	"miohost/models"
)

func newID() string { return uuid.New().String() }

// Manager is the default Service implementation: an in-memory session
// registry sharing one catalog, matcher, and flow engine.
type Manager struct {
	catalog *catalog.Catalog
	matcher *Matcher
	engine  *FlowEngine
	delay   time.Duration
	room    string
	logger  *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager builds a Manager. delay is the artificial bot reply delay;
// room is the placeholder room number used when a booking payload
// leaves it empty.
func NewManager(c *catalog.Catalog, delay time.Duration, room string, logger *zap.Logger) *Manager {
	return &Manager{
		catalog:  c,
		matcher:  NewMatcher(c),
		engine:   NewFlowEngine(c),
		delay:    delay,
		room:     room,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) CreateSession(locale models.Locale) *Session {
	s := newSession(newID(), locale, m.catalog, m.matcher, m.engine, m.delay, m.room, m.logger)
	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	m.logger.Info("session created", zap.String("session", s.ID()), zap.String("locale", string(locale)))
	return s
}

func (m *Manager) Session(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSuchSession
	}
	return s, nil
}

func (m *Manager) DropSession(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

var _ Service = (*Manager)(nil)
