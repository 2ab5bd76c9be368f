package notification

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"openprism/internal/domain"
	"openprism/internal/eventbus"
)

// Manager posts notifications and keeps the ones still active
type Manager struct {
	bus eventbus.EventBus

	mu     sync.Mutex
	active map[string]domain.Notification
	order  []string
}

// NewManager creates a manager publishing on bus, which may be nil
func NewManager(bus eventbus.EventBus) *Manager {
	return &Manager{
		bus:    bus,
		active: make(map[string]domain.Notification),
	}
}

// Notify posts n and returns its id. A new id is generated unless n has one.
func (m *Manager) Notify(n domain.Notification) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.When.IsZero() {
		n.When = time.Now()
	}

	m.mu.Lock()
	if _, exists := m.active[n.ID]; !exists {
		m.order = append(m.order, n.ID)
	}
	m.active[n.ID] = n
	m.mu.Unlock()

	log.Printf("notification: posted %s %q", n.ID, n.Title())
	if m.bus != nil {
		m.bus.Publish(eventbus.NotificationPostedEvent{Notification: n})
	}
	return n.ID
}

// Get returns an active notification
func (m *Manager) Get(id string) (domain.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.active[id]
	return n, ok
}

// Cancel removes an active notification
func (m *Manager) Cancel(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[id]; !ok {
		return false
	}
	delete(m.active, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// Active returns the active notifications, oldest first
func (m *Manager) Active() []domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Notification, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.active[id])
	}
	return out
}
