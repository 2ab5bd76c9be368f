package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"openprism/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventGestureDetected      = domain.EventGestureDetected
	EventCardSelected         = domain.EventCardSelected
	EventCardClicked          = domain.EventCardClicked
	EventDismissRequested     = domain.EventDismissRequested
	EventNotificationPosted   = domain.EventNotificationPosted
	EventGracePeriodEnded     = domain.EventGracePeriodEnded
	EventGracePeriodCancelled = domain.EventGracePeriodCancelled
	EventError                = domain.EventError
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
	EventAppReady             = domain.EventAppReady
)

// Re-export domain event types
type GestureDetectedEvent = domain.GestureDetectedEvent
type CardSelectedEvent = domain.CardSelectedEvent
type CardClickedEvent = domain.CardClickedEvent
type DismissRequestedEvent = domain.DismissRequestedEvent
type NotificationPostedEvent = domain.NotificationPostedEvent
type GracePeriodEndedEvent = domain.GracePeriodEndedEvent
type GracePeriodCancelledEvent = domain.GracePeriodCancelledEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	nextID    int
	handlers  map[EventType][]subscription
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers without blocking
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventGestureDetected, EventCardSelected:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		log.Printf("Event bus closed, dropping event: %v", event.Type())
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher. Pending events are discarded.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Make a copy to avoid holding lock during handler execution
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			handlers := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlers[i] = s.handler
			}
			b.mu.RUnlock()

			// Call each handler in a goroutine to avoid blocking
			for _, handler := range handlers {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
