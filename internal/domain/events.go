package domain

import "openprism/internal/touchpad"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventGestureDetected      EventType = "GestureDetected"
	EventCardSelected         EventType = "CardSelected"
	EventCardClicked          EventType = "CardClicked"
	EventDismissRequested     EventType = "DismissRequested"
	EventNotificationPosted   EventType = "NotificationPosted"
	EventGracePeriodEnded     EventType = "GracePeriodEnded"
	EventGracePeriodCancelled EventType = "GracePeriodCancelled"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventAppReady             EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GestureDetectedEvent is emitted when a screen's gesture pad classifies a gesture
type GestureDetectedEvent struct {
	Screen  string
	Gesture touchpad.Gesture
}

func (e GestureDetectedEvent) Type() EventType { return EventGestureDetected }

// CardSelectedEvent is emitted when another card of a timeline is selected
type CardSelectedEvent struct {
	Screen   string
	Position int
	ID       int64
}

func (e CardSelectedEvent) Type() EventType { return EventCardSelected }

// CardClickedEvent is emitted when the selected card is activated
type CardClickedEvent struct {
	Screen   string
	Position int
	ID       int64
}

func (e CardClickedEvent) Type() EventType { return EventCardClicked }

// DismissRequestedEvent is emitted when the user swipes a screen away
type DismissRequestedEvent struct {
	Screen string
}

func (e DismissRequestedEvent) Type() EventType { return EventDismissRequested }

// NotificationPostedEvent is emitted when a notification is posted
type NotificationPostedEvent struct {
	Notification Notification
}

func (e NotificationPostedEvent) Type() EventType { return EventNotificationPosted }

// GracePeriodEndedEvent is emitted when a notification's grace period runs out
type GracePeriodEndedEvent struct {
	NotificationID string
}

func (e GracePeriodEndedEvent) Type() EventType { return EventGracePeriodEnded }

// GracePeriodCancelledEvent is emitted when the user interrupts a grace period
type GracePeriodCancelledEvent struct {
	NotificationID string
}

func (e GracePeriodCancelledEvent) Type() EventType { return EventGracePeriodCancelled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
