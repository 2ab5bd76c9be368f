// Package eye exposes the eye gesture API of the toolkit. No host provides eye
// sensing, so every operation reports ErrUnsupported instead of pretending to
// succeed.
package eye

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnsupported is returned by every operation that needs eye sensing
var ErrUnsupported = errors.New("eye gestures are not supported on this device")

// InfiniteTimeout disables the timeout of a calibration interval
const InfiniteTimeout = -1

// Gesture is an eye gesture
type Gesture int

const (
	LookAtScreen Gesture = iota
	LookAwayFromScreen
	Blink
	Wink
	DoubleBlink
	DoubleWink
)

var gestureNames = [...]string{
	LookAtScreen:       "LOOK_AT_SCREEN",
	LookAwayFromScreen: "LOOK_AWAY_FROM_SCREEN",
	Blink:              "BLINK",
	Wink:               "WINK",
	DoubleBlink:        "DOUBLE_BLINK",
	DoubleWink:         "DOUBLE_WINK",
}

// Gestures lists every eye gesture
func Gestures() []Gesture {
	out := make([]Gesture, len(gestureNames))
	for i := range gestureNames {
		out[i] = Gesture(i)
	}
	return out
}

func (g Gesture) String() string {
	if g < 0 || int(g) >= len(gestureNames) {
		return fmt.Sprintf("EyeGesture(%d)", int(g))
	}
	return gestureNames[g]
}

// Listener is called when a registered eye gesture is detected
type Listener func(g Gesture)

// Manager registers listeners for eye gestures and manages their calibration
type Manager struct{}

// NewManager returns the eye gesture manager
func NewManager() *Manager {
	return &Manager{}
}

// IsSupported reports whether g can be detected
func (m *Manager) IsSupported(g Gesture) bool {
	return false
}

// IsRegistered reports whether any listener is registered
func (m *Manager) IsRegistered() bool {
	return false
}

// Register starts delivering g to listener
func (m *Manager) Register(g Gesture, listener Listener) error {
	return unsupported("register", g)
}

// Unregister stops delivering g to listener
func (m *Manager) Unregister(g Gesture, listener Listener) error {
	return unsupported("unregister", g)
}

// StartCalibrationInterval begins collecting calibration samples for g
func (m *Manager) StartCalibrationInterval(g Gesture) error {
	return unsupported("start calibration", g)
}

// EndCalibrationInterval stops collecting calibration samples for g
func (m *Manager) EndCalibrationInterval(g Gesture) error {
	return unsupported("end calibration", g)
}

// IsCalibrationComplete reports whether g has been calibrated
func (m *Manager) IsCalibrationComplete(g Gesture) (bool, error) {
	return false, unsupported("check calibration", g)
}

// ApplyAndSaveCalibration stores the collected calibration for g
func (m *Manager) ApplyAndSaveCalibration(g Gesture) error {
	return unsupported("save calibration", g)
}

// LoadCalibration loads the stored calibration for g
func (m *Manager) LoadCalibration(g Gesture) error {
	return unsupported("load calibration", g)
}

// ClearCalibration drops the stored calibration for g
func (m *Manager) ClearCalibration(g Gesture) error {
	return unsupported("clear calibration", g)
}

// EnableGazeService turns the gaze service on or off
func (m *Manager) EnableGazeService(enabled bool) error {
	return fmt.Errorf("enable gaze service: %w", ErrUnsupported)
}

// SetGazeLogging turns gaze logging on or off
func (m *Manager) SetGazeLogging(enabled bool) error {
	return fmt.Errorf("gaze logging: %w", ErrUnsupported)
}

// IsGazeLogging reports whether gaze logging is on
func (m *Manager) IsGazeLogging() bool {
	return false
}

func unsupported(op string, g Gesture) error {
	log.Printf("eye: %s %s: unsupported", op, g)
	return fmt.Errorf("%s %s: %w", op, g, ErrUnsupported)
}
