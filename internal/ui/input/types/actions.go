package types

import "openprism/internal/touchpad"

// Touchpad actions
type MotionAction struct {
	Event touchpad.MotionEvent
}

func (a MotionAction) Type() string { return "motion" }

type KeyEventAction struct {
	Code touchpad.KeyCode
}

func (a KeyEventAction) Type() string { return "key_event" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Menu actions
type MenuChooseAction struct{}

func (a MenuChooseAction) Type() string { return "menu_choose" }

type MenuCloseAction struct{}

func (a MenuCloseAction) Type() string { return "menu_close" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
