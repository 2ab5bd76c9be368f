package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/ui/input/modes"
	"openprism/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

// New creates a handler in timeline mode. Mouse cells are scaled by cellWidth
// and cellHeight; clock stamps motion events and may be nil.
func New(cellWidth, cellHeight float64, clock func() time.Duration) *Handler {
	h := &Handler{
		currentMode: types.ModeTimeline,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeTimeline] = modes.NewTimelineMode(modes.NewPointerTracker(cellWidth, cellHeight, clock))
	h.modes[types.ModeMenu] = modes.NewMenuMode()

	return h
}

// HandleKey returns the actions for msg and whether the key was consumed
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg)
	if !consumed {
		return nil, false
	}
	return h.applyModeChanges(actions), true
}

// HandleMouse returns the actions for msg
func (h *Handler) HandleMouse(msg tea.MouseMsg) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}
	return h.applyModeChanges(handler.HandleMouse(msg))
}

// applyModeChanges performs mode changes in place, keeping every other action
func (h *Handler) applyModeChanges(actions []types.Action) []types.Action {
	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.ChangeMode(changeMode.Mode)...)
		} else {
			allActions = append(allActions, action)
		}
	}
	return allActions
}

// ChangeMode switches modes and returns the actions of leaving the old one and
// entering the new one
func (h *Handler) ChangeMode(mode types.Mode) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit()...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter()...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeTimeline
	}
	return h.currentMode
}
