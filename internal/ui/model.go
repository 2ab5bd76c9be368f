package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"openprism/internal/config"
	"openprism/internal/domain"
	"openprism/internal/eventbus"
	"openprism/internal/eye"
	"openprism/internal/notification"
	"openprism/internal/touchpad"
	"openprism/internal/ui/input"
	inputtypes "openprism/internal/ui/input/types"
	"openprism/internal/ui/views"
	"openprism/internal/widget"
)

// tickInterval drives page animations and the slider
const tickInterval = 50 * time.Millisecond

// statusTimeout is how long a status message stays up
const statusTimeout = 3 * time.Second

// toast is a revealed notification shown over the timeline during its grace period
type toast struct {
	id     string
	card   *widget.CardBuilder
	reader notification.Reader
	grace  *widget.GracePeriod
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	width  int
	height int
	help   help.Model
	keys   keyMap

	inPagerMode bool // tracks if we're currently in pager mode
	quitting    bool

	screens       []*screen // screen stack, the last one has focus
	slider        *widget.Slider
	progress      *widget.Indeterminate
	toast         *toast
	toastPad      *touchpad.Detector
	menu          *optionsMenu
	notifications *notification.Manager
	eyes          *eye.Manager

	statusMessage string
	statusIsError bool

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	// commands produced by widget callbacks while handling a message
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
	helpOps *HelpOps
}

// NewModel creates a new UI model showing the main timeline. notifications may be
// nil, in which case the model posts through its own manager.
func NewModel(bus eventbus.EventBus, cfg *config.Config, notifications *notification.Manager) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if notifications == nil {
		notifications = notification.NewManager(bus)
	}

	m := &Model{
		bus:           bus,
		config:        cfg,
		help:          help.New(),
		keys:          newKeyMap(),
		slider:        widget.NewSlider(widget.WithGracePeriod(cfg.Slider.GracePeriod()), widget.WithScrollerTimeout(cfg.Slider.ScrollerTimeout())),
		notifications: notifications,
		eyes:          eye.NewManager(),
		renderer:      views.NewRenderer(),
		helpRenderer:  NewHelpRenderer(),
		inputHandler:  input.New(cfg.Touchpad.CellWidth, cfg.Touchpad.CellHeight, nil),
	}
	m.toastPad = m.newDetector().SetBaseListener(m.onToastGesture)
	m.pushScreen(m.newScreen(mainScreenName, mainCards()))
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, consumed := m.inputHandler.HandleKey(msg)
		if !consumed && m.menu != nil {
			m.menu.list, cmd = m.menu.list.Update(msg)
		}
		m.processActions(actions)

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		m.processActions(m.inputHandler.HandleMouse(msg))

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}

	return m, m.flush(cmd)
}

// flush batches cmd with the commands queued by callbacks
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil
	if m.quitting {
		cmds = append(cmds, func() tea.Msg { return quitMsg{} })
	}
	return tea.Batch(cmds...)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		m.handleEvent(msg.Event)
		return nil

	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return nil
		}
		for _, s := range m.screens {
			s.pager.Step()
		}
		return tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.setError(fmt.Sprintf("Help unavailable: %v", msg.err))
		}
		return nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming; restart the tick loop
		m.inPagerMode = false
		return tick()

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return nil

	case quitMsg:
		return tea.Quit
	}
	return nil
}

// processActions processes the actions from the input handler
func (m *Model) processActions(actions []inputtypes.Action) {
	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.MotionAction:
			if m.toast != nil {
				m.toastPad.OnMotionEvent(a.Event)
			} else if s := m.top(); s != nil {
				s.view.OnMotionEvent(a.Event)
			}

		case inputtypes.KeyEventAction:
			if m.toast != nil {
				m.toastPad.OnKeyEvent(a.Code)
			} else if s := m.top(); s != nil {
				s.view.OnKeyEvent(a.Code)
			}

		case inputtypes.ToggleHelpAction:
			m.showHelp()

		case inputtypes.QuitAction:
			m.quitting = true

		case inputtypes.MenuChooseAction:
			m.chooseMenuItem()

		case inputtypes.MenuCloseAction:
			m.closeMenu()
		}
	}
}

// handleEvent applies a domain event forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.NotificationPostedEvent:
		reader := notification.NewReader(e.Notification)
		if reader.ShouldReveal() && m.config.Notifications.Reveal {
			m.showToast(e.Notification.ID, reader)
		} else {
			m.setStatus(fmt.Sprintf("Notification: %s", e.Notification.Title()))
		}

	case eventbus.GracePeriodEndedEvent:
		if m.toast != nil && m.toast.id == e.NotificationID {
			m.toast = nil
		}
		m.notifications.Cancel(e.NotificationID)

	case eventbus.ErrorEvent:
		m.setError(e.Message)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.top()
	if s == nil {
		return ""
	}

	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        s.name,
		Card:          s.card(),
		Position:      s.view.SelectedItemPosition(),
		Count:         s.view.Count(),
		Transition:    s.pager.Transition(s.adapter),
		Slider:        m.slider.State(),
		Now:           time.Now(),
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		HelpModel:     m.help,
		Keys:          m.keys,
	}
	if m.toast != nil {
		state.Toast = m.toast.card
	}
	if m.menu != nil {
		state.Menu = m.menu.list.View()
	}
	return m.renderer.Render(state)
}

// top returns the focused screen
func (m *Model) top() *screen {
	if len(m.screens) == 0 {
		return nil
	}
	return m.screens[len(m.screens)-1]
}

func (m *Model) newDetector() *touchpad.Detector {
	return touchpad.NewDetector(
		touchpad.WithSwipeThreshold(m.config.Touchpad.SwipeThreshold),
		touchpad.WithLongPressTimeout(m.config.Touchpad.LongPress()),
	)
}

// newScreen builds a timeline over cards with its gesture pad attached
func (m *Model) newScreen(name string, cards []*widget.CardBuilder) *screen {
	s := &screen{
		name:    name,
		adapter: widget.NewCardListAdapter(cards...),
		pager:   newPageAnimator(m.config.Cards.Animate),
	}
	s.view = widget.NewCardScrollView(s.pager,
		widget.WithPageWidth(m.config.Cards.PageWidth),
		widget.WithSwipeThreshold(m.config.Touchpad.SwipeThreshold),
	)
	s.view.SetAdapter(s.adapter)
	s.view.SetOnItemSelectedListener(func(position int, id int64) { m.onSelected(s, position, id) })
	s.view.SetOnItemClickListener(func(position int, id int64) { m.onClicked(s, position, id) })
	s.view.SetOnDismissRequestedListener(func() { m.onDismiss(s) })

	s.pad = m.newDetector().SetBaseListener(func(g touchpad.Gesture) bool { return m.onGesture(s, g) })
	if name == functionsScreenName {
		s.pad.SetScrollListener(func(displacement, delta, velocity float64) bool {
			log.Printf("Scroll detected. Displacement: %.1f, Delta: %.1f, Velocity: %.1f", displacement, delta, velocity)
			return true
		})
	}
	s.view.SetGesturePad(s.pad)
	return s
}

func (m *Model) pushScreen(s *screen) {
	if current := m.top(); current != nil {
		current.view.Deactivate()
	}
	m.screens = append(m.screens, s)
	s.view.Activate()
	log.Printf("Screen %s opened", s.name)
}

func (m *Model) popScreen() {
	s := m.top()
	s.view.Deactivate()
	if s.scroller != nil {
		s.scroller.Hide()
	}
	m.screens = m.screens[:len(m.screens)-1]
	if current := m.top(); current != nil {
		current.view.Activate()
	}
	log.Printf("Screen %s closed", s.name)
}

func (m *Model) onSelected(s *screen, position int, id int64) {
	m.publish(eventbus.CardSelectedEvent{Screen: s.name, Position: position, ID: id})
	m.showScroller(s, position)

	if s.name == functionsScreenName {
		m.updateEyeGestures(s, position == eyeGestureCard)
	}
}

func (m *Model) onClicked(s *screen, position int, id int64) {
	log.Printf("Item clicked: %d", position)
	m.publish(eventbus.CardClickedEvent{Screen: s.name, Position: position, ID: id})

	switch s.name {
	case mainScreenName:
		if position == 0 {
			m.pushScreen(m.newScreen(functionsScreenName, functionsCards()))
		}
	case functionsScreenName:
		switch position {
		case sendNotificationCard:
			m.sendNotification()
		case sliderCard:
			m.toggleProgress()
		}
	}
}

func (m *Model) onDismiss(s *screen) {
	m.publish(eventbus.DismissRequestedEvent{Screen: s.name})
	if len(m.screens) == 1 {
		m.quitting = true
		return
	}
	m.popScreen()
}

func (m *Model) onGesture(s *screen, g touchpad.Gesture) bool {
	m.publish(eventbus.GestureDetectedEvent{Screen: s.name, Gesture: g})
	if s.name != functionsScreenName {
		return false
	}
	if card := s.adapter.Card(gestureCard); card != nil {
		card.SetText(describe(g.String()) + " detected.")
		s.adapter.NotifyDataSetChanged()
	}
	return true
}

// showScroller points the scroller at position within the screen's cards
func (m *Model) showScroller(s *screen, position int) {
	last := s.view.Count() - 1
	if last < 1 {
		return
	}
	if s.scroller == nil || s.scroller.Max() != last {
		s.scroller = m.slider.StartScroller(last, float64(position))
		return
	}
	s.scroller.SetPosition(float64(position))
	s.scroller.Show()
}

// updateEyeGestures registers the eye gesture listener while the eye gesture
// card is selected
func (m *Model) updateEyeGestures(s *screen, register bool) {
	var errs []error
	for _, g := range eye.Gestures() {
		if register {
			errs = append(errs, m.eyes.Register(g, func(g eye.Gesture) { m.onEyeGesture(s, g) }))
		} else {
			errs = append(errs, m.eyes.Unregister(g, nil))
		}
	}
	if err := errors.Join(errs...); register && errors.Is(err, eye.ErrUnsupported) {
		if card := s.adapter.Card(eyeGestureCard); card != nil {
			card.SetText("Eye gestures are not supported on this device.")
			s.adapter.NotifyDataSetChanged()
		}
	}
}

func (m *Model) onEyeGesture(s *screen, g eye.Gesture) {
	if card := s.adapter.Card(eyeGestureCard); card != nil {
		card.SetText("Eye gesture detected: " + describe(g.String()))
		s.adapter.NotifyDataSetChanged()
	}
}

// sendNotification posts a notification that reveals itself and carries a menu
func (m *Model) sendNotification() {
	style := notification.NewContextualNotification().SetReveal(true)
	if err := style.SetMenu(menuResourceID, &notification.Intent{Action: "openprism.action.MENU"}); err != nil {
		m.setError(err.Error())
		return
	}
	n := notification.NewBuilder().
		SetContentTitle("Test Notification").
		SetContentText("Test Description").
		SetSmallIcon("notification").
		SetStyle(style).
		Build()
	id := m.notifications.Notify(n)
	if m.bus == nil {
		// without a bus nobody forwards the posted event back to us
		posted, _ := m.notifications.Get(id)
		m.handleEvent(eventbus.NotificationPostedEvent{Notification: posted})
	}
}

func (m *Model) toggleProgress() {
	if m.progress != nil && m.progress.Shown() {
		m.progress.Hide()
		m.progress = nil
		return
	}
	m.progress = m.slider.StartIndeterminate()
}

// showToast reveals a notification for the grace period
func (m *Model) showToast(id string, reader notification.Reader) {
	t := &toast{id: id, card: reader.ToCard(), reader: reader}
	t.grace = m.slider.StartGracePeriod(widget.GracePeriodFuncs{
		End: func() {
			// runs on the slider's timer goroutine
			ended := eventbus.GracePeriodEndedEvent{NotificationID: id}
			if m.bus != nil {
				m.bus.Publish(ended)
			} else if m.program != nil {
				m.program.Send(EventMsg{Event: ended})
			}
		},
		Cancel: func() {
			m.publish(eventbus.GracePeriodCancelledEvent{NotificationID: id})
		},
	})
	m.toast = t
}

// onToastGesture handles input while a notification is revealed: a tap opens
// its menu, a swipe down dismisses it
func (m *Model) onToastGesture(g touchpad.Gesture) bool {
	t := m.toast
	if t == nil {
		return false
	}
	switch g {
	case touchpad.Tap:
		t.grace.Cancel()
		m.toast = nil
		if !m.openMenu(t) {
			m.notifications.Cancel(t.id)
		}
	case touchpad.SwipeDown:
		t.grace.Cancel()
		m.toast = nil
		m.notifications.Cancel(t.id)
	default:
		return false
	}
	return true
}

// openMenu shows the options menu of t and reports whether it has one
func (m *Model) openMenu(t *toast) bool {
	if !t.reader.HasMenu() {
		return false
	}
	entries := menus[t.reader.MenuResourceID()]
	if len(entries) == 0 {
		log.Printf("notification %s: unknown menu %d", t.id, t.reader.MenuResourceID())
		return false
	}
	m.menu = newOptionsMenu(t.id, t.card.Text(), entries, t.reader.MenuIntent())
	m.processActions(m.inputHandler.ChangeMode(inputtypes.ModeMenu))
	return true
}

// closeMenu hides the menu and retires the notification it belongs to
func (m *Model) closeMenu() {
	if m.menu == nil {
		return
	}
	m.notifications.Cancel(m.menu.notificationID)
	m.menu = nil
}

func (m *Model) chooseMenuItem() {
	if m.menu == nil {
		return
	}
	entry, intent, ok := m.menu.deliver()
	m.closeMenu()
	if !ok {
		return
	}
	log.Printf("%s selected, delivering %s with %v", entry.title, intent.Action, intent.Extras)
	m.setStatus(entry.title + " selected")
}

func (m *Model) showHelp() {
	if m.program == nil {
		m.setError("Help needs a terminal")
		return
	}
	m.pending = append(m.pending, m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain()))
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

func (m *Model) publish(event domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
	m.pending = append(m.pending, clearStatusAfter())
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
	m.pending = append(m.pending, clearStatusAfter())
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
