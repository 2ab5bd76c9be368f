package widget

// ItemListener receives the position and id of a card
type ItemListener func(position int, id int64)

// SelectionModel holds the selected card of an adapter and performs the clamped
// transitions between cards. The index is -1 while the model is inactive, that is
// while there is no adapter or the adapter is empty.
type SelectionModel struct {
	adapter CardScrollAdapter
	index   int

	onSelected ItemListener
	onClicked  ItemListener
}

// NewSelectionModel creates a model over adapter, which may be nil
func NewSelectionModel(adapter CardScrollAdapter) *SelectionModel {
	m := &SelectionModel{index: -1}
	m.SetAdapter(adapter)
	return m
}

// SetAdapter attaches an adapter and selects its home position, or detaches the
// current one when adapter is nil. It does not fire the selected listener.
func (m *SelectionModel) SetAdapter(adapter CardScrollAdapter) {
	m.adapter = adapter
	m.index = -1
	if n := m.Count(); n > 0 {
		m.index = clamp(adapter.HomePosition(), 0, n-1)
	}
}

// Adapter returns the attached adapter
func (m *SelectionModel) Adapter() CardScrollAdapter {
	return m.adapter
}

// SetOnItemSelected sets the listener fired after every real transition,
// replacing any previous listener
func (m *SelectionModel) SetOnItemSelected(l ItemListener) {
	m.onSelected = l
}

// SetOnItemClicked sets the listener fired by Click, replacing any previous listener
func (m *SelectionModel) SetOnItemClicked(l ItemListener) {
	m.onClicked = l
}

// Count returns the number of cards, 0 without an adapter
func (m *SelectionModel) Count() int {
	if m.adapter == nil {
		return 0
	}
	return m.adapter.Count()
}

// Active reports whether a card is selected
func (m *SelectionModel) Active() bool {
	return m.index >= 0
}

// Index returns the selected position, or -1 while inactive
func (m *SelectionModel) Index() int {
	return m.index
}

// ItemID returns the id of the selected card, or InvalidID while inactive
func (m *SelectionModel) ItemID() int64 {
	if !m.Active() {
		return InvalidID
	}
	return m.adapter.ItemID(m.index)
}

// Next selects the following card. It is a no-op on the last card.
func (m *SelectionModel) Next() bool {
	if !m.Active() || m.index >= m.Count()-1 {
		return false
	}
	return m.moveTo(m.index + 1)
}

// Prev selects the preceding card. It is a no-op on the first card.
func (m *SelectionModel) Prev() bool {
	if !m.Active() || m.index <= 0 {
		return false
	}
	return m.moveTo(m.index - 1)
}

// Goto selects position. Positions outside [0, Count) are ignored rather than
// clamped, and selecting the current card is not a transition.
func (m *SelectionModel) Goto(position int) bool {
	if !m.inRange(position) || position == m.index {
		return false
	}
	return m.moveTo(position)
}

// SetSelection selects position without firing the selected listener
func (m *SelectionModel) SetSelection(position int) bool {
	if !m.inRange(position) {
		return false
	}
	m.index = position
	return true
}

// Rebuild reconciles the index with the adapter's current count. It never fires
// the selected listener.
func (m *SelectionModel) Rebuild() {
	n := m.Count()
	if n == 0 {
		m.index = -1
		return
	}
	m.index = clamp(m.index, 0, n-1)
}

// Click fires the clicked listener for the selected card
func (m *SelectionModel) Click() bool {
	if !m.Active() {
		return false
	}
	if m.onClicked != nil {
		m.onClicked(m.index, m.ItemID())
	}
	return true
}

func (m *SelectionModel) inRange(position int) bool {
	return position >= 0 && position < m.Count()
}

func (m *SelectionModel) moveTo(position int) bool {
	m.index = position
	if m.onSelected != nil {
		m.onSelected(position, m.ItemID())
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
