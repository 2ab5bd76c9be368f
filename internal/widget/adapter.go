package widget

import "sync"

// InvalidPosition is returned when an item is not part of an adapter
const InvalidPosition = -1

// InvalidID is the item id reported while nothing is selected
const InvalidID int64 = -1

// CardScrollAdapter supplies the cards of a CardScrollView. The view queries it on
// demand and never caches item content.
type CardScrollAdapter interface {
	// Count returns the number of cards
	Count() int
	// Item returns the card at position
	Item(position int) any
	// ItemID returns a stable identity for the card at position
	ItemID(position int) int64
	// Position returns the position of item, or InvalidPosition
	Position(item any) int
	// HomePosition is the position shown when the view is first attached
	HomePosition() int
	// RegisterObserver is notified whenever the data set changes.
	// The returned function unregisters it.
	RegisterObserver(fn func()) func()
}

// DataSetObservable keeps the observers of an adapter
type DataSetObservable struct {
	mu        sync.Mutex
	nextID    int
	observers []observer
}

type observer struct {
	id int
	fn func()
}

// RegisterObserver adds an observer and returns a function removing it
func (o *DataSetObservable) RegisterObserver(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++
	o.observers = append(o.observers, observer{id: id, fn: fn})

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		for i, obs := range o.observers {
			if obs.id == id {
				o.observers = append(o.observers[:i], o.observers[i+1:]...)
				break
			}
		}
	}
}

// ObserverCount returns how many observers are registered
func (o *DataSetObservable) ObserverCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observers)
}

// NotifyDataSetChanged calls every registered observer in registration order
func (o *DataSetObservable) NotifyDataSetChanged() {
	// Copy so observers can unregister while being notified
	o.mu.Lock()
	observers := make([]observer, len(o.observers))
	copy(observers, o.observers)
	o.mu.Unlock()

	for _, obs := range observers {
		obs.fn()
	}
}

// BaseAdapter provides the defaults of a CardScrollAdapter: the item id is the
// position and the home position is the first card. Embed it and implement
// Count, Item and Position.
type BaseAdapter struct {
	DataSetObservable
}

// ItemID returns position as the id
func (*BaseAdapter) ItemID(position int) int64 {
	return int64(position)
}

// HomePosition returns 0
func (*BaseAdapter) HomePosition() int {
	return 0
}

// CardListAdapter is a CardScrollAdapter over a slice of cards
type CardListAdapter struct {
	BaseAdapter
	cards []*CardBuilder
}

// NewCardListAdapter creates an adapter over cards
func NewCardListAdapter(cards ...*CardBuilder) *CardListAdapter {
	return &CardListAdapter{cards: cards}
}

func (a *CardListAdapter) Count() int {
	return len(a.cards)
}

func (a *CardListAdapter) Item(position int) any {
	return a.Card(position)
}

// Card returns the card at position, or nil when out of range
func (a *CardListAdapter) Card(position int) *CardBuilder {
	if position < 0 || position >= len(a.cards) {
		return nil
	}
	return a.cards[position]
}

func (a *CardListAdapter) Position(item any) int {
	card, ok := item.(*CardBuilder)
	if !ok {
		return InvalidPosition
	}
	for i, c := range a.cards {
		if c == card {
			return i
		}
	}
	return InvalidPosition
}

// SetCards replaces every card
func (a *CardListAdapter) SetCards(cards []*CardBuilder) {
	a.cards = cards
	a.NotifyDataSetChanged()
}

// Insert adds card at position, clamped to the valid range
func (a *CardListAdapter) Insert(position int, card *CardBuilder) {
	if position < 0 {
		position = 0
	}
	if position > len(a.cards) {
		position = len(a.cards)
	}
	a.cards = append(a.cards, nil)
	copy(a.cards[position+1:], a.cards[position:])
	a.cards[position] = card
	a.NotifyDataSetChanged()
}

// Remove deletes the card at position. It reports false when position is out of range.
func (a *CardListAdapter) Remove(position int) bool {
	if position < 0 || position >= len(a.cards) {
		return false
	}
	a.cards = append(a.cards[:position], a.cards[position+1:]...)
	a.NotifyDataSetChanged()
	return true
}
