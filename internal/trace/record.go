// Package trace records and replays touchpad input. A trace is a JSON Lines
// stream with one record per motion event or key press:
//
//	{"action":"down","pointers":1,"x":0,"y":0,"t_ms":0}
//	{"action":"up","pointers":1,"x":240,"y":0,"t_ms":180}
//	{"key":66}
package trace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"openprism/internal/touchpad"
)

// Record is one line of a trace
type Record struct {
	Action   string  `json:"action,omitempty"`
	Index    int     `json:"index,omitempty"`
	Pointers int     `json:"pointers,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	TimeMs   int64   `json:"t_ms,omitempty"`
	Key      *int    `json:"key,omitempty"`
}

// IsKey reports whether the record is a key press
func (r Record) IsKey() bool {
	return r.Key != nil
}

// KeyCode returns the key of a key record
func (r Record) KeyCode() touchpad.KeyCode {
	if r.Key == nil {
		return touchpad.KeyUnknown
	}
	return touchpad.KeyCode(*r.Key)
}

// MotionEvent converts a motion record. A missing pointer count means one finger.
func (r Record) MotionEvent() (touchpad.MotionEvent, error) {
	action, err := touchpad.ParseAction(r.Action)
	if err != nil {
		return touchpad.MotionEvent{}, err
	}
	count := r.Pointers
	if count == 0 {
		count = 1
	}
	if r.Index < 0 || r.Index >= count {
		return touchpad.MotionEvent{}, fmt.Errorf("pointer index %d out of range for %d pointers", r.Index, count)
	}
	return touchpad.MotionEvent{
		Action:       action,
		PointerIndex: r.Index,
		PointerCount: count,
		X:            r.X,
		Y:            r.Y,
		Time:         time.Duration(r.TimeMs) * time.Millisecond,
	}, nil
}

// FromMotionEvent builds the record of ev
func FromMotionEvent(ev touchpad.MotionEvent) Record {
	return Record{
		Action:   ev.Action.String(),
		Index:    ev.PointerIndex,
		Pointers: ev.PointerCount,
		X:        ev.X,
		Y:        ev.Y,
		TimeMs:   ev.Time.Milliseconds(),
	}
}

// FromKey builds the record of a key press
func FromKey(code touchpad.KeyCode) Record {
	k := int(code)
	return Record{Key: &k}
}

// ParseRecord decodes a single record and checks it can be replayed
func ParseRecord(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, err
	}
	if r.IsKey() {
		return r, nil
	}
	if _, err := r.MotionEvent(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Read decodes a trace. Blank lines and lines starting with # are skipped.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := ParseRecord([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Write encodes records as JSON Lines
func Write(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
