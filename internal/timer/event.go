// Package timer holds the stopwatch and Pomodoro state machines. Both are
// plain values advanced by Apply; side effects come back as Effect values
// for the caller to act on, so nothing here needs a real clock.
package timer

import "fmt"

type Event int

const (
	EventStart Event = iota
	EventPause
	EventToggle
	EventStop
	EventTick
	EventReset
	EventSkip
)

var eventNames = map[Event]string{
	EventStart:  "start",
	EventPause:  "pause",
	EventToggle: "toggle",
	EventStop:   "stop",
	EventTick:   "tick",
	EventReset:  "reset",
	EventSkip:   "skip",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Effect is emitted by Apply when a transition has consequences outside
// the machine.
type Effect interface {
	effect()
}

// MinuteElapsed is emitted each time a running stopwatch crosses a whole
// minute. Total is the number of whole minutes so far; Minutes is the
// newly elapsed time to commit, always 1.
type MinuteElapsed struct {
	Total   int
	Minutes int
}

// SegmentCompleted is emitted once when a Pomodoro segment reaches zero.
type SegmentCompleted struct {
	From  Mode
	To    Mode
	Cycle int
}

func (MinuteElapsed) effect()    {}
func (SegmentCompleted) effect() {}

// FormatClock renders seconds as m:ss, or h:mm:ss from one hour up.
func FormatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatCountdown renders seconds as mm:ss.
func FormatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
