package timer

type Mode int

const (
	ModeWork Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// LongBreakEvery is the number of work segments per long break.
const LongBreakEvery = 4

var modeNames = map[Mode]string{
	ModeWork:       "work",
	ModeShortBreak: "shortBreak",
	ModeLongBreak:  "longBreak",
}

var modeLabels = map[Mode]string{
	ModeWork:       "Focus Time",
	ModeShortBreak: "Short Break",
	ModeLongBreak:  "Long Break",
}

func (m Mode) String() string { return modeNames[m] }
func (m Mode) Label() string  { return modeLabels[m] }
func (m Mode) IsBreak() bool  { return m == ModeShortBreak || m == ModeLongBreak }

// Durations are segment lengths in minutes.
type Durations struct {
	Work       int
	ShortBreak int
	LongBreak  int
}

// Normalized clamps every duration to at least one minute.
func (d Durations) Normalized() Durations {
	if d.Work < 1 {
		d.Work = 1
	}
	if d.ShortBreak < 1 {
		d.ShortBreak = 1
	}
	if d.LongBreak < 1 {
		d.LongBreak = 1
	}
	return d
}

// Seconds returns the length of a segment in seconds.
func (d Durations) Seconds(m Mode) int {
	d = d.Normalized()
	switch m {
	case ModeShortBreak:
		return d.ShortBreak * 60
	case ModeLongBreak:
		return d.LongBreak * 60
	default:
		return d.Work * 60
	}
}

type Pomodoro struct {
	Mode      Mode
	Remaining int // seconds
	Cycle     int
	Running   bool
	Durations Durations
}

// NewPomodoro returns a stopped machine at the start of the first work
// segment.
func NewPomodoro(d Durations) Pomodoro {
	d = d.Normalized()
	return Pomodoro{
		Mode:      ModeWork,
		Remaining: d.Seconds(ModeWork),
		Cycle:     1,
		Durations: d,
	}
}

// Apply advances the machine by one event.
func (p Pomodoro) Apply(ev Event) (Pomodoro, []Effect) {
	switch ev {
	case EventStart:
		p.Running = true
	case EventPause:
		p.Running = false
	case EventToggle:
		p.Running = !p.Running
	case EventReset, EventStop:
		return NewPomodoro(p.Durations), nil
	case EventSkip:
		return p.complete()
	case EventTick:
		// Completion is edge triggered: only the decrement that lands on
		// zero completes, and completion leaves a fresh non-zero segment.
		if !p.Running || p.Remaining <= 0 {
			return p, nil
		}
		p.Remaining--
		if p.Remaining == 0 {
			return p.complete()
		}
	}
	return p, nil
}

func (p Pomodoro) complete() (Pomodoro, []Effect) {
	from := p.Mode
	if p.Mode == ModeWork {
		if p.Cycle%LongBreakEvery == 0 {
			p.Mode = ModeLongBreak
		} else {
			p.Mode = ModeShortBreak
		}
	} else {
		p.Mode = ModeWork
		p.Cycle++
	}
	p.Remaining = p.Durations.Seconds(p.Mode)
	p.Running = false
	return p, []Effect{SegmentCompleted{From: from, To: p.Mode, Cycle: p.Cycle}}
}

// Total returns the full length of the current segment in seconds.
func (p Pomodoro) Total() int {
	return p.Durations.Seconds(p.Mode)
}

// Progress returns the elapsed fraction of the current segment in [0, 1].
func (p Pomodoro) Progress() float64 {
	total := p.Total()
	if total <= 0 {
		return 0
	}
	f := 1 - float64(p.Remaining)/float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Reconfigure swaps in new durations. A segment that has not started yet
// is resized; one in progress keeps its remaining time.
func (p Pomodoro) Reconfigure(d Durations) Pomodoro {
	fresh := !p.Running && p.Remaining == p.Total()
	p.Durations = d.Normalized()
	if fresh {
		p.Remaining = p.Total()
	}
	return p
}

// Ticking reports whether the scheduler should keep delivering ticks.
func (p Pomodoro) Ticking() bool { return p.Running && p.Remaining > 0 }
