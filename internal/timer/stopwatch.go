package timer

type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "idle"
	}
}

// Stopwatch accrues one second per tick while running.
type Stopwatch struct {
	Status  Status
	Elapsed int // seconds
}

// Apply advances the stopwatch by one event. Unknown or disallowed events
// return the stopwatch unchanged.
func (s Stopwatch) Apply(ev Event) (Stopwatch, []Effect) {
	switch ev {
	case EventStart:
		if s.Status != StatusRunning {
			s.Status = StatusRunning
		}
	case EventPause:
		if s.Status == StatusRunning {
			s.Status = StatusPaused
		}
	case EventToggle:
		if s.Status == StatusRunning {
			s.Status = StatusPaused
		} else {
			s.Status = StatusRunning
		}
	case EventStop, EventReset:
		// Stop is disabled until at least one second has accrued.
		if !s.CanStop() {
			return s, nil
		}
		return Stopwatch{}, nil
	case EventTick:
		if s.Status != StatusRunning {
			return s, nil
		}
		s.Elapsed++
		if s.Elapsed%60 == 0 {
			return s, []Effect{MinuteElapsed{Total: s.Elapsed / 60, Minutes: 1}}
		}
	}
	return s, nil
}

func (s Stopwatch) CanStop() bool { return s.Elapsed > 0 }

// Ticking reports whether the scheduler should keep delivering ticks.
func (s Stopwatch) Ticking() bool { return s.Status == StatusRunning }
