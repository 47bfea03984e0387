package timer

import "testing"

func run(s Stopwatch, ticks int) (Stopwatch, []MinuteElapsed) {
	var minutes []MinuteElapsed
	for i := 0; i < ticks; i++ {
		var effects []Effect
		s, effects = s.Apply(EventTick)
		for _, e := range effects {
			minutes = append(minutes, e.(MinuteElapsed))
		}
	}
	return s, minutes
}

func TestStopwatchInitial(t *testing.T) {
	var s Stopwatch
	if s.Status != StatusIdle || s.Elapsed != 0 {
		t.Fatalf("zero value should be idle at 0, got %+v", s)
	}
	if s.Ticking() || s.CanStop() {
		t.Fatal("idle stopwatch should neither tick nor allow stop")
	}
}

func TestStopwatchStartPauseResume(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventStart)
	if s.Status != StatusRunning {
		t.Fatalf("status = %v, want running", s.Status)
	}
	s, _ = run(s, 10)
	s, _ = s.Apply(EventPause)
	if s.Status != StatusPaused || s.Elapsed != 10 {
		t.Fatalf("after pause: %+v", s)
	}

	// Ticks while paused do not accrue.
	s, effects := run(s, 100)
	if s.Elapsed != 10 || len(effects) != 0 {
		t.Fatalf("paused stopwatch accrued: %+v", s)
	}

	s, _ = s.Apply(EventStart)
	s, _ = run(s, 5)
	if s.Status != StatusRunning || s.Elapsed != 15 {
		t.Fatalf("after resume: %+v", s)
	}
}

func TestStopwatchPauseWhenIdle(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventPause)
	if s.Status != StatusIdle {
		t.Fatalf("pause from idle should be a no-op, got %v", s.Status)
	}
}

func TestStopwatchToggle(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventToggle)
	if s.Status != StatusRunning {
		t.Fatal("toggle from idle should start")
	}
	s, _ = s.Apply(EventToggle)
	if s.Status != StatusPaused {
		t.Fatal("toggle while running should pause")
	}
	s, _ = s.Apply(EventToggle)
	if s.Status != StatusRunning {
		t.Fatal("toggle while paused should resume")
	}
}

func TestStopwatchIdleTicksIgnored(t *testing.T) {
	s, effects := run(Stopwatch{}, 120)
	if s.Elapsed != 0 || len(effects) != 0 {
		t.Fatalf("idle stopwatch accrued: %+v", s)
	}
}

func TestStopwatchStopAtZeroIsNoop(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventStart)
	got, effects := s.Apply(EventStop)
	if got != s || effects != nil {
		t.Fatalf("stop at zero should be a no-op, got %+v", got)
	}
}

func TestStopwatchStopResets(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventStart)
	s, _ = run(s, 3)
	s, _ = s.Apply(EventPause)
	s, _ = s.Apply(EventStop)
	if s != (Stopwatch{}) {
		t.Fatalf("stop should reset to idle at 0, got %+v", s)
	}
}

func TestStopwatchMinuteEvents(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventStart)
	s, minutes := run(s, 125)
	if len(minutes) != 2 {
		t.Fatalf("expected 2 minute events, got %d", len(minutes))
	}
	for i, m := range minutes {
		if m.Minutes != 1 {
			t.Errorf("event %d: Minutes = %d, want 1", i, m.Minutes)
		}
		if m.Total != i+1 {
			t.Errorf("event %d: Total = %d, want %d", i, m.Total, i+1)
		}
	}
	if s.Elapsed != 125 {
		t.Fatalf("elapsed = %d, want 125", s.Elapsed)
	}

	s, effects := s.Apply(EventStop)
	if s.Elapsed != 0 || s.Status != StatusIdle || len(effects) != 0 {
		t.Fatalf("after stop: %+v effects=%v", s, effects)
	}
}

func TestStopwatchMinuteEventAcrossPause(t *testing.T) {
	var s Stopwatch
	s, _ = s.Apply(EventStart)
	s, _ = run(s, 59)
	s, _ = s.Apply(EventPause)
	s, _ = s.Apply(EventStart)
	s, minutes := run(s, 1)
	if len(minutes) != 1 || minutes[0].Total != 1 {
		t.Fatalf("expected one minute event after resume, got %v", minutes)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{-4, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{1500, "25:00"},
		{61, "01:01"},
		{0, "00:00"},
		{-1, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.secs); got != tt.want {
			t.Errorf("FormatCountdown(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	if EventTick.String() != "tick" || Event(99).String() != "event(99)" {
		t.Fatal("unexpected event names")
	}
	if StatusPaused.String() != "paused" || StatusIdle.String() != "idle" {
		t.Fatal("unexpected status names")
	}
}
