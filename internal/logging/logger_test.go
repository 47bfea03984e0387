package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		SetDebug(false)
	})
	return &buf
}

func TestInfo(t *testing.T) {
	buf := captureLog(t)
	Info("store", "opened %s", "sqlite")
	if got := strings.TrimSpace(buf.String()); got != "[store] opened sqlite" {
		t.Fatalf("got %q", got)
	}
}

func TestWarn(t *testing.T) {
	buf := captureLog(t)
	Warn("store", "save failed: %v", "disk full")
	if got := strings.TrimSpace(buf.String()); got != "[store] warning: save failed: disk full" {
		t.Fatalf("got %q", got)
	}
}

func TestDebugGated(t *testing.T) {
	buf := captureLog(t)
	Debug("tui", "tick")
	if buf.Len() != 0 {
		t.Fatalf("debug should be silent by default, got %q", buf.String())
	}
	SetDebug(true)
	Debug("tui", "tick %d", 3)
	if got := strings.TrimSpace(buf.String()); got != "[tui] tick 3" {
		t.Fatalf("got %q", got)
	}
}
