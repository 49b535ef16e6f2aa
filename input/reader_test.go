package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), IntentQuit},
		{"lowercase q is not quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentNone},
		{"fire", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentFire},
		{"left", tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), IntentLeft},
		{"right", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), IntentRight},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentLeft},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{"colour", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), IntentToggleColour},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.ev); got != tt.want {
				t.Errorf("Lookup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReaderPreservesOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)

	r := NewReader(screen, nil)
	r.Start()

	keys := []rune{',', 'z', ' ', '.', 'Q'}
	for _, k := range keys {
		if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, k, tcell.ModNone)); err != nil {
			t.Fatalf("post: %v", err)
		}
	}

	want := []Intent{IntentLeft, IntentFire, IntentRight, IntentQuit}
	for i, w := range want {
		select {
		case got := <-r.Intents():
			if got != w {
				t.Errorf("intent %d: got %v want %v", i, got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for intent %d", i)
		}
	}

	screen.Fini()
	select {
	case _, ok := <-r.Intents():
		if ok {
			t.Error("expected channel to close after Fini")
		}
	case <-time.After(time.Second):
		t.Error("reader did not stop after Fini")
	}
}

func TestIntentString(t *testing.T) {
	if IntentFire.String() != "fire" {
		t.Errorf("got %q", IntentFire.String())
	}
	if Intent(200).String() != "unknown" {
		t.Errorf("got %q", Intent(200).String())
	}
}
