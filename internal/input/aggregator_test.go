package input

import (
	"sync"
	"testing"
)

func newTestAggregator() *Aggregator {
	return NewAggregator(Joystick{CenterX: 200, CenterY: 300, DeadZone: 20, Scale: 50})
}

func TestPollEmpty(t *testing.T) {
	a := newTestAggregator()
	if cmd := a.Poll(); !cmd.IsZero() {
		t.Errorf("Poll() with no input = %+v, expected zero command", cmd)
	}
}

func TestKeyboardMapping(t *testing.T) {
	tests := []struct {
		name     string
		keys     []Key
		expected Command
	}{
		{"up", []Key{KeyW}, Command{MoveY: 1}},
		{"arrow down", []Key{KeyArrowDown}, Command{MoveY: -1}},
		{"left", []Key{KeyA}, Command{MoveX: -1}},
		{"arrow right", []Key{KeyArrowRight}, Command{MoveX: 1}},
		{"down beats up", []Key{KeyW, KeyS}, Command{MoveY: -1}},
		{"right beats left", []Key{KeyArrowLeft, KeyD}, Command{MoveX: 1}},
		{"diagonal sprint", []Key{KeyW, KeyD, KeyShift}, Command{MoveX: 1, MoveY: 1, Sprint: true}},
		{"pass q", []Key{KeyQ}, Command{Pass: true}},
		{"pass e", []Key{KeyE}, Command{Pass: true}},
		{"shoot space", []Key{KeySpace}, Command{Shoot: true}},
		{"shoot enter", []Key{KeyEnter}, Command{Shoot: true}},
		{"tackle", []Key{KeyC}, Command{Tackle: true}},
		{"switch", []Key{KeyTab}, Command{Switch: true}},
		{"upper case", []Key{"W", "Shift"}, Command{MoveY: 1, Sprint: true}},
		{"unmapped", []Key{"z"}, Command{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAggregator()
			for _, k := range tc.keys {
				a.KeyDown(k)
			}
			if got := a.Poll(); got != tc.expected {
				t.Errorf("Poll() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestKeyUpReleases(t *testing.T) {
	a := newTestAggregator()
	a.KeyDown(KeyW)
	a.KeyDown(KeySpace)
	a.KeyUp(KeyW)
	a.KeyUp(KeyX) // not held, no-op

	got := a.Poll()
	if got.MoveY != 0 || !got.Shoot {
		t.Errorf("Poll() = %+v, expected only shoot", got)
	}
	if a.Held(KeyW) {
		t.Error("Held(w) should be false after KeyUp")
	}
}

func TestPollIsIdempotent(t *testing.T) {
	a := newTestAggregator()
	a.KeyDown(KeyQ)
	a.PointerStart(1, 260, 300)

	first := a.Poll()
	for i := 0; i < 5; i++ {
		if got := a.Poll(); got != first {
			t.Fatalf("Poll() #%d = %+v, expected %+v", i+2, got, first)
		}
	}
}

func TestJoystick(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		expectX      float64
		expectY      float64
		keyboardKept bool
	}{
		{"inside dead zone", 210, 310, 0, 0, true},
		{"exactly at dead zone", 220, 300, 0, 0, true},
		{"half right", 225, 300, 0.5, 0, false},
		{"up is positive", 200, 270, 0, 0.6, false},
		{"clamped", 400, 500, 1, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestAggregator()
			a.KeyDown(KeyA)
			a.PointerStart(7, tc.x, tc.y)

			got := a.Poll()
			if tc.keyboardKept {
				if got.MoveX != -1 || got.MoveY != 0 {
					t.Errorf("dead zone should leave keyboard movement, got (%f, %f)", got.MoveX, got.MoveY)
				}
				return
			}
			if got.MoveX != tc.expectX || got.MoveY != tc.expectY {
				t.Errorf("Poll() move = (%f, %f), expected (%f, %f)", got.MoveX, got.MoveY, tc.expectX, tc.expectY)
			}
		})
	}
}

func TestJoystickFollowsFirstPointer(t *testing.T) {
	a := newTestAggregator()
	a.PointerStart(1, 250, 300) // x = 1
	a.PointerStart(2, 150, 300) // x = -1

	if got := a.Poll(); got.MoveX != 1 {
		t.Errorf("first pointer should drive the stick, MoveX = %f", got.MoveX)
	}

	// Moving the first pointer keeps its slot
	a.PointerMove(1, 225, 300)
	if got := a.Poll(); got.MoveX != 0.5 {
		t.Errorf("MoveX after move = %f, expected 0.5", got.MoveX)
	}

	a.PointerEnd(1)
	if got := a.Poll(); got.MoveX != -1 {
		t.Errorf("second pointer should take over, MoveX = %f", got.MoveX)
	}

	a.PointerEnd(2)
	a.PointerEnd(2) // double end is harmless
	if got := a.Poll(); !got.IsZero() {
		t.Errorf("Poll() after all pointers ended = %+v", got)
	}
}

func TestSetCenter(t *testing.T) {
	a := newTestAggregator()
	a.PointerStart(1, 50, 50)
	a.SetCenter(0, 50)

	if got := a.Poll(); got.MoveX != 1 || got.MoveY != 0 {
		t.Errorf("Poll() = %+v, expected MoveX 1 from new centre", got)
	}
}

func TestReset(t *testing.T) {
	a := newTestAggregator()
	a.KeyDown(KeyShift)
	a.PointerStart(1, 0, 0)
	a.Reset()

	if got := a.Poll(); !got.IsZero() {
		t.Errorf("Poll() after Reset = %+v", got)
	}
}

func TestConcurrentEvents(t *testing.T) {
	a := newTestAggregator()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a.KeyDown(KeyD)
				a.PointerMove(id, float64(j), 0)
				a.Poll()
				a.PointerEnd(id)
				a.KeyUp(KeyD)
			}
		}(i)
	}
	wg.Wait()

	if got := a.Poll(); !got.IsZero() {
		t.Errorf("Poll() after balanced events = %+v", got)
	}
}
