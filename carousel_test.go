package tracker

import (
	"testing"
	"time"
)

func TestCarouselWraps(t *testing.T) {
	c := NewCarousel(3)

	if c.Current() != 0 {
		t.Fatalf("start: got %d", c.Current())
	}
	if got := c.Next(); got != 1 {
		t.Errorf("next: got %d", got)
	}
	c.Next()
	if got := c.Next(); got != 0 {
		t.Errorf("wrap forward: got %d", got)
	}
	if got := c.Prev(); got != 2 {
		t.Errorf("wrap backward: got %d", got)
	}
}

func TestCarouselGoto(t *testing.T) {
	c := NewCarousel(4)
	if got := c.Goto(2); got != 2 {
		t.Errorf("goto: got %d", got)
	}
	// Out-of-range jumps are ignored.
	if got := c.Goto(7); got != 2 {
		t.Errorf("goto out of range: got %d", got)
	}
	if got := c.Goto(-1); got != 2 {
		t.Errorf("goto negative: got %d", got)
	}
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(0)
	if c.Next() != 0 || c.Prev() != 0 || c.Current() != 0 {
		t.Error("empty carousel must stay at 0")
	}
	if NewCarousel(-3).Next() != 0 {
		t.Error("negative size must behave as empty")
	}
}

// fakeTimer records arm requests without ever firing.
type fakeTimer struct {
	armed int
}

func (f *fakeTimer) newTimer(time.Duration, func()) *time.Timer {
	f.armed++
	// A long-fused real timer that the test stops via Rotator.Stop.
	return time.NewTimer(time.Hour)
}

func TestRotatorTickAdvances(t *testing.T) {
	var moves []int
	c := NewCarousel(3)
	r := NewRotator(c, time.Minute, func(pos int) { moves = append(moves, pos) })

	ft := &fakeTimer{}
	r.newTimer = ft.newTimer

	r.Start()
	if ft.armed != 1 {
		t.Fatalf("start must arm the timer, armed=%d", ft.armed)
	}

	// Fire the tick by hand: it advances, notifies and re-arms.
	r.tick()
	r.tick()
	if c.Current() != 2 {
		t.Errorf("position: got %d", c.Current())
	}
	if len(moves) != 2 || moves[0] != 1 || moves[1] != 2 {
		t.Errorf("moves: got %v", moves)
	}
	if ft.armed != 3 {
		t.Errorf("each tick must re-arm, armed=%d", ft.armed)
	}
	r.Stop()
}

func TestRotatorManualNavigationRestartsTimer(t *testing.T) {
	c := NewCarousel(3)
	r := NewRotator(c, time.Minute, nil)
	ft := &fakeTimer{}
	r.newTimer = ft.newTimer

	r.Start()
	if got := r.Next(); got != 1 {
		t.Errorf("next: got %d", got)
	}
	// Manual navigation while armed restarts the interval.
	if ft.armed != 2 {
		t.Errorf("armed: got %d, want 2", ft.armed)
	}
	if got := r.Prev(); got != 0 {
		t.Errorf("prev: got %d", got)
	}
	if ft.armed != 3 {
		t.Errorf("armed: got %d, want 3", ft.armed)
	}
	r.Stop()
}

func TestRotatorManualWithoutStart(t *testing.T) {
	c := NewCarousel(2)
	r := NewRotator(c, time.Minute, nil)
	ft := &fakeTimer{}
	r.newTimer = ft.newTimer

	// Navigating a stopped rotator never arms a timer.
	r.Next()
	r.Prev()
	if ft.armed != 0 {
		t.Errorf("armed: got %d, want 0", ft.armed)
	}
}

func TestRotatorDefaultInterval(t *testing.T) {
	r := NewRotator(NewCarousel(2), 0, nil)
	if r.every != DefaultRotateEvery {
		t.Errorf("got %s, want %s", r.every, DefaultRotateEvery)
	}
}
