package tracker

import "time"

// Carousel cycles through a fixed set of summary cards. Positions wrap
// around in both directions; an empty carousel stays at position 0.
type Carousel struct {
	size int
	pos  int
}

// NewCarousel creates a carousel over n cards.
func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{size: n}
}

// Current returns the active card position.
func (c *Carousel) Current() int { return c.pos }

// Next advances to the following card, wrapping to the first.
func (c *Carousel) Next() int {
	if c.size > 0 {
		c.pos = (c.pos + 1) % c.size
	}
	return c.pos
}

// Prev steps back to the previous card, wrapping to the last.
func (c *Carousel) Prev() int {
	if c.size > 0 {
		c.pos = (c.pos - 1 + c.size) % c.size
	}
	return c.pos
}

// Goto jumps to the given card; out-of-range positions are ignored.
func (c *Carousel) Goto(pos int) int {
	if pos >= 0 && pos < c.size {
		c.pos = pos
	}
	return c.pos
}

// DefaultRotateEvery is how often an unattended carousel auto-advances.
const DefaultRotateEvery = 5 * time.Second

// Rotator auto-advances a carousel on a timer. The interval timer restarts
// whenever the user navigates manually, so a click never races the tick.
//
// Rotator is not safe for concurrent use; it belongs to the single
// event-loop goroutine that owns the carousel.
type Rotator struct {
	carousel *Carousel
	every    time.Duration
	onMove   func(pos int)

	newTimer func(time.Duration, func()) *time.Timer // injectable for tests
	timer    *time.Timer
}

// NewRotator wraps a carousel with auto-rotation. onMove is called with the
// new position after every advance, manual or timed; it may be nil.
func NewRotator(c *Carousel, every time.Duration, onMove func(pos int)) *Rotator {
	if every <= 0 {
		every = DefaultRotateEvery
	}
	return &Rotator{
		carousel: c,
		every:    every,
		onMove:   onMove,
		newTimer: time.AfterFunc,
	}
}

// Start arms the rotation timer.
func (r *Rotator) Start() {
	r.Stop()
	r.timer = r.newTimer(r.every, r.tick)
}

// Stop disarms the rotation timer.
func (r *Rotator) Stop() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Rotator) tick() {
	pos := r.carousel.Next()
	if r.onMove != nil {
		r.onMove(pos)
	}
	r.timer = r.newTimer(r.every, r.tick)
}

// Next advances manually and restarts the timer.
func (r *Rotator) Next() int {
	pos := r.carousel.Next()
	if r.onMove != nil {
		r.onMove(pos)
	}
	if r.timer != nil {
		r.Start()
	}
	return pos
}

// Prev steps back manually and restarts the timer.
func (r *Rotator) Prev() int {
	pos := r.carousel.Prev()
	if r.onMove != nil {
		r.onMove(pos)
	}
	if r.timer != nil {
		r.Start()
	}
	return pos
}
