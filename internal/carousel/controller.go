package carousel

import (
	"sync"
	"time"
)

// Ticker abstracts time.Ticker so tests can drive auto-advance by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFactory func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type Options struct {
	Visible      int
	Interval     time.Duration
	PauseOnHover bool
	NewTicker    TickerFactory
}

// Controller tracks the first visible item of a horizontal strip.
type Controller struct {
	// life serialises starting and stopping the timer goroutine.
	life sync.Mutex

	mu           sync.Mutex
	index        int
	itemCount    int
	visible      int
	interval     time.Duration
	pauseOnHover bool
	hovered      bool
	touched      bool
	newTicker    TickerFactory

	ticker Ticker
	stop   chan struct{}
	done   chan struct{}
}

func NewController(itemCount int, opts Options) *Controller {
	if opts.Visible <= 0 {
		opts.Visible = 1
	}

	if opts.NewTicker == nil {
		opts.NewTicker = NewRealTicker
	}

	return &Controller{
		itemCount:    max(0, itemCount),
		visible:      opts.Visible,
		interval:     opts.Interval,
		pauseOnHover: opts.PauseOnHover,
		newTicker:    opts.NewTicker,
	}
}

func (c *Controller) MaxIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.maxIndex()
}

func (c *Controller) maxIndex() int {
	return max(0, c.itemCount-c.visible)
}

func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.index
}

// SetItemCount updates the strip length and keeps the index in range.
func (c *Controller) SetItemCount(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.itemCount = max(0, n)
	c.index = min(c.index, c.maxIndex())
}

func (c *Controller) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.next()
}

func (c *Controller) next() int {
	if c.index >= c.maxIndex() {
		c.index = 0
	} else {
		c.index++
	}

	return c.index
}

func (c *Controller) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.index <= 0 {
		c.index = c.maxIndex()
	} else {
		c.index--
	}

	return c.index
}

// GoTo clamps i into [0, MaxIndex].
func (c *Controller) GoTo(i int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index = min(max(0, i), c.maxIndex())

	return c.index
}

func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.paused()
}

func (c *Controller) paused() bool {
	return c.touched || (c.pauseOnHover && c.hovered)
}

// Hover pauses auto-advance only when the strip was built with PauseOnHover.
func (c *Controller) Hover(on bool) {
	c.setPause(func() { c.hovered = on })
}

func (c *Controller) Touch(on bool) {
	c.setPause(func() { c.touched = on })
}

func (c *Controller) setPause(change func()) {
	c.life.Lock()
	defer c.life.Unlock()

	c.mu.Lock()
	wasPaused := c.paused()
	change()
	nowPaused := c.paused()
	running := c.stop != nil
	c.mu.Unlock()

	if !running || wasPaused == nowPaused {
		return
	}

	if nowPaused {
		c.halt()
	} else {
		c.start()
	}
}

// Start runs auto-advance until Stop. Restarting resets the interval.
func (c *Controller) Start() {
	c.life.Lock()
	defer c.life.Unlock()

	c.start()
}

// start requires c.life.
func (c *Controller) start() {
	if c.interval <= 0 {
		return
	}

	c.halt()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.ticker = c.newTicker(c.interval)
	c.stop = make(chan struct{})
	c.done = make(chan struct{})

	go c.run(c.ticker, c.stop, c.done)
}

func (c *Controller) run(t Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C():
			c.mu.Lock()
			if !c.paused() {
				c.next()
			}
			c.mu.Unlock()
		}
	}
}

// halt stops the timer goroutine but leaves the controller marked as running.
// It requires c.life.
func (c *Controller) halt() {
	c.mu.Lock()
	stop, done := c.stop, c.done
	c.mu.Unlock()

	if stop == nil {
		return
	}

	select {
	case <-stop:
	default:
		close(stop)
	}

	<-done
}

func (c *Controller) Stop() {
	c.life.Lock()
	defer c.life.Unlock()

	c.halt()

	c.mu.Lock()
	c.stop, c.done, c.ticker = nil, nil, nil
	c.mu.Unlock()
}
