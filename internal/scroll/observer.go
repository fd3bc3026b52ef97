// Package scroll triggers "fetch next page" when a sentinel becomes visible.
//
// Observer is a small state machine driven by four inputs: Attach, ConfigChanged, Detach
// and the intersection entries its Source delivers. It watches at most one sentinel at a
// time and never observes while a fetch is in flight.
package scroll

import "sync"

// DefaultThreshold is the visible fraction of the sentinel that counts as "in view".
const DefaultThreshold = 0.1

// Sentinel identifies the marker whose visibility triggers the next fetch.
type Sentinel string

// Entry reports how much of a sentinel is visible, from 0 to 1.
type Entry struct {
	Target Sentinel
	Ratio  float64
}

// Source is the viewport-intersection capability. After Observe it reports entries for
// target through deliver until Unobserve is called for it. deliver must not be called from
// inside Observe or Unobserve.
type Source interface {
	Observe(target Sentinel, threshold float64, deliver func(Entry))
	Unobserve(target Sentinel)
}

type Options struct {
	HasNextPage        bool
	IsLoading          bool
	IsFetchingNextPage bool
	FetchNextPage      func()
}

func (o Options) inFlight() bool {
	return o.IsLoading || o.IsFetchingNextPage
}

type State int

const (
	// Detached: no sentinel known.
	Detached State = iota
	// Observing: the sentinel is being watched.
	Observing
	// Suspended: a sentinel is known but a fetch is in flight.
	Suspended
)

type Observer struct {
	mu        sync.Mutex
	src       Source
	threshold float64

	opts      Options
	sentinel  Sentinel
	attached  bool
	observing bool
	visible   bool
	// generation invalidates deliveries from released observations.
	generation uint64
}

func NewObserver(src Source, threshold float64) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{src: src, threshold: threshold}
}

// Attach points the observer at sentinel with the current fetch state. The previous
// sentinel is released first. While a fetch is in flight nothing is observed.
func (o *Observer) Attach(sentinel Sentinel, opts Options) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.attachLocked(sentinel, opts)
}

func (o *Observer) attachLocked(sentinel Sentinel, opts Options) {
	o.release()
	o.sentinel = sentinel
	o.attached = true
	o.opts = opts

	if opts.inFlight() {
		return
	}
	o.observe()
}

// ConfigChanged re-applies fresh fetch state to the current sentinel, like a re-render
// would: the observation restarts so a sentinel that is still in view triggers again.
func (o *Observer) ConfigChanged(opts Options) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.attached {
		o.opts = opts
		return
	}
	o.attachLocked(o.sentinel, opts)
}

// Detach releases the sentinel. Safe to call when nothing is attached.
func (o *Observer) Detach() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.release()
	o.attached = false
	o.sentinel = ""
}

func (o *Observer) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case o.observing:
		return Observing
	case o.attached:
		return Suspended
	default:
		return Detached
	}
}

func (o *Observer) observe() {
	o.generation++
	o.observing = true
	o.visible = false

	gen := o.generation
	o.src.Observe(o.sentinel, o.threshold, func(e Entry) {
		o.intersect(gen, e)
	})
}

func (o *Observer) release() {
	if !o.observing {
		return
	}
	o.observing = false
	o.visible = false
	o.generation++
	o.src.Unobserve(o.sentinel)
}

// intersect runs FetchNextPage once per crossing from below to at-or-above the threshold.
func (o *Observer) intersect(gen uint64, e Entry) {
	o.mu.Lock()
	if !o.observing || gen != o.generation || e.Target != o.sentinel {
		o.mu.Unlock()
		return
	}

	above := e.Ratio >= o.threshold
	crossed := above && !o.visible
	o.visible = above

	fetch := o.opts.FetchNextPage
	if !crossed || !o.opts.HasNextPage || fetch == nil {
		o.mu.Unlock()
		return
	}
	o.mu.Unlock()

	fetch()
}
