package scroll

import "sync"

// ManualSource delivers entries only when Show is called. It backs viewports that are
// driven by explicit user actions, and tests.
type ManualSource struct {
	mu       sync.Mutex
	watching map[Sentinel]func(Entry)
}

func NewManualSource() *ManualSource {
	return &ManualSource{watching: make(map[Sentinel]func(Entry))}
}

func (s *ManualSource) Observe(target Sentinel, _ float64, deliver func(Entry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watching[target] = deliver
}

func (s *ManualSource) Unobserve(target Sentinel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.watching, target)
}

// Show reports the visible ratio of target. It returns false when target is not observed.
func (s *ManualSource) Show(target Sentinel, ratio float64) bool {
	s.mu.Lock()
	deliver, ok := s.watching[target]
	s.mu.Unlock()

	if !ok {
		return false
	}
	deliver(Entry{Target: target, Ratio: ratio})
	return true
}

// Observed lists the sentinels currently watched.
func (s *ManualSource) Observed() []Sentinel {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Sentinel, 0, len(s.watching))
	for target := range s.watching {
		out = append(out, target)
	}
	return out
}
