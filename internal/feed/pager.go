// Package feed pages through remote event listings, fetching the next page each time the
// scroll sentinel comes into view.
package feed

import (
	"context"
	"sync"

	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/scroll"
)

const Sentinel scroll.Sentinel = "events-end"

type EventLister interface {
	ListEvents(ctx context.Context, page, perPage int) (*entity.EventPage, error)
}

type Pager struct {
	mu       sync.Mutex
	lister   EventLister
	observer *scroll.Observer
	perPage  int
	onPage   func(*entity.EventPage)

	ctx        context.Context
	events     []entity.Event
	page       int
	totalPages int
	loading    bool
	fetching   bool
	err        error
}

// NewPager wires a pager to src. onPage, when set, is called with every page loaded.
func NewPager(lister EventLister, src scroll.Source, perPage int, onPage func(*entity.EventPage)) *Pager {
	if perPage <= 0 {
		perPage = 10
	}
	return &Pager{
		lister:   lister,
		observer: scroll.NewObserver(src, scroll.DefaultThreshold),
		perPage:  perPage,
		onPage:   onPage,
	}
}

// Start loads the first page and attaches the observer to the sentinel.
func (p *Pager) Start(ctx context.Context) error {
	p.mu.Lock()
	p.ctx = ctx
	p.loading = true
	p.mu.Unlock()

	p.observer.Attach(Sentinel, p.options())

	err := p.load(1)

	p.mu.Lock()
	p.loading = false
	p.mu.Unlock()

	p.observer.ConfigChanged(p.options())
	return err
}

func (p *Pager) Stop() {
	p.observer.Detach()
}

func (p *Pager) fetchNext() {
	p.mu.Lock()
	if p.fetching || p.loading || p.page >= p.totalPages {
		p.mu.Unlock()
		return
	}
	p.fetching = true
	next := p.page + 1
	p.mu.Unlock()

	p.observer.ConfigChanged(p.options())

	_ = p.load(next)

	p.mu.Lock()
	p.fetching = false
	p.mu.Unlock()

	p.observer.ConfigChanged(p.options())
}

func (p *Pager) load(page int) error {
	p.mu.Lock()
	ctx := p.ctx
	p.mu.Unlock()

	result, err := p.lister.ListEvents(ctx, page, p.perPage)

	p.mu.Lock()
	if err != nil {
		p.err = err
		p.mu.Unlock()
		return err
	}
	p.err = nil
	p.page = result.CurrentPage
	p.totalPages = result.TotalPages
	p.events = append(p.events, result.Events...)
	p.mu.Unlock()

	if p.onPage != nil {
		p.onPage(result)
	}
	return nil
}

func (p *Pager) options() scroll.Options {
	p.mu.Lock()
	defer p.mu.Unlock()

	return scroll.Options{
		HasNextPage:        p.page < p.totalPages,
		IsLoading:          p.loading,
		IsFetchingNextPage: p.fetching,
		FetchNextPage:      p.fetchNext,
	}
}

func (p *Pager) Events() []entity.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]entity.Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *Pager) HasNextPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page < p.totalPages
}

// Err is the error of the last failed fetch, cleared by the next successful one.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *Pager) State() scroll.State {
	return p.observer.State()
}
