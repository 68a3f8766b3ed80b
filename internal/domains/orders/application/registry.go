package application

import (
	"sync"

	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

// ListingRegistry keeps one Listing per admin session.
type ListingRegistry struct {
	service ports.Service
	opts    []ListingOption

	mu       sync.Mutex
	listings map[string]*Listing
}

// NewListingRegistry shares opts between every listing it creates.
func NewListingRegistry(service ports.Service, opts ...ListingOption) *ListingRegistry {
	return &ListingRegistry{
		service:  service,
		opts:     opts,
		listings: make(map[string]*Listing),
	}
}

// Get returns the session's listing, creating it on first use. created tells the
// caller an initial Load is still needed.
func (r *ListingRegistry) Get(session, actor string) (listing *Listing, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.listings[session]; ok {
		return l, false
	}
	opts := append(append([]ListingOption(nil), r.opts...), WithActor(actor))
	l := NewListing(r.service, opts...)
	r.listings[session] = l
	return l, true
}

// Drop closes and forgets the session's listing.
func (r *ListingRegistry) Drop(session string) {
	r.mu.Lock()
	l, ok := r.listings[session]
	delete(r.listings, session)
	r.mu.Unlock()
	if ok {
		l.Close()
	}
}

func (r *ListingRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listings)
}

// Close closes every listing.
func (r *ListingRegistry) Close() {
	r.mu.Lock()
	listings := r.listings
	r.listings = make(map[string]*Listing)
	r.mu.Unlock()
	for _, l := range listings {
		l.Close()
	}
}
