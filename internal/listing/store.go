package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrListingNotFound  error = errors.New("listing not found")
	ErrDuplicateListing error = errors.New("listing already exists")
)

// storeKey holds the whole catalogue as one JSON array.
var storeKey = []byte("code_marketplace_listings")

// Store keeps listings in a key-value database. Every mutation rewrites the catalogue under a
// single lock, so concurrent writers never lose each other's updates.
type Store struct {
	mu sync.Mutex
	kv KeyValueStore
}

func NewStore(kv KeyValueStore) *Store {
	return &Store{kv: kv}
}

// All returns every listing, newest first as stored.
func (s *Store) All() ([]Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) Get(id string) (Listing, error) {
	listings, err := s.All()
	if err != nil {
		return Listing{}, err
	}

	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return Listing{}, fmt.Errorf("%w: %s", ErrListingNotFound, id)
}

func (s *Store) BySeller(seller string) ([]Listing, error) {
	listings, err := s.All()
	if err != nil {
		return nil, err
	}
	return Search(listings, Filter{Seller: seller}), nil
}

// Save adds a new listing at the front of the catalogue.
func (s *Store) Save(l Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return err
	}
	if indexOf(listings, l.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateListing, l.ID)
	}

	return s.store(append([]Listing{l}, listings...))
}

// AddPurchaser records buyer as a purchaser of the listing and returns the updated listing.
func (s *Store) AddPurchaser(id, buyer string) (Listing, error) {
	var updated Listing
	err := s.modify(id, func(current Listing) (Listing, error) {
		updated = current.WithPurchaser(buyer)
		return updated, nil
	})
	return updated, err
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return err
	}

	i := indexOf(listings, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	return s.store(append(listings[:i:i], listings[i+1:]...))
}

func (s *Store) modify(id string, fn func(Listing) (Listing, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listings, err := s.load()
	if err != nil {
		return err
	}

	i := indexOf(listings, id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	updated, err := fn(listings[i])
	if err != nil {
		return err
	}
	listings[i] = updated

	return s.store(listings)
}

// load must be called with s.mu held.
func (s *Store) load() ([]Listing, error) {
	ok, err := s.kv.Has(storeKey)
	if err != nil {
		return nil, fmt.Errorf("check listings: %w", err)
	}
	if !ok {
		return []Listing{}, nil
	}

	raw, err := s.kv.Get(storeKey)
	if err != nil {
		return nil, fmt.Errorf("read listings: %w", err)
	}

	var listings []Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

// store must be called with s.mu held. Tags and purchasers are always written as lists.
func (s *Store) store(listings []Listing) error {
	for i := range listings {
		if listings[i].Tags == nil {
			listings[i].Tags = []string{}
		}
		if listings[i].Purchasers == nil {
			listings[i].Purchasers = []string{}
		}
	}

	raw, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encode listings: %w", err)
	}
	if err := s.kv.Put(storeKey, raw); err != nil {
		return fmt.Errorf("write listings: %w", err)
	}
	return nil
}

func indexOf(listings []Listing, id string) int {
	for i, l := range listings {
		if l.ID == id {
			return i
		}
	}
	return -1
}
