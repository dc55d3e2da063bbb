package booking

import "sync"

// Store is an in-memory booking record store keyed by reference. Records live
// for the process lifetime; durable persistence is out of scope.
type Store struct {
	mu       sync.RWMutex
	bookings map[string]Booking
}

func NewStore() *Store {
	return &Store{bookings: make(map[string]Booking)}
}

func (s *Store) Put(b Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.Reference] = b
}

func (s *Store) Get(reference string) (Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[reference]
	return b, ok
}
