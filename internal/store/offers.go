package store

import "movie-theater/internal/data/entity"

// Offers are read-only seed data.
func (s *Store) Offers() []entity.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entity.Offer(nil), s.offers...)
}
