package store

import (
	"context"

	"movie-theater/internal/data/entity"

	"go.uber.org/zap"
)

func (s *Store) Bookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterBookings(func(entity.Booking) bool { return true })
}

func (s *Store) BookingByID(id string) (entity.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.bookingIndex(id); i >= 0 {
		return s.bookings[i].Clone(), true
	}
	return entity.Booking{}, false
}

func (s *Store) UpcomingBookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterBookings(func(b entity.Booking) bool { return b.Status == entity.BookingStatusUpcoming })
}

// PastBookings are the completed and cancelled ones.
func (s *Store) PastBookings() []entity.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterBookings(entity.Booking.IsPast)
}

func (s *Store) filterBookings(keep func(entity.Booking) bool) []entity.Booking {
	out := make([]entity.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

// AddBooking appends booking under a new "B<ms>" id with today's booking
// date. Status is always "upcoming", whatever the input says. The caller
// supplies the movie snapshot fields; they are not re-derived here.
func (s *Store) AddBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	s.mu.Lock()
	booking = booking.Clone()
	booking.ID = s.ids.next(prefixBooking, s.now(), s.bookingExists)
	booking.BookingDate = s.today()
	booking.Status = entity.BookingStatusUpcoming
	s.bookings = append(s.bookings, booking)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Booking added",
		zap.String("booking_id", booking.ID),
		zap.String("movie_id", booking.MovieID),
		zap.Strings("seats", booking.Seats),
		zap.Float64("total_amount", booking.TotalAmount),
	)
	s.notify(Change{Collection: CollectionBookings, Op: OpAdd, ID: booking.ID})
	return booking.Clone(), err
}

func (s *Store) UpdateBooking(ctx context.Context, id string, patch entity.BookingPatch) (bool, error) {
	s.mu.Lock()
	i := s.bookingIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	patch.Apply(&s.bookings[i])
	status := s.bookings[i].Status
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Booking updated", zap.String("booking_id", id), zap.String("status", string(status)))
	s.notify(Change{Collection: CollectionBookings, Op: OpUpdate, ID: id})
	return true, err
}

// UpdateBookingIf applies patch only when cond holds for the booking as it is
// under the write lock. The returned booking is the current state either way.
func (s *Store) UpdateBookingIf(ctx context.Context, id string, cond func(entity.Booking) bool, patch entity.BookingPatch) (booking entity.Booking, found, applied bool, err error) {
	s.mu.Lock()
	i := s.bookingIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return entity.Booking{}, false, false, nil
	}
	if !cond(s.bookings[i]) {
		booking = s.bookings[i].Clone()
		s.mu.Unlock()
		return booking, true, false, nil
	}
	patch.Apply(&s.bookings[i])
	booking = s.bookings[i].Clone()
	err = s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Booking updated", zap.String("booking_id", id), zap.String("status", string(booking.Status)))
	s.notify(Change{Collection: CollectionBookings, Op: OpUpdate, ID: id})
	return booking, true, true, err
}

func (s *Store) DeleteBooking(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := s.bookingIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	bookings := make([]entity.Booking, 0, len(s.bookings)-1)
	bookings = append(bookings, s.bookings[:i]...)
	s.bookings = append(bookings, s.bookings[i+1:]...)
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Booking deleted", zap.String("booking_id", id))
	s.notify(Change{Collection: CollectionBookings, Op: OpDelete, ID: id})
	return true, err
}

func (s *Store) bookingIndex(id string) int {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) bookingExists(id string) bool {
	return s.bookingIndex(id) >= 0
}
