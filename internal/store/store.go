// Package store holds the application state: every entity collection, the
// user profile, and the operations that change them.
//
// The store starts from the seed catalogs, is overridden once by Load with the
// snapshots found in the repository, and from then on mirrors Movies, Bookings
// and the UserProfile back into the repository after each change to any of
// them. Offers, Messages and Notifications are session-only.
//
// Mutators never fail on an unknown id; they report found=false and leave the
// state untouched. Registered listeners are called synchronously after every
// effective change, outside the store lock.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/data/repository"
	"movie-theater/internal/data/seed"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type Collection string

const (
	CollectionMovies        Collection = "movies"
	CollectionBookings      Collection = "bookings"
	CollectionMessages      Collection = "messages"
	CollectionNotifications Collection = "notifications"
	CollectionUserProfile   Collection = "userProfile"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpLoad   Op = "load"
)

// Change describes one effective mutation. ID is empty for bulk operations
// and for the profile.
type Change struct {
	Collection Collection `json:"collection"`
	Op         Op         `json:"op"`
	ID         string     `json:"id,omitempty"`
}

type Listener func(Change)

type Option func(*Store)

// WithClock replaces time.Now for ids, booking dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithAvatarFunc replaces the placeholder avatar picker used by AddReview.
func WithAvatarFunc(fn func() string) Option {
	return func(s *Store) { s.avatar = fn }
}

type Store struct {
	mu            sync.RWMutex
	movies        []entity.Movie
	bookings      []entity.Booking
	offers        []entity.Offer
	messages      []entity.Message
	notifications []entity.Notification
	profile       entity.UserProfile

	repo   repository.SnapshotRepository
	ids    *idGenerator
	now    func() time.Time
	avatar func() string
	log    *zap.Logger

	listenersMu  sync.Mutex
	listeners    map[int]Listener
	nextListener int
}

// New returns a store holding the seed data.
func New(repo repository.SnapshotRepository, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		movies:        seed.Movies(),
		bookings:      seed.Bookings(),
		offers:        seed.Offers(),
		messages:      seed.Messages(),
		notifications: seed.Notifications(),
		profile:       seed.UserProfile(),
		repo:          repo,
		ids:           newIDGenerator(),
		now:           time.Now,
		avatar:        utils.RandomPortrait,
		log:           log.With(zap.String("component", "store")),
		listeners:     make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces Movies, Bookings and the UserProfile with the snapshots held
// by the repository, if any. It must run once before the store is served.
// A snapshot that does not decode aborts the load.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()

	movies, foundMovies, err := loadSnapshot[[]entity.Movie](ctx, s.repo, repository.KeyMovies)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	bookings, foundBookings, err := loadSnapshot[[]entity.Booking](ctx, s.repo, repository.KeyBookings)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	profile, foundProfile, err := loadSnapshot[entity.UserProfile](ctx, s.repo, repository.KeyUserProfile)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if foundMovies {
		s.movies = movies
	}
	if foundBookings {
		s.bookings = bookings
	}
	if foundProfile {
		s.profile = profile
	}
	s.mu.Unlock()

	s.log.Info("Store loaded",
		zap.Bool("movies_restored", foundMovies),
		zap.Bool("bookings_restored", foundBookings),
		zap.Bool("profile_restored", foundProfile),
	)

	s.notify(Change{Collection: CollectionMovies, Op: OpLoad})
	s.notify(Change{Collection: CollectionBookings, Op: OpLoad})
	s.notify(Change{Collection: CollectionUserProfile, Op: OpLoad})
	return nil
}

func loadSnapshot[T any](ctx context.Context, repo repository.SnapshotRepository, key string) (T, bool, error) {
	var out T
	raw, found, err := repo.Get(ctx, key)
	if err != nil {
		return out, false, fmt.Errorf("read %s snapshot: %w", key, err)
	}
	if !found {
		return out, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, false, fmt.Errorf("decode %s snapshot: %w", key, err)
	}
	return out, true, nil
}

// persistLocked writes all three persisted collections, whichever changed.
// Caller must hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	snapshots := []struct {
		key   string
		value any
	}{
		{repository.KeyMovies, s.movies},
		{repository.KeyBookings, s.bookings},
		{repository.KeyUserProfile, s.profile},
	}

	for _, snap := range snapshots {
		raw, err := json.Marshal(snap.value)
		if err != nil {
			return fmt.Errorf("encode %s snapshot: %w", snap.key, err)
		}
		if err := s.repo.Set(ctx, snap.key, string(raw)); err != nil {
			s.log.Error("Failed to persist snapshot", zap.Error(err), zap.String("key", snap.key))
			return fmt.Errorf("persist %s snapshot: %w", snap.key, err)
		}
	}
	return nil
}

// ==================== SUBSCRIPTIONS ====================

// Subscribe registers fn for every future change and returns the function
// that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.listenersMu.Unlock()

	return func() {
		s.listenersMu.Lock()
		delete(s.listeners, id)
		s.listenersMu.Unlock()
	}
}

func (s *Store) notify(change Change) {
	s.listenersMu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(change)
	}
}

// ==================== TIME ====================

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z"
)

func (s *Store) today() string {
	return s.now().UTC().Format(dateLayout)
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}
