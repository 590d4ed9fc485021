package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/data/repository"
	"movie-theater/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2025, 5, 16, 9, 30, 0, 0, time.UTC)

const testAvatar = "https://randomuser.me/api/portraits/women/1.jpg"

func setupTestStore(t *testing.T) (*Store, repository.SnapshotRepository) {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	s := New(repo, zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
		WithAvatarFunc(func() string { return testAvatar }),
	)
	require.NoError(t, s.Load(context.Background()))
	return s, repo
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (failingRepo) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestNew_Seed(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.Len(t, s.Movies(), 6)
	assert.Len(t, s.Bookings(), 3)
	assert.Len(t, s.Offers(), 4)
	assert.Len(t, s.Messages(), 5)
	assert.Len(t, s.Notifications(), 4)
	assert.Equal(t, "John Doe", s.UserProfile().Name)
	assert.Equal(t, 1, s.UnreadMessageCount())
	assert.Equal(t, 3, s.UnreadNotificationCount())
}

func TestUpdateBooking_Cancel(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	found, err := s.UpdateBooking(ctx, "B12345", entity.BookingPatch{Status: utils.Ptr(entity.BookingStatusCancelled)})
	require.NoError(t, err)
	require.True(t, found)

	b, ok := s.BookingByID("B12345")
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusCancelled, b.Status)
	assert.Equal(t, "Cineplex Downtown", b.Theater)
	assert.Equal(t, []string{"F5", "F6", "F7"}, b.Seats)
	assert.Equal(t, 45.0, b.TotalAmount)
	assert.Len(t, s.UpcomingBookings(), 1)
	assert.Len(t, s.PastBookings(), 2)
}

func TestUpdateBookingIf(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	upcoming := func(b entity.Booking) bool { return b.Status == entity.BookingStatusUpcoming }
	cancel := entity.BookingPatch{Status: utils.Ptr(entity.BookingStatusCancelled)}

	var changes int
	s.Subscribe(func(Change) { changes++ })

	b, found, applied, err := s.UpdateBookingIf(ctx, "B12345", upcoming, cancel)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, applied)
	assert.Equal(t, entity.BookingStatusCancelled, b.Status)

	b, found, applied, err = s.UpdateBookingIf(ctx, "B12345", upcoming, cancel)
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, applied)
	assert.Equal(t, entity.BookingStatusCancelled, b.Status)

	_, found, applied, err = s.UpdateBookingIf(ctx, "nope", upcoming, cancel)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, applied)

	assert.Equal(t, 1, changes)
}

func TestUpdateBookingIf_ConcurrentOnlyOneApplies(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	upcoming := func(b entity.Booking) bool { return b.Status == entity.BookingStatusUpcoming }
	cancel := entity.BookingPatch{Status: utils.Ptr(entity.BookingStatusCancelled)}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, applied, err := s.UpdateBookingIf(ctx, "B12345", upcoming, cancel)
			assert.NoError(t, err)
			if applied {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestUpdate_UnknownID(t *testing.T) {
	s, repo := setupTestStore(t)
	ctx := context.Background()

	before := s.Bookings()
	found, err := s.UpdateBooking(ctx, "nope", entity.BookingPatch{Theater: utils.Ptr("x")})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, s.Bookings())

	found, err = s.UpdateMovie(ctx, "nope", entity.MoviePatch{Title: utils.Ptr("x")})
	require.NoError(t, err)
	assert.False(t, found)

	assert.False(t, s.MarkMessageAsRead("nope"))
	assert.False(t, s.MarkNotificationAsRead("nope"))

	// Nothing was written.
	_, ok, err := repo.Get(ctx, repository.KeyBookings)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateMovie_PartialMerge(t *testing.T) {
	s, _ := setupTestStore(t)

	before, ok := s.MovieByID("2")
	require.True(t, ok)

	found, err := s.UpdateMovie(context.Background(), "2", entity.MoviePatch{
		Title:  utils.Ptr("Renamed"),
		Rating: utils.Ptr(2.5),
	})
	require.NoError(t, err)
	require.True(t, found)

	after, _ := s.MovieByID("2")
	assert.Equal(t, "Renamed", after.Title)
	assert.Equal(t, 2.5, after.Rating)
	assert.Equal(t, before.Genre, after.Genre)
	assert.Equal(t, before.Cast, after.Cast)
	assert.Equal(t, before.Director, after.Director)
}

func TestAddDeleteMovie(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	m, err := s.AddMovie(ctx, entity.Movie{ID: "ignored", Title: "New One", Genre: []string{"Drama"}})
	require.NoError(t, err)
	assert.Equal(t, "m1747387800000", m.ID)
	assert.Len(t, s.Movies(), 7)
	assert.Equal(t, m.ID, s.Movies()[6].ID)

	found, err := s.DeleteMovie(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, s.Movies(), 6)

	found, err = s.DeleteMovie(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, s.Movies(), 6)
}

func TestDeleteMovie_KeepsBookings(t *testing.T) {
	s, _ := setupTestStore(t)

	found, err := s.DeleteMovie(context.Background(), "1")
	require.NoError(t, err)
	require.True(t, found)

	b, ok := s.BookingByID("B12345")
	require.True(t, ok)
	assert.Equal(t, "Interstellar: Beyond Time", b.MovieTitle)
}

func TestAddBooking_ForcesStatusAndDate(t *testing.T) {
	s, _ := setupTestStore(t)

	b, err := s.AddBooking(context.Background(), entity.Booking{
		MovieID:     "2",
		MovieTitle:  "Whatever",
		Theater:     "Grand Theater",
		Seats:       []string{"A1"},
		TotalAmount: 17,
		BookingDate: "1999-01-01",
		Status:      entity.BookingStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusUpcoming, b.Status)
	assert.Equal(t, "2025-05-16", b.BookingDate)
	assert.Equal(t, "B1747387800000", b.ID)
	assert.Len(t, s.Bookings(), 4)
}

func TestDeleteBooking(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	found, err := s.DeleteBooking(ctx, "B12346")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, s.Bookings(), 2)

	found, err = s.DeleteBooking(ctx, "B12346")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, s.Bookings(), 2)
}

func TestAddReview(t *testing.T) {
	s, _ := setupTestStore(t)

	review, found, err := s.AddReview(context.Background(), "1", entity.Review{Name: "Ann", Rating: 5, Review: "Great"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "r1747387800000", review.ID)
	assert.Equal(t, testAvatar, review.Avatar)

	m, _ := s.MovieByID("1")
	require.Len(t, m.Reviews, 1)
	assert.Equal(t, review, m.Reviews[0])
}

func TestAddReview_KeepsGivenAvatar(t *testing.T) {
	s, _ := setupTestStore(t)

	review, _, err := s.AddReview(context.Background(), "1", entity.Review{Name: "Bo", Rating: 3, Avatar: "a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", review.Avatar)
}

func TestAddReview_UnknownMovie(t *testing.T) {
	s, _ := setupTestStore(t)

	_, found, err := s.AddReview(context.Background(), "404", entity.Review{Name: "Ann", Rating: 5})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateUserProfile(t *testing.T) {
	s, _ := setupTestStore(t)

	profile, err := s.UpdateUserProfile(context.Background(), entity.ProfilePatch{Name: utils.Ptr("Jane Doe")})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "john.doe@example.com", profile.Email)
	assert.Equal(t, profile, s.UserProfile())
}

func TestMessages(t *testing.T) {
	s, _ := setupTestStore(t)

	msg := s.AddMessage(entity.Message{Sender: entity.SenderUser, Content: "hi", Read: true})
	assert.Equal(t, "M1747387800000", msg.ID)
	assert.Equal(t, "2025-05-16T09:30:00.000Z", msg.Timestamp)
	assert.False(t, msg.Read)
	assert.Equal(t, 2, s.UnreadMessageCount())

	assert.True(t, s.MarkMessageAsRead(msg.ID))
	assert.Equal(t, 1, s.UnreadMessageCount())
}

func TestMarkAllNotificationsAsRead_Idempotent(t *testing.T) {
	s, _ := setupTestStore(t)

	n := s.AddNotification(entity.Notification{Type: entity.NotificationTypeOffer, Title: "t", Message: "m"})
	assert.False(t, n.Read)
	assert.Equal(t, 4, s.UnreadNotificationCount())

	s.MarkAllNotificationsAsRead()
	first := s.Notifications()
	s.MarkAllNotificationsAsRead()

	assert.Equal(t, first, s.Notifications())
	assert.Equal(t, 0, s.UnreadNotificationCount())
	for _, item := range first {
		assert.True(t, item.Read, item.ID)
	}
}

func TestPersistAndReload(t *testing.T) {
	s, repo := setupTestStore(t)
	ctx := context.Background()

	_, err := s.AddMovie(ctx, entity.Movie{Title: "Persisted", Genre: []string{"Drama"}})
	require.NoError(t, err)
	_, _, err = s.AddReview(ctx, "1", entity.Review{Name: "Ann", Rating: 5, Review: "Great"})
	require.NoError(t, err)
	_, err = s.UpdateBooking(ctx, "B12345", entity.BookingPatch{Status: utils.Ptr(entity.BookingStatusCancelled)})
	require.NoError(t, err)
	_, err = s.UpdateUserProfile(ctx, entity.ProfilePatch{Email: utils.Ptr("jane@example.com")})
	require.NoError(t, err)
	s.AddMessage(entity.Message{Sender: entity.SenderUser, Content: "session only"})

	reloaded := New(repo, zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, s.Movies(), reloaded.Movies())
	assert.Equal(t, s.Bookings(), reloaded.Bookings())
	assert.Equal(t, s.UserProfile(), reloaded.UserProfile())
	assert.Len(t, reloaded.Messages(), 5)
}

func TestLoad_MalformedSnapshot(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	require.NoError(t, repo.Set(context.Background(), repository.KeyMovies, "{not json"))

	s := New(repo, zap.NewNop())
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode movies snapshot")
	assert.Len(t, s.Movies(), 6)
}

func TestLoad_PartialSnapshot(t *testing.T) {
	repo := repository.NewMemoryRepository(zap.NewNop())
	require.NoError(t, repo.Set(context.Background(), repository.KeyBookings, "[]"))

	s := New(repo, zap.NewNop())
	require.NoError(t, s.Load(context.Background()))
	assert.Empty(t, s.Bookings())
	assert.Len(t, s.Movies(), 6)
}

func TestPersist_ErrorKeepsChange(t *testing.T) {
	s := New(failingRepo{}, zap.NewNop())

	found, err := s.UpdateMovie(context.Background(), "1", entity.MoviePatch{Title: utils.Ptr("Changed")})
	require.Error(t, err)
	assert.True(t, found)
	assert.Contains(t, err.Error(), "disk full")

	m, _ := s.MovieByID("1")
	assert.Equal(t, "Changed", m.Title)
}

func TestSubscribe(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	var changes []Change
	unsubscribe := s.Subscribe(func(c Change) {
		// Listeners run outside the lock and may read the store.
		_ = s.Movies()
		changes = append(changes, c)
	})

	_, err := s.DeleteBooking(ctx, "B12347")
	require.NoError(t, err)
	_, err = s.DeleteBooking(ctx, "unknown")
	require.NoError(t, err)
	s.MarkAllNotificationsAsRead()

	require.Len(t, changes, 2)
	assert.Equal(t, Change{Collection: CollectionBookings, Op: OpDelete, ID: "B12347"}, changes[0])
	assert.Equal(t, Change{Collection: CollectionNotifications, Op: OpUpdate}, changes[1])

	unsubscribe()
	s.AddMessage(entity.Message{Sender: entity.SenderUser, Content: "hi"})
	assert.Len(t, changes, 2)
}

func TestSearchMoviesAndGenres(t *testing.T) {
	s, _ := setupTestStore(t)

	assert.Len(t, s.SearchMovies("", ""), 6)
	res := s.SearchMovies("INTERSTELLAR", "")
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ID)
	assert.Empty(t, s.SearchMovies("no such title", ""))

	genres := s.Genres()
	require.NotEmpty(t, genres)
	for _, m := range s.SearchMovies("", genres[0]) {
		assert.Contains(t, m.Genre, genres[0])
	}
}

func TestReadAccessorsReturnCopies(t *testing.T) {
	s, _ := setupTestStore(t)

	movies := s.Movies()
	movies[0].Title = "mutated"
	movies[0].Genre[0] = "mutated"

	m, _ := s.MovieByID(movies[0].ID)
	assert.NotEqual(t, "mutated", m.Title)
	assert.NotEqual(t, "mutated", m.Genre[0])
}

func TestIDs_SameMillisecond(t *testing.T) {
	s, _ := setupTestStore(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		n := s.AddNotification(entity.Notification{Type: entity.NotificationTypeMovie})
		assert.False(t, seen[n.ID], n.ID)
		seen[n.ID] = true
	}
	notifications := s.Notifications()
	assert.Equal(t, "N1747387800000", notifications[4].ID)
	assert.Equal(t, "N1747387800019", notifications[23].ID)
}

func TestConcurrentMutations(t *testing.T) {
	s, _ := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddBooking(ctx, entity.Booking{MovieID: "1", Seats: []string{"A1"}})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	bookings := s.Bookings()
	assert.Len(t, bookings, 13)
	ids := make(map[string]bool)
	for _, b := range bookings {
		ids[b.ID] = true
	}
	assert.Len(t, ids, 13)
}
