package wire

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"movie-theater/internal/data/repository"
	"movie-theater/internal/queue"
	"movie-theater/internal/store"
	"movie-theater/pkg/tasks"
	"movie-theater/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status     bool              `json:"status"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Pagination json.RawMessage   `json:"pagination"`
	Errors     map[string]string `json:"errors"`
}

func setupTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()

	log := zap.NewNop()
	st := store.New(repository.NewMemoryRepository(log), log)
	require.NoError(t, st.Load(context.Background()))

	scheduler := tasks.New(log, 1, 10)
	scheduler.Run()
	t.Cleanup(func() { scheduler.Shutdown(context.Background()) })

	config := &utils.Config{Support: utils.SupportConfig{ReplyDelay: time.Millisecond}}
	publisher := queue.NewLocalPublisher(queue.NotificationHandler(st), log)

	return Wiring(st, publisher, scheduler, config, log), st
}

func doRequest(t *testing.T, app *App, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	app, _ := setupTestApp(t)

	rec, _ := doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMovieRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/movies?per_page=2&page=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var movies []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &movies))
	assert.Len(t, movies, 2)
	assert.Contains(t, string(env.Pagination), `"total":6`)

	rec, env = doRequest(t, app, http.MethodGet, "/api/movies/genres", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "Sci-Fi")

	rec, _ = doRequest(t, app, http.MethodGet, "/api/movies/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, app, http.MethodGet, "/api/movies/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
}

func TestAdminMovieRoutes(t *testing.T) {
	app, st := setupTestApp(t)

	body := `{"title":"Night Train","genre":["Thriller",""],"duration":"1h 55m","description":"A long night.","director":"Ana Li","cast":[{"name":"","role":"x"}]}`
	rec, env := doRequest(t, app, http.MethodPost, "/api/admin/movies", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID    string   `json:"id"`
		Genre []string `json:"genre"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, []string{"Thriller"}, created.Genre)
	assert.Len(t, st.Movies(), 7)

	rec, _ = doRequest(t, app, http.MethodPut, "/api/admin/movies/"+created.ID, `{"rating":4.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = doRequest(t, app, http.MethodPost, "/api/admin/movies", `{"rating":9}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Errors, "title")

	rec, _ = doRequest(t, app, http.MethodPost, "/api/admin/movies", `{"unknown":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doRequest(t, app, http.MethodDelete, "/api/admin/movies/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, app, http.MethodDelete, "/api/admin/movies/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingFlow(t *testing.T) {
	app, st := setupTestApp(t)

	rec, env := doRequest(t, app, http.MethodGet, "/api/booking-options", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"maxSeats":8`)

	date := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	body := `{"movieId":"1","theater":"Grand Theater","date":"` + date + `","time":"7:30 PM","seats":["A1","A2","A5"]}`
	rec, env = doRequest(t, app, http.MethodPost, "/api/bookings", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking struct {
		ID          string  `json:"id"`
		TotalAmount float64 `json:"totalAmount"`
		Status      string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, 47.0, booking.TotalAmount)
	assert.Equal(t, "upcoming", booking.Status)
	assert.Equal(t, 4, st.UnreadNotificationCount())

	rec, _ = doRequest(t, app, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, app, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = doRequest(t, app, http.MethodGet, "/api/bookings?status=past", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var past []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &past))
	assert.Len(t, past, 2)

	body = `{"movieId":"1","theater":"Grand Theater","date":"` + date + `","time":"7:30 PM","seats":["A3"]}`
	rec, _ = doRequest(t, app, http.MethodPost, "/api/bookings", body)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = doRequest(t, app, http.MethodDelete, "/api/bookings/B12347", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doRequest(t, app, http.MethodGet, "/api/bookings/B12347", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewRoutes(t *testing.T) {
	app, _ := setupTestApp(t)

	rec, _ := doRequest(t, app, http.MethodPost, "/api/movies/1/reviews", `{"name":"Ann","rating":5,"review":"Great"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, app, http.MethodGet, "/api/movies/1/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"averageRating":5`)

	rec, _ = doRequest(t, app, http.MethodPost, "/api/movies/404/reviews", `{"name":"Ann","rating":5,"review":"Great"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInboxAndProfileRoutes(t *testing.T) {
	app, st := setupTestApp(t)

	rec, _ := doRequest(t, app, http.MethodPut, "/api/notifications/read-all", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, st.UnreadNotificationCount())

	rec, _ = doRequest(t, app, http.MethodPut, "/api/notifications/nope/read", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, app, http.MethodPost, "/api/messages", `{"content":"hello"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doRequest(t, app, http.MethodPut, "/api/messages/M1005/read", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := doRequest(t, app, http.MethodPut, "/api/profile", `{"name":"Jane"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"Jane"`)

	rec, _ = doRequest(t, app, http.MethodGet, "/api/offers", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEventStream(t *testing.T) {
	app, st := setupTestApp(t)

	srv := httptest.NewServer(app.Router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)

	st.MarkAllNotificationsAsRead()

	var data []byte
	for {
		line, err := reader.ReadBytes('\n')
		require.NoError(t, err)
		if bytes.HasPrefix(line, []byte("data: ")) {
			data = bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data: ")))
			break
		}
	}

	var change store.Change
	require.NoError(t, json.Unmarshal(data, &change))
	assert.Equal(t, store.CollectionNotifications, change.Collection)
	assert.Equal(t, store.OpUpdate, change.Op)
}
