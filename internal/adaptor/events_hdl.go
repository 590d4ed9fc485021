package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"movie-theater/internal/store"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

const keepAliveInterval = 30 * time.Second

// Subscriber is the part of the store the event stream needs.
type Subscriber interface {
	Subscribe(fn store.Listener) (unsubscribe func())
}

// EventsHandler streams store changes as server-sent events, one "change"
// event per mutation.
type EventsHandler struct {
	store Subscriber
	log   *zap.Logger
}

func NewEventsHandler(st Subscriber, log *zap.Logger) *EventsHandler {
	return &EventsHandler{
		store: st,
		log:   log.With(zap.String("handler", "events")),
	}
}

// Stream handles GET /api/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)

	changes := make(chan store.Change, 32)
	unsubscribe := h.store.Subscribe(func(c store.Change) {
		// Listeners run inside the mutating call; a slow client drops events.
		select {
		case changes <- c:
		default:
			h.log.Warn("Event dropped, client too slow", zap.String("collection", string(c.Collection)))
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, ": connected\n\n")
	if err := rc.Flush(); err != nil {
		h.log.Error("Streaming unsupported", zap.Error(err))
		return
	}

	requestID, _ := utils.GetRequestIDFromContext(r.Context())
	h.log.Debug("Event stream opened", zap.String("request_id", requestID))

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.log.Debug("Event stream closed", zap.String("request_id", requestID))
			return

		case <-keepAlive.C:
			fmt.Fprint(w, ": ping\n\n")

		case c := <-changes:
			data, err := json.Marshal(c)
			if err != nil {
				h.log.Error("Failed to encode change", zap.Error(err))
				continue
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", data)
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}
