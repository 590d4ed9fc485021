package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MessageHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewMessageHandler(service usecase.MessageService, log *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service: service,
		log:     log.With(zap.String("handler", "message")),
	}
}

// GetMessages handles GET /api/messages
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ListMessages(r.Context()))
}

// SendMessage handles POST /api/messages
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.service.SendMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send message")
		return
	}

	utils.ResponseCreated(w, "Message sent", msg)
}

// MarkAsRead handles PUT /api/messages/{id}/read
func (h *MessageHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkAsRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "mark message as read")
		return
	}

	utils.ResponseSuccess(w, "Message marked as read", nil)
}
