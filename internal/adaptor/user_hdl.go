package adaptor

import (
	"net/http"

	"movie-theater/internal/dto/request"
	"movie-theater/internal/usecase"
	"movie-theater/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/profile
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetProfile(r.Context()))
}

// UpdateProfile handles PUT /api/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully", profile)
}
