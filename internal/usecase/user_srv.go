package usecase

import (
	"context"
	"fmt"

	"movie-theater/internal/data/entity"
	"movie-theater/internal/dto/request"
	"movie-theater/internal/store"

	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context) entity.UserProfile
	UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.UserProfile, error)
}

type userService struct {
	store *store.Store
	log   *zap.Logger
}

func NewUserService(st *store.Store, log *zap.Logger) UserService {
	return &userService{
		store: st,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context) entity.UserProfile {
	return s.store.UserProfile()
}

func (s *userService) UpdateProfile(ctx context.Context, req *request.UpdateProfileRequest) (*entity.UserProfile, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Update profile validation failed", zap.Error(err))
		return nil, err
	}

	profile, err := s.store.UpdateUserProfile(ctx, entity.ProfilePatch{
		Name:        req.Name,
		Email:       req.Email,
		MemberSince: req.MemberSince,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated")
	return &profile, nil
}
