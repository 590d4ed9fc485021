package store

import (
	"context"

	"movie-theater/internal/data/entity"
)

func (s *Store) UserProfile() entity.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile
}

// UpdateUserProfile shallow-merges patch into the profile and returns the result.
func (s *Store) UpdateUserProfile(ctx context.Context, patch entity.ProfilePatch) (entity.UserProfile, error) {
	s.mu.Lock()
	patch.Apply(&s.profile)
	profile := s.profile
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("Profile updated")
	s.notify(Change{Collection: CollectionUserProfile, Op: OpUpdate})
	return profile, err
}
