package service

import (
	"context"
	"strings"

	"github.com/AwwwRyan/coverletter-gen/internal/logging"
	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
	"github.com/AwwwRyan/coverletter-gen/internal/profile/repository"
)

type ProfileService struct {
	store repository.Store
}

func NewProfileService(store repository.Store) *ProfileService {
	return &ProfileService{store: store}
}

// Get returns the user's profile or domain.ErrNotFound.
func (s *ProfileService) Get(ctx context.Context, uid string) (domain.Profile, error) {
	if err := checkUID(uid); err != nil {
		return domain.Profile{}, err
	}
	return s.store.Get(ctx, uid)
}

// Register overwrites the whole profile document.
func (s *ProfileService) Register(ctx context.Context, uid string, p domain.Profile) (domain.Profile, error) {
	if err := checkUID(uid); err != nil {
		return domain.Profile{}, err
	}
	if err := s.store.Set(ctx, uid, p); err != nil {
		logging.FromContext(ctx).LogError("register_profile", err)
		return domain.Profile{}, err
	}
	logging.FromContext(ctx).LogInfof("register_profile", "profile stored for uid=%s", uid)
	return p, nil
}

// Update merges the patch into the stored profile and returns the result.
func (s *ProfileService) Update(ctx context.Context, uid string, patch domain.Patch) (domain.Profile, error) {
	if err := checkUID(uid); err != nil {
		return domain.Profile{}, err
	}
	logger := logging.FromContext(ctx)
	if err := s.store.Merge(ctx, uid, patch); err != nil {
		logger.LogError("update_profile", err)
		return domain.Profile{}, err
	}
	logger.LogInfof("update_profile", "merged fields=%s for uid=%s", strings.Join(patch.Keys(), ","), uid)
	return s.store.Get(ctx, uid)
}

func (s *ProfileService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func checkUID(uid string) error {
	if strings.TrimSpace(uid) == "" {
		return domain.ErrMissingUserID
	}
	return nil
}
