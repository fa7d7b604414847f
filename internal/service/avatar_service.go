package service

import (
	"context"
	"io"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/logger"
	"github.com/pinpin/travel-backend/internal/repository"
	"go.uber.org/zap"
)

// ImageStore persists raw image bytes with an external provider and returns
// the opaque public id the avatar record keeps.
type ImageStore interface {
	Put(ctx context.Context, data io.Reader, size int64, contentType string) (string, error)
}

type AvatarService struct {
	avatars repository.AvatarRepository
	images  ImageStore
}

func NewAvatarService(avatars repository.AvatarRepository, images ImageStore) *AvatarService {
	return &AvatarService{avatars: avatars, images: images}
}

// UploadAvatar stores the image with the external provider and persists a
// user-uploaded avatar owned by the account.
func (s *AvatarService) UploadAvatar(ctx context.Context, accountID uint, data io.Reader, size int64, contentType string) (*AvatarView, error) {
	publicID, err := s.images.Put(ctx, data, size, contentType)
	if err != nil {
		return nil, err
	}

	avatar := &domain.Avatar{
		PublicID:  publicID,
		Type:      domain.AvatarTypeUserUpload,
		AccountID: &accountID,
	}
	saved, err := s.avatars.Save(ctx, nil, avatar)
	if err != nil {
		return nil, err
	}

	logger.Info("avatar uploaded",
		zap.Uint("accountID", accountID),
		zap.String("publicID", saved.PublicID))

	return newAvatarView(saved), nil
}

// DefaultAvatars lists the shared default set.
func (s *AvatarService) DefaultAvatars(ctx context.Context) ([]AvatarView, error) {
	avatars, err := s.avatars.AllDefault(ctx)
	if err != nil {
		return nil, err
	}
	return avatarViews(avatars), nil
}

// AccountAvatars lists the avatars the account has uploaded, newest first.
func (s *AvatarService) AccountAvatars(ctx context.Context, accountID uint) ([]AvatarView, error) {
	avatars, err := s.avatars.ListByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return avatarViews(avatars), nil
}

func avatarViews(avatars []domain.Avatar) []AvatarView {
	views := make([]AvatarView, 0, len(avatars))
	for i := range avatars {
		views = append(views, *newAvatarView(&avatars[i]))
	}
	return views
}
