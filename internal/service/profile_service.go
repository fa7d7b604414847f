package service

import (
	"context"
	"time"

	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService struct {
	transactor repository.Transactor
	profiles   repository.ProfileRepository
	avatars    repository.AvatarRepository
	history    repository.AvatarHistoryRepository
}

func NewProfileService(
	transactor repository.Transactor,
	profiles repository.ProfileRepository,
	avatars repository.AvatarRepository,
	history repository.AvatarHistoryRepository,
) *ProfileService {
	return &ProfileService{
		transactor: transactor,
		profiles:   profiles,
		avatars:    avatars,
		history:    history,
	}
}

// AvatarView is the serialization-ready shape of an avatar.
type AvatarView struct {
	ID        uint              `json:"id"`
	PublicID  string            `json:"publicId"`
	Type      domain.AvatarType `json:"type"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ProfileView flattens every relation to bare ids so no entity leaks past
// the service boundary.
type ProfileView struct {
	Nickname          string          `json:"nickname"`
	Fullname          *string         `json:"fullname,omitempty"`
	Bio               *string         `json:"bio,omitempty"`
	Motto             *string         `json:"motto,omitempty"`
	IsFullNameVisible bool            `json:"isFullNameVisible"`
	CoverPhoto        *string         `json:"coverPhoto,omitempty"`
	Birthday          *datatypes.Date `json:"birthday,omitempty"`
	Gender            *domain.Gender  `json:"gender,omitempty"`
	Phone             *string         `json:"phone,omitempty"`
	Address           *string         `json:"address,omitempty"`
	OriginCountry     *uint           `json:"originCountry,omitempty"`
	VisitedCountries  []uint          `json:"visitedCountries"`
	Languages         []uint          `json:"languages"`
	Currencies        []uint          `json:"currencies"`
	TravelInterests   []uint          `json:"travelInterests"`
	TravelStyles      []uint          `json:"travelStyles"`
	Avatar            AvatarView      `json:"avatar"`
	User              AccountView     `json:"user"`
}

// ProfileUpdateInput overwrites the full profile. Omitted scalar fields
// clear the stored values; IsFullNameVisible defaults to false when omitted.
// Relation lists replace the stored sets; empty or absent lists clear them.
type ProfileUpdateInput struct {
	Nickname          string          `json:"nickname"`
	Fullname          *string         `json:"fullname"`
	Bio               *string         `json:"bio"`
	Motto             *string         `json:"motto"`
	IsFullNameVisible bool            `json:"isFullNameVisible"`
	CoverPhoto        *string         `json:"coverPhoto"`
	Birthday          *datatypes.Date `json:"birthday"`
	Gender            *domain.Gender  `json:"gender"`
	Phone             *string         `json:"phone"`
	Address           *string         `json:"address"`
	AvatarID          *uint           `json:"avatar"`
	OriginCountry     *uint           `json:"originCountry"`
	VisitedCountries  []uint          `json:"visitedCountries"`
	Languages         []uint          `json:"languages"`
	Currencies        []uint          `json:"currencies"`
	TravelInterests   []uint          `json:"travelInterests"`
	TravelStyles      []uint          `json:"travelStyles"`
}

// HistoryEntryView is one row of the deduplicated avatar timeline.
type HistoryEntryView struct {
	AvatarID   uint       `json:"avatarId"`
	Avatar     AvatarView `json:"avatar"`
	ChangeDate time.Time  `json:"changeDate"`
}

// GetProfile returns the fully inflated profile as a flat snapshot.
func (s *ProfileService) GetProfile(ctx context.Context, accountID uint) (*ProfileView, error) {
	profile, err := s.profiles.GetByAccountIDWithAll(ctx, nil, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return newProfileView(profile), nil
}

// UpdateProfile rewrites the profile's scalar fields and all six taxonomy
// associations inside one transaction. An avatar change carried on the patch
// goes through the history-aware path: the target avatar is verified and a
// history row appended in the same transaction, so avatars never change
// silently. Any failure rolls the whole update back.
func (s *ProfileService) UpdateProfile(ctx context.Context, accountID uint, input ProfileUpdateInput) (*ProfileView, error) {
	var view *ProfileView

	err := s.transactor.Transaction(ctx, func(tx *gorm.DB) error {
		profile, err := s.profiles.GetByAccountIDWithAll(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrProfileNotFound
		}

		profile.Nickname = input.Nickname
		profile.Fullname = input.Fullname
		profile.Bio = input.Bio
		profile.Motto = input.Motto
		profile.IsFullNameVisible = input.IsFullNameVisible
		profile.CoverPhoto = input.CoverPhoto
		profile.Birthday = input.Birthday
		profile.Gender = input.Gender
		profile.Phone = input.Phone
		profile.Address = input.Address

		profile.OriginCountryID = input.OriginCountry
		profile.OriginCountry = nil
		profile.VisitedCountries = countryStubs(input.VisitedCountries)
		profile.Languages = languageStubs(input.Languages)
		profile.Currencies = currencyStubs(input.Currencies)
		profile.TravelInterests = interestStubs(input.TravelInterests)
		profile.TravelStyles = styleStubs(input.TravelStyles)

		if input.AvatarID != nil && *input.AvatarID != profile.AvatarID {
			target, err := s.avatars.GetByID(ctx, tx, *input.AvatarID)
			if err != nil {
				return err
			}
			if target == nil {
				return domain.ErrAvatarNotFound
			}
			if _, err := s.history.Append(ctx, tx, domain.NewAvatarChange(profile.ID, target.ID)); err != nil {
				return err
			}
			profile.AvatarID = target.ID
		}

		if _, err := s.profiles.Save(ctx, tx, profile); err != nil {
			return err
		}

		// Re-read inside the same transaction so the snapshot reflects the
		// committed relation state.
		updated, err := s.profiles.GetByAccountIDWithAll(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrConsistency
		}
		view = newProfileView(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateAvatar points the profile at another existing avatar and appends a
// history row, all in one transaction. Re-assigning the current avatar is an
// idempotent no-op that writes nothing.
func (s *ProfileService) UpdateAvatar(ctx context.Context, accountID uint, avatarID int) (*AvatarView, error) {
	if avatarID <= 0 {
		return nil, domain.ErrAvatarNotFound
	}

	var view *AvatarView
	err := s.transactor.Transaction(ctx, func(tx *gorm.DB) error {
		profile, err := s.profiles.GetByAccountIDWithAll(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrProfileNotFound
		}

		if uint(avatarID) == profile.AvatarID {
			view = newAvatarView(&profile.Avatar)
			return nil
		}

		target, err := s.avatars.GetByID(ctx, tx, uint(avatarID))
		if err != nil {
			return err
		}
		if target == nil {
			return domain.ErrAvatarNotFound
		}

		if _, err := s.history.Append(ctx, tx, domain.NewAvatarChange(profile.ID, target.ID)); err != nil {
			return err
		}

		profile.AvatarID = target.ID
		if _, err := s.profiles.Save(ctx, tx, profile); err != nil {
			return err
		}

		view = newAvatarView(target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetAvatarHistory returns the deduplicated avatar timeline, newest first.
func (s *ProfileService) GetAvatarHistory(ctx context.Context, accountID uint) ([]HistoryEntryView, error) {
	profile, err := s.profiles.GetByAccountIDWithAll(ctx, nil, accountID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	entries, err := s.history.LatestPerAvatar(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	views := make([]HistoryEntryView, 0, len(entries))
	for _, entry := range entries {
		v := HistoryEntryView{
			AvatarID:   entry.AvatarID,
			ChangeDate: entry.ChangeDate,
		}
		if entry.Avatar != nil {
			v.Avatar = *newAvatarView(entry.Avatar)
		}
		views = append(views, v)
	}
	return views, nil
}

func newProfileView(p *domain.Profile) *ProfileView {
	view := &ProfileView{
		Nickname:          p.Nickname,
		Fullname:          p.Fullname,
		Bio:               p.Bio,
		Motto:             p.Motto,
		IsFullNameVisible: p.IsFullNameVisible,
		CoverPhoto:        p.CoverPhoto,
		Birthday:          p.Birthday,
		Gender:            p.Gender,
		Phone:             p.Phone,
		Address:           p.Address,
		OriginCountry:     p.OriginCountryID,
		VisitedCountries:  make([]uint, 0, len(p.VisitedCountries)),
		Languages:         make([]uint, 0, len(p.Languages)),
		Currencies:        make([]uint, 0, len(p.Currencies)),
		TravelInterests:   make([]uint, 0, len(p.TravelInterests)),
		TravelStyles:      make([]uint, 0, len(p.TravelStyles)),
		Avatar:            *newAvatarView(&p.Avatar),
	}
	for _, c := range p.VisitedCountries {
		view.VisitedCountries = append(view.VisitedCountries, c.ID)
	}
	for _, l := range p.Languages {
		view.Languages = append(view.Languages, l.ID)
	}
	for _, c := range p.Currencies {
		view.Currencies = append(view.Currencies, c.ID)
	}
	for _, t := range p.TravelInterests {
		view.TravelInterests = append(view.TravelInterests, t.ID)
	}
	for _, t := range p.TravelStyles {
		view.TravelStyles = append(view.TravelStyles, t.ID)
	}
	if p.Account != nil {
		view.User = AccountView{
			AccountName: p.Account.AccountName,
			Email:       p.Account.Email,
			CreatedAt:   p.Account.CreatedAt,
		}
	}
	return view
}

func newAvatarView(a *domain.Avatar) *AvatarView {
	return &AvatarView{
		ID:        a.ID,
		PublicID:  a.PublicID,
		Type:      a.Type,
		CreatedAt: a.CreatedAt,
	}
}

// Relation id lists become reference stubs; the store resolves them by
// foreign key on save without fetching full taxonomy rows.

func countryStubs(ids []uint) []domain.Country {
	out := make([]domain.Country, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Country{ID: id})
	}
	return out
}

func languageStubs(ids []uint) []domain.Language {
	out := make([]domain.Language, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Language{ID: id})
	}
	return out
}

func currencyStubs(ids []uint) []domain.Currency {
	out := make([]domain.Currency, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Currency{ID: id})
	}
	return out
}

func interestStubs(ids []uint) []domain.TravelInterest {
	out := make([]domain.TravelInterest, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.TravelInterest{ID: id})
	}
	return out
}

func styleStubs(ids []uint) []domain.TravelStyle {
	out := make([]domain.TravelStyle, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.TravelStyle{ID: id})
	}
	return out
}
