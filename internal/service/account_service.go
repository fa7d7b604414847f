package service

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pinpin/travel-backend/internal/auth"
	"github.com/pinpin/travel-backend/internal/domain"
	"github.com/pinpin/travel-backend/internal/logger"
	"github.com/pinpin/travel-backend/internal/repository"
	"github.com/pinpin/travel-backend/internal/token"
	"go.uber.org/zap"
)

type AccountService struct {
	accounts repository.AccountRepository
	avatars  repository.AvatarRepository
	issuer   *token.Issuer
}

func NewAccountService(accounts repository.AccountRepository, avatars repository.AvatarRepository, issuer *token.Issuer) *AccountService {
	return &AccountService{
		accounts: accounts,
		avatars:  avatars,
		issuer:   issuer,
	}
}

type RegisterInput struct {
	AccountName string
	Password    string
	Nickname    string
}

type LoginInput struct {
	AccountName string
	Password    string
}

// AuthResult carries the signed session token and the public identity fields
// echoed back to the client.
type AuthResult struct {
	Token          string
	AccountName    string
	Nickname       string
	AvatarPublicID string
}

type UpdateAccountInput struct {
	Email    *string
	Password *string
}

// AccountView is the public-facing slice of an account.
type AccountView struct {
	AccountName string    `json:"accountName"`
	Email       *string   `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Register creates an account bound 1:1 to a profile with a randomly
// assigned default avatar. The account, the profile and the first avatar
// history row are persisted in one cascading write; partial failure leaves
// no partial state.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := s.accounts.GetByAccountName(ctx, nil, input.AccountName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAccountExists
	}

	hashedPassword, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	profile := domain.NewProfile(input.Nickname)

	chosen, err := s.randomDefaultAvatar(ctx)
	if err != nil {
		return nil, err
	}
	profile.AvatarID = chosen.ID
	// ProfileID is filled in by the cascading save.
	profile.AvatarHistory = append(profile.AvatarHistory, domain.AvatarChangeHistory{
		AvatarID:   chosen.ID,
		ChangeDate: time.Now(),
	})

	account := domain.NewAccount(input.AccountName, hashedPassword, profile)
	saved, err := s.accounts.Save(ctx, nil, account)
	if err != nil {
		return nil, err
	}

	// Re-fetch the persisted graph: id generation and relation
	// materialization happen server-side.
	created, err := s.accounts.GetByIDWithProfileAndAvatar(ctx, nil, saved.ID)
	if err != nil {
		return nil, err
	}
	if created == nil || created.Profile == nil {
		logger.Error("registered account missing after save", zap.Uint("accountID", saved.ID))
		return nil, domain.ErrConsistency
	}

	return s.authResult(created)
}

// Login verifies credentials and issues a session token. A missing account
// and a wrong password produce the identical error so responses leak nothing
// about which of the two occurred.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	account, err := s.accounts.GetByAccountNameWithProfile(ctx, nil, input.AccountName)
	if err != nil {
		return nil, err
	}
	if account == nil || account.Profile == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.authResult(account)
	if err != nil {
		return nil, err
	}

	// The last-login stamp is treated as must-succeed: a failed write fails
	// the login even though the token was already minted.
	now := time.Now()
	account.LastLoginAt = &now
	if _, err := s.accounts.Save(ctx, nil, account); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateAccount applies a self-service patch to the authenticated account.
// Absent fields leave the stored values untouched.
func (s *AccountService) UpdateAccount(ctx context.Context, account *domain.Account, input UpdateAccountInput) (*AccountView, error) {
	if account == nil {
		return nil, domain.ErrUnauthenticated
	}

	if input.Email != nil {
		account.Email = input.Email
	}
	if input.Password != nil {
		hashedPassword, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hashedPassword
	}

	updated, err := s.accounts.Save(ctx, nil, account)
	if err != nil {
		return nil, err
	}

	return &AccountView{
		AccountName: updated.AccountName,
		Email:       updated.Email,
		CreatedAt:   updated.CreatedAt,
	}, nil
}

// randomDefaultAvatar picks uniformly from the current default set. An empty
// set is a deployment configuration failure, not a user error.
func (s *AccountService) randomDefaultAvatar(ctx context.Context) (*domain.Avatar, error) {
	defaults, err := s.avatars.AllDefault(ctx)
	if err != nil {
		return nil, err
	}
	if len(defaults) == 0 {
		logger.Error("default avatar set is empty")
		return nil, domain.ErrNoDefaultAvatar
	}
	return &defaults[rand.IntN(len(defaults))], nil
}

func (s *AccountService) authResult(account *domain.Account) (*AuthResult, error) {
	signed, err := s.issuer.Issue(account.ID, account.AccountName, account.Profile.Nickname)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:          signed,
		AccountName:    account.AccountName,
		Nickname:       account.Profile.Nickname,
		AvatarPublicID: account.Profile.Avatar.PublicID,
	}, nil
}
