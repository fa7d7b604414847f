package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pinpin/travel-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDefaultAvatars creates count shared default avatars
func SeedDefaultAvatars(t *testing.T, db *gorm.DB, count int) []domain.Avatar {
	t.Helper()

	avatars := make([]domain.Avatar, count)
	for i := 0; i < count; i++ {
		avatars[i] = domain.Avatar{
			PublicID: fmt.Sprintf("defaults/avatar-%d", i),
			Type:     domain.AvatarTypeDefault,
		}
	}
	if err := db.Create(&avatars).Error; err != nil {
		t.Fatalf("failed to seed default avatars: %v", err)
	}
	return avatars
}

// Taxonomies holds the seeded reference data profiles link against
type Taxonomies struct {
	Countries  []domain.Country
	Languages  []domain.Language
	Currencies []domain.Currency
	Interests  []domain.TravelInterest
	Styles     []domain.TravelStyle
}

// SeedTaxonomies creates a small fixed set of every taxonomy
func SeedTaxonomies(t *testing.T, db *gorm.DB) *Taxonomies {
	t.Helper()

	tax := &Taxonomies{
		Countries: []domain.Country{
			{Name: "Taiwan", Code: "TW"},
			{Name: "Japan", Code: "JP"},
			{Name: "France", Code: "FR"},
		},
		Languages: []domain.Language{
			{Name: "Mandarin", Code: "zh-TW"},
			{Name: "Japanese", Code: "ja"},
			{Name: "English", Code: "en"},
		},
		Currencies: []domain.Currency{
			{Name: "New Taiwan Dollar", Code: "TWD"},
			{Name: "Japanese Yen", Code: "JPY"},
			{Name: "Euro", Code: "EUR"},
		},
		Interests: []domain.TravelInterest{
			{Name: "Food"},
			{Name: "Hiking"},
			{Name: "Museums"},
		},
		Styles: []domain.TravelStyle{
			{Name: "Backpacking"},
			{Name: "Luxury"},
		},
	}

	for _, seed := range []error{
		db.Create(&tax.Countries).Error,
		db.Create(&tax.Languages).Error,
		db.Create(&tax.Currencies).Error,
		db.Create(&tax.Interests).Error,
		db.Create(&tax.Styles).Error,
	} {
		if seed != nil {
			t.Fatalf("failed to seed taxonomies: %v", seed)
		}
	}
	return tax
}

// AccountBuilder creates test accounts with a builder pattern
type AccountBuilder struct {
	accountName string
	password    string
	nickname    string
	avatar      *domain.Avatar
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		accountName: fmt.Sprintf("testacct_%s", uuid.New().String()[:8]),
		password:    "testpassword123",
		nickname:    "tester",
	}
}

// WithAccountName sets the account name
func (b *AccountBuilder) WithAccountName(name string) *AccountBuilder {
	b.accountName = name
	return b
}

// WithPassword sets the password
func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

// WithNickname sets the profile nickname
func (b *AccountBuilder) WithNickname(nickname string) *AccountBuilder {
	b.nickname = nickname
	return b
}

// WithAvatar sets the initial avatar instead of creating a fresh default
func (b *AccountBuilder) WithAvatar(avatar *domain.Avatar) *AccountBuilder {
	b.avatar = avatar
	return b
}

// Build creates the account graph in the database and returns the account
// with the raw password. The graph matches what registration produces: an
// account, its profile, an avatar assignment and the first history row.
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	avatar := b.avatar
	if avatar == nil {
		avatar = &domain.Avatar{
			PublicID: fmt.Sprintf("defaults/%s", uuid.New().String()[:8]),
			Type:     domain.AvatarTypeDefault,
		}
		if err := db.Create(avatar).Error; err != nil {
			t.Fatalf("failed to create avatar: %v", err)
		}
	}

	profile := domain.NewProfile(b.nickname)
	profile.AvatarID = avatar.ID
	profile.AvatarHistory = append(profile.AvatarHistory, domain.AvatarChangeHistory{
		AvatarID:   avatar.ID,
		ChangeDate: time.Now(),
	})

	account := domain.NewAccount(b.accountName, string(hashedPassword), profile)
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// Envelope mirrors the API response wrapper
type Envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// BuildAndAuthenticate registers the account via the API and returns the
// account graph plus the session cookie
func (b *AccountBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.Account, *http.Cookie) {
	t.Helper()

	reqBody := map[string]string{
		"accountName": b.accountName,
		"password":    b.password,
		"nickname":    b.nickname,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/user/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register account: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == ts.Config.CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("register response missing session cookie")
	}

	account, err := ts.Repos.Account.GetByAccountNameWithProfile(context.Background(), nil, b.accountName)
	if err != nil || account == nil {
		t.Fatalf("failed to load registered account: %v", err)
	}

	return account, cookie
}

// NewSessionRequest creates an HTTP request carrying the session cookie
func NewSessionRequest(t *testing.T, method, url string, body interface{}, cookie *http.Cookie) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}
