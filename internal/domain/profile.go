package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Gender values stored on a profile.
type Gender int8

const (
	GenderMale        Gender = 0
	GenderFemale      Gender = 1
	GenderUndisclosed Gender = 2
)

// Profile holds the public-facing identity of an account: biographical
// fields, the avatar reference and the six travel taxonomy associations.
// A profile is never persisted without an avatar.
type Profile struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	AccountID         uint            `json:"accountId" gorm:"uniqueIndex;not null"`
	Nickname          string          `json:"nickname" gorm:"size:16;not null"`
	Fullname          *string         `json:"fullname,omitempty" gorm:"size:30"`
	Bio               *string         `json:"bio,omitempty" gorm:"size:200"`
	Motto             *string         `json:"motto,omitempty" gorm:"size:50"`
	IsFullNameVisible bool            `json:"isFullNameVisible" gorm:"not null;default:false"`
	CoverPhoto        *string         `json:"coverPhoto,omitempty" gorm:"size:100"`
	Birthday          *datatypes.Date `json:"birthday,omitempty"`
	Gender            *Gender         `json:"gender,omitempty"`
	Phone             *string         `json:"phone,omitempty" gorm:"size:20"`
	Address           *string         `json:"address,omitempty" gorm:"size:100"`

	AvatarID uint   `json:"avatarId" gorm:"not null"`
	Avatar   Avatar `json:"avatar" gorm:"foreignKey:AvatarID"`

	OriginCountryID *uint    `json:"originCountryId,omitempty"`
	OriginCountry   *Country `json:"originCountry,omitempty" gorm:"foreignKey:OriginCountryID"`

	VisitedCountries []Country        `json:"visitedCountries" gorm:"many2many:profile_visited_countries"`
	Languages        []Language       `json:"languages" gorm:"many2many:profile_languages"`
	Currencies       []Currency       `json:"currencies" gorm:"many2many:profile_currencies"`
	TravelInterests  []TravelInterest `json:"travelInterests" gorm:"many2many:profile_travel_interests"`
	TravelStyles     []TravelStyle    `json:"travelStyles" gorm:"many2many:profile_travel_styles"`

	AvatarHistory []AvatarChangeHistory `json:"-" gorm:"foreignKey:ProfileID"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-" gorm:"index"`

	Account *Account `json:"-" gorm:"foreignKey:AccountID;references:ID"`
}

// NewProfile builds an unsaved profile carrying only the required nickname.
// The avatar assignment and its first history row are added by the caller
// before the profile is persisted.
func NewProfile(nickname string) *Profile {
	return &Profile{
		Nickname:      nickname,
		AvatarHistory: []AvatarChangeHistory{},
	}
}
