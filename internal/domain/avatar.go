package domain

import "time"

// AvatarType distinguishes user uploads from the shared default set.
type AvatarType int8

const (
	AvatarTypeUserUpload AvatarType = 0
	AvatarTypeDefault    AvatarType = 1
)

// Avatar is a stored image reference. Default avatars are shared by many
// profiles; uploaded avatars belong to the uploading account.
type Avatar struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	PublicID  string     `json:"publicId" gorm:"size:100;not null"`
	Type      AvatarType `json:"type" gorm:"not null"`
	AccountID *uint      `json:"accountId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"-" gorm:"index"`
}

// AvatarChangeHistory records one point-in-time assignment of an avatar to a
// profile. Rows are append-only; the effective history for a (profile, avatar)
// pair is its most recent row.
type AvatarChangeHistory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProfileID  uint      `json:"profileId" gorm:"not null;index"`
	AvatarID   uint      `json:"avatarId" gorm:"not null;index"`
	ChangeDate time.Time `json:"changeDate" gorm:"not null"`

	Avatar *Avatar `json:"avatar,omitempty" gorm:"foreignKey:AvatarID"`
}

// NewAvatarChange builds an unsaved history row stamped with the current time.
func NewAvatarChange(profileID, avatarID uint) *AvatarChangeHistory {
	return &AvatarChangeHistory{
		ProfileID:  profileID,
		AvatarID:   avatarID,
		ChangeDate: time.Now(),
	}
}
