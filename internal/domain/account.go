package domain

import (
	"time"
)

// Account is the authentication identity. Every account owns exactly one
// Profile, created in the same transaction at registration.
type Account struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	AccountName  string     `json:"accountName" gorm:"uniqueIndex;size:32;not null"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Email        *string    `json:"email,omitempty" gorm:"size:100"`
	IsActive     bool       `json:"isActive" gorm:"not null;default:true"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	// Soft-delete marker. Filtered explicitly in every query; accounts are
	// never hard-deleted.
	DeletedAt *time.Time `json:"-" gorm:"index"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:AccountID"`
}

// NewAccount builds an unsaved account with its cascading profile attached.
func NewAccount(accountName, passwordHash string, profile *Profile) *Account {
	return &Account{
		AccountName:  accountName,
		PasswordHash: passwordHash,
		IsActive:     true,
		Profile:      profile,
	}
}
