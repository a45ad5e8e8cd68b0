package model

import "time"

// PasswordResetTokenModel: token sekali pakai, kedaluwarsa 1 jam.
type PasswordResetTokenModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserUID   uint      `json:"user_uid" gorm:"index;not null"`
	Token     string    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}

func (t *PasswordResetTokenModel) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
