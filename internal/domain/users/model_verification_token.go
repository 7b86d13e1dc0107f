package users

import "time"

// VerificationToken covers both email verification and password reset links.
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index:idx_verification_tokens_user_id"`
	Token     string `gorm:"not null;uniqueIndex:idx_verification_tokens_token"`
	Purpose   string `gorm:"type:varchar(20);not null;default:'verify_email'"` // verify_email | reset_password
	ExpiresAt *time.Time
	CreatedAt time.Time
}
