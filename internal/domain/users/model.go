package users

import (
	"time"
)

// Account status values. A blocked account cannot sign in and its tokens
// stop working on the next request.
const (
	AccountActive  = "active"
	AccountBlocked = "blocked"
)

// IsValidAccountStatus guards the admin status update against typos.
func IsValidAccountStatus(s string) bool {
	return s == AccountActive || s == AccountBlocked
}

type User struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"not null"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	Phone        string
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'user'"`
	Status       string  `gorm:"type:varchar(20);not null;default:'active'"`
	IsVerified   bool

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	Profiles []Profile `gorm:"foreignKey:UserID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxProfilesPerUser caps how many viewing profiles one account can hold.
const MaxProfilesPerUser = 5

// Profile is one viewing identity under an account: its own avatar,
// maturity setting, watchlist and history.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:idx_profiles_user_id" json:"-"`

	Name      string `gorm:"not null" json:"name"`
	AvatarURL string `json:"avatarUrl"`
	IsKids    bool   `gorm:"not null;default:false" json:"isKids"`

	// preferred genres, persisted as JSON
	Preferences []string `gorm:"serializer:json" json:"preferences"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
