package billing

import (
	"time"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/users"
)

// Payment statuses mirror the lifecycle of a purchase order against the
// payment gateway.
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Payment struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index:idx_payments_user_id"`
	User   users.User
	PlanID *uint
	Plan   *plans.Plan

	// Stripe PaymentIntent ID, the order reference handed to the client.
	StripePaymentIntentID string `gorm:"uniqueIndex:idx_payments_intent_id"`

	// Internal receipt reference (uuid), shown on the payment history screen.
	Receipt string `gorm:"uniqueIndex:idx_payments_receipt"`

	Amount    int64 `gorm:"not null"`
	Currency  string
	Status    string `gorm:"type:varchar(20);not null;default:'pending'"`
	IsUpgrade bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
