package subscriptions

import (
	"time"

	"streamflix-app/internal/domain/plans"
)

// Subscription status values as stored by the billing service.
const (
	StatusNone      = "none"
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

type Subscription struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index:idx_subscriptions_user_id" json:"-"`

	PlanID *uint       `json:"planId"`
	Plan   *plans.Plan `json:"plan,omitempty"`

	Status string `gorm:"type:varchar(20);not null;default:'none'" json:"status"` // none | active | cancelled

	StartDate time.Time `json:"startDate"`

	// Next billing date while active; access-expiry date once cancelled.
	EndDate time.Time `json:"endDate"`

	AutoRenew bool `gorm:"not null;default:false" json:"autoRenew"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
