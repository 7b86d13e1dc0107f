package users

import (
	"time"

	domainusers "streamflix-app/internal/domain/users"
)

type MeResponse struct {
	User     UserDTO              `json:"user"`
	Billing  BillingDTO           `json:"billing"`
	Access   AccessDTO            `json:"access"`
	Profiles []domainusers.Profile `json:"profiles"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Phone      *string `json:"phone"`
	Role       string  `json:"role"`
	IsVerified bool    `json:"is_verified"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan         *PlanDTO         `json:"plan"`
	Subscription *SubscriptionDTO `json:"subscription"`
	Upgrade      *UpgradeDTO      `json:"upgrade"`
}

type PlanDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Tier    string `json:"type"`
	Billing string `json:"billing"`
	Price   int64  `json:"price"`
}

type SubscriptionDTO struct {
	Status      string     `json:"status"`
	State       string     `json:"state"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	AutoRenew   bool       `json:"autoRenew"`
	DaysElapsed int        `json:"daysElapsed"`
}

type UpgradeDTO struct {
	Eligible     bool   `json:"eligible"`
	Reason       string `json:"reason"`
	AmountDue    int64  `json:"amountDue"`
	TargetPlanID *uint  `json:"targetPlanId"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State        string   `json:"state"` // full|grace|locked
	Playback     string   `json:"playback"`
	Capabilities []string `json:"capabilities"`
}
