package plans

import "time"

type Plan struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`

	Tier string `gorm:"type:varchar(20);not null;index:idx_plans_tier" json:"type"` // "basic" | "advance"

	// Smallest currency unit. Display formatting is the client's job.
	Price int64 `gorm:"not null" json:"price"`

	Billing string `gorm:"type:varchar(20);not null" json:"billing"` // "monthly" | "yearly"

	VideoQuality        string `gorm:"type:varchar(20)" json:"videoQuality"`
	SimultaneousStreams int    `gorm:"not null;default:1" json:"simultaneousStreams"`

	// 0 or negative means unlimited
	DownloadLimit int `json:"downloadLimit"`

	Features []string `gorm:"serializer:json" json:"features"`

	Active bool `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
