package videos

import (
	"strings"
	"time"
)

// Catalog entry types.
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// NormalizeType maps free-form type strings onto the two catalog entry
// types; anything unrecognized counts as a standalone movie.
func NormalizeType(t string) string {
	if strings.EqualFold(strings.TrimSpace(t), TypeSeries) {
		return TypeSeries
	}
	return TypeMovie
}

func VideoType(v *Video) string {
	if v == nil {
		return TypeMovie
	}
	return NormalizeType(v.Type)
}

type Video struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null;index:idx_videos_title" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Type        string `gorm:"type:varchar(10);not null;default:'movie'" json:"type"` // movie | series
	Genre       string `gorm:"type:varchar(40);index:idx_videos_genre" json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	Rating      string `gorm:"type:varchar(10)" json:"rating"` // maturity rating, e.g. "U/A 13+"
	DurationMin int    `json:"durationMin"`

	// number of seasons, series only
	Seasons int `json:"seasons,omitempty"`

	Cast []string `gorm:"serializer:json" json:"cast"`

	PosterURL   string `json:"posterUrl"`
	BackdropURL string `json:"backdropUrl"`
	VideoURL    string `json:"videoUrl"`
	TrailerURL  string `json:"trailerUrl"`

	Featured  bool `gorm:"not null;default:false;index:idx_videos_featured" json:"featured"`
	Published bool `gorm:"not null;default:false" json:"published"`

	ViewCount int64 `gorm:"not null;default:0" json:"viewCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Episode belongs to a series title, addressed by (season, number). The
// source URL is never serialized; playback goes through the gated stream
// endpoint.
type Episode struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VideoID uint `gorm:"not null;uniqueIndex:idx_episodes_position" json:"videoId"`
	Season  int  `gorm:"not null;uniqueIndex:idx_episodes_position" json:"season"`
	Number  int  `gorm:"not null;uniqueIndex:idx_episodes_position" json:"number"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	DurationMin int    `json:"durationMin"`

	VideoURL string `json:"-"`
	ThumbURL string `json:"thumbUrl"`

	CreatedAt time.Time `json:"-"`
}

// WatchHistory tracks per-profile playback progress, one row per
// (profile, video) pair.
type WatchHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"not null;uniqueIndex:idx_watch_history_profile_video" json:"profileId"`
	VideoID   uint `gorm:"not null;uniqueIndex:idx_watch_history_profile_video" json:"videoId"`

	Video *Video `json:"video,omitempty"`

	// seconds into the title
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	WatchedAt time.Time `json:"watchedAt"`
}

type WatchlistItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"not null;uniqueIndex:idx_watchlist_profile_video" json:"profileId"`
	VideoID   uint `gorm:"not null;uniqueIndex:idx_watchlist_profile_video" json:"videoId"`

	Video *Video `json:"video,omitempty"`

	CreatedAt time.Time `json:"addedAt"`
}
