package videos

import (
	"net/http"
	"strconv"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// viewCountIncrement bumps the counter in SQL so concurrent streams never
// lose increments.
func viewCountIncrement(db *gorm.DB, videoID uint) *gorm.DB {
	return db.Model(&videos.Video{}).
		Where("id = ?", videoID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
}

// GetStreamManifest hands the client the playback URL plus the entitlements
// of the active plan. Routed behind RequireActiveSubscription.
func GetStreamManifest(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	var video videos.Video
	if err := database.DB.Where("id = ? AND published = ?", id, true).First(&video).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	var sub subscriptions.Subscription
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error; err != nil || sub.Plan == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "No plan on file"})
		return
	}

	viewCountIncrement(database.DB, video.ID)

	c.JSON(http.StatusOK, gin.H{
		"url":                 video.VideoURL,
		"quality":             sub.Plan.VideoQuality,
		"simultaneousStreams": sub.Plan.SimultaneousStreams,
		"downloadsUnlimited":  plans.IsUnlimitedDownloads(sub.Plan),
	})
}

func UpdateWatchProgress(c *gin.Context) {
	userID := c.GetUint("user_id")

	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	var body struct {
		ProfileID uint `json:"profileId" binding:"required"`
		Progress  int  `json:"progress"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profileId"})
		return
	}

	var profile users.Profile
	if err := database.DB.Where("id = ? AND user_id = ?", body.ProfileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	entry := videos.WatchHistory{
		ProfileID: profile.ID,
		VideoID:   uint(videoID),
		Progress:  body.Progress,
		WatchedAt: time.Now(),
	}
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "video_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "watched_at"}),
	}).Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func ToggleWatchlist(c *gin.Context) {
	userID := c.GetUint("user_id")

	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}

	var body struct {
		ProfileID uint `json:"profileId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profileId"})
		return
	}

	var profile users.Profile
	if err := database.DB.Where("id = ? AND user_id = ?", body.ProfileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	var item videos.WatchlistItem
	err = database.DB.Where("profile_id = ? AND video_id = ?", profile.ID, videoID).First(&item).Error
	if err == nil {
		database.DB.Delete(&item)
		c.JSON(http.StatusOK, gin.H{"inWatchlist": false})
		return
	}

	item = videos.WatchlistItem{ProfileID: profile.ID, VideoID: uint(videoID)}
	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inWatchlist": true})
}
