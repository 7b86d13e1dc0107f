package videos

import (
	"net/http"
	"strconv"

	"streamflix-app/database"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

// ListEpisodes returns one season of a series, episodes in order. Defaults
// to season 1; season=0 returns the whole run.
func ListEpisodes(c *gin.Context) {
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

	if videos.VideoType(&video) != videos.TypeSeries {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not a series title"})
		return
	}

	season, _ := strconv.Atoi(c.DefaultQuery("season", "1"))

	q := database.DB.Where("video_id = ?", video.ID)
	if season > 0 {
		q = q.Where("season = ?", season)
	}

	var episodes []videos.Episode
	if err := q.Order("season ASC, number ASC").Find(&episodes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load episodes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"episodes": episodes,
		"season":   season,
		"seasons":  video.Seasons,
	})
}

// GetEpisodeStreamManifest is the per-episode counterpart of
// GetStreamManifest, routed behind RequireActiveSubscription.
func GetEpisodeStreamManifest(c *gin.Context) {
	userID := c.GetUint("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return
	}
	episodeID, err := strconv.Atoi(c.Param("episodeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episode id"})
		return
	}

	var video videos.Video
	if err := database.DB.Where("id = ? AND published = ?", id, true).First(&video).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	var episode videos.Episode
	if err := database.DB.Where("id = ? AND video_id = ?", episodeID, video.ID).First(&episode).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
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
		"url":                 episode.VideoURL,
		"season":              episode.Season,
		"number":              episode.Number,
		"quality":             sub.Plan.VideoQuality,
		"simultaneousStreams": sub.Plan.SimultaneousStreams,
		"downloadsUnlimited":  plans.IsUnlimitedDownloads(sub.Plan),
	})
}
