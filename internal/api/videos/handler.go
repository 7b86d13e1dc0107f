package videos

import (
	"net/http"
	"strconv"

	"streamflix-app/database"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 24

func ListVideos(c *gin.Context) {
	q := database.DB.Model(&videos.Video{}).Where("published = ?", true)

	if genre := c.Query("genre"); genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if search := c.Query("search"); search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	var total int64
	q.Count(&total)

	var list []videos.Video
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos": list,
		"page":   page,
		"total":  total,
	})
}

func ListFeaturedVideos(c *gin.Context) {
	var list []videos.Video
	if err := database.DB.
		Where("published = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load featured videos"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func GetVideoDetails(c *gin.Context) {
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

	c.JSON(http.StatusOK, video)
}

// GetRecommendations returns titles in the profile's preferred genres, most
// watched first, falling back to the overall most-watched catalog.
func GetRecommendations(c *gin.Context) {
	userID := c.GetUint("user_id")

	profileID, err := strconv.Atoi(c.Query("profileId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profileId"})
		return
	}

	var profile users.Profile
	if err := database.DB.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	q := database.DB.Model(&videos.Video{}).Where("published = ?", true)
	if len(profile.Preferences) > 0 {
		q = q.Where("genre IN ?", []string(profile.Preferences))
	}
	if profile.IsKids {
		q = q.Where("rating IN ?", []string{"U", "U/A 7+"})
	}

	var list []videos.Video
	if err := q.Order("view_count DESC").Limit(20).Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recommendations"})
		return
	}

	if len(list) == 0 {
		database.DB.Where("published = ?", true).
			Order("view_count DESC").Limit(20).Find(&list)
	}

	c.JSON(http.StatusOK, list)
}
