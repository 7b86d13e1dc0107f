package users

import (
	"net/http"
	"strconv"

	"streamflix-app/database"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

// ownedProfile loads the profile from the :id param and checks it belongs to
// the authenticated account.
func ownedProfile(c *gin.Context) (*users.Profile, bool) {
	userID := c.GetUint("user_id")
	profileID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id"})
		return nil, false
	}

	var profile users.Profile
	if err := database.DB.Where("id = ? AND user_id = ?", profileID, userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return nil, false
	}
	return &profile, true
}

func CreateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input struct {
		Name        string   `json:"name" binding:"required"`
		AvatarURL   string   `json:"avatarUrl"`
		IsKids      bool     `json:"isKids"`
		Preferences []string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var count int64
	database.DB.Model(&users.Profile{}).Where("user_id = ?", userID).Count(&count)
	if count >= users.MaxProfilesPerUser {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile limit reached"})
		return
	}

	profile := users.Profile{
		UserID:      userID,
		Name:        input.Name,
		AvatarURL:   input.AvatarURL,
		IsKids:      input.IsKids,
		Preferences: input.Preferences,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func UpdateProfile(c *gin.Context) {
	profile, ok := ownedProfile(c)
	if !ok {
		return
	}

	var input struct {
		Name        *string  `json:"name"`
		AvatarURL   *string  `json:"avatarUrl"`
		IsKids      *bool    `json:"isKids"`
		Preferences []string `json:"preferences"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.IsKids != nil {
		profile.IsKids = *input.IsKids
	}
	if input.Preferences != nil {
		profile.Preferences = input.Preferences
	}

	if err := database.DB.Save(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func DeleteProfile(c *gin.Context) {
	userID := c.GetUint("user_id")

	profile, ok := ownedProfile(c)
	if !ok {
		return
	}

	// the last profile on an account cannot be removed
	var count int64
	database.DB.Model(&users.Profile{}).Where("user_id = ?", userID).Count(&count)
	if count <= 1 {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot delete the only profile"})
		return
	}

	database.DB.Where("profile_id = ?", profile.ID).Delete(&videos.WatchHistory{})
	database.DB.Where("profile_id = ?", profile.ID).Delete(&videos.WatchlistItem{})

	if err := database.DB.Delete(profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

func GetWatchlist(c *gin.Context) {
	profile, ok := ownedProfile(c)
	if !ok {
		return
	}

	var items []videos.WatchlistItem
	if err := database.DB.
		Preload("Video").
		Where("profile_id = ?", profile.ID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load watchlist"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func GetWatchHistory(c *gin.Context) {
	profile, ok := ownedProfile(c)
	if !ok {
		return
	}

	var history []videos.WatchHistory
	if err := database.DB.
		Preload("Video").
		Where("profile_id = ?", profile.ID).
		Order("watched_at DESC").
		Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load watch history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
