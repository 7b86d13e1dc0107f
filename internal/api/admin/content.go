package admin

import (
	"net/http"
	"strconv"

	"streamflix-app/database"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type videoInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Seasons     int      `json:"seasons"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"releaseYear"`
	Rating      string   `json:"rating"`
	DurationMin int      `json:"durationMin"`
	Cast        []string `json:"cast"`
	PosterURL   string   `json:"posterUrl"`
	BackdropURL string   `json:"backdropUrl"`
	VideoURL    string   `json:"videoUrl"`
	TrailerURL  string   `json:"trailerUrl"`
	Featured    bool     `json:"featured"`
}

// adminVideoQuery scopes the full catalog, drafts included, by the content
// screen's status and search filters.
func adminVideoQuery(db *gorm.DB, status, search string) *gorm.DB {
	q := db.Model(&videos.Video{})

	switch status {
	case "published":
		q = q.Where("published = ?", true)
	case "draft":
		q = q.Where("published = ?", false)
	}

	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	return q
}

// ListAllVideos is the content screen's listing: unlike the public catalog
// it includes drafts, so new titles can be edited and published.
func ListAllVideos(c *gin.Context) {
	var list []videos.Video
	if err := adminVideoQuery(database.DB, c.Query("status"), c.Query("search")).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load videos"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func loadVideo(c *gin.Context) (*videos.Video, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video id"})
		return nil, false
	}

	var video videos.Video
	if err := database.DB.First(&video, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return nil, false
	}
	return &video, true
}

func CreateVideo(c *gin.Context) {
	var input videoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video := videos.Video{
		Title:       input.Title,
		Description: input.Description,
		Type:        videos.NormalizeType(input.Type),
		Seasons:     input.Seasons,
		Genre:       input.Genre,
		ReleaseYear: input.ReleaseYear,
		Rating:      input.Rating,
		DurationMin: input.DurationMin,
		Cast:        input.Cast,
		PosterURL:   input.PosterURL,
		BackdropURL: input.BackdropURL,
		VideoURL:    input.VideoURL,
		TrailerURL:  input.TrailerURL,
		Featured:    input.Featured,
		Published:   false, // drafts go live via the publish action
	}

	if err := database.DB.Create(&video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}

	c.JSON(http.StatusCreated, video)
}

func UpdateVideo(c *gin.Context) {
	video, ok := loadVideo(c)
	if !ok {
		return
	}

	var input videoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video.Title = input.Title
	video.Description = input.Description
	video.Type = videos.NormalizeType(input.Type)
	video.Seasons = input.Seasons
	video.Genre = input.Genre
	video.ReleaseYear = input.ReleaseYear
	video.Rating = input.Rating
	video.DurationMin = input.DurationMin
	video.Cast = input.Cast
	video.PosterURL = input.PosterURL
	video.BackdropURL = input.BackdropURL
	video.VideoURL = input.VideoURL
	video.TrailerURL = input.TrailerURL
	video.Featured = input.Featured

	if err := database.DB.Save(video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}

	c.JSON(http.StatusOK, video)
}

func DeleteVideo(c *gin.Context) {
	video, ok := loadVideo(c)
	if !ok {
		return
	}

	database.DB.Where("video_id = ?", video.ID).Delete(&videos.Episode{})
	database.DB.Where("video_id = ?", video.ID).Delete(&videos.WatchHistory{})
	database.DB.Where("video_id = ?", video.ID).Delete(&videos.WatchlistItem{})

	if err := database.DB.Delete(video).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video deleted"})
}

func PublishVideo(c *gin.Context) {
	video, ok := loadVideo(c)
	if !ok {
		return
	}

	if videos.VideoType(video) == videos.TypeSeries {
		var episodes int64
		database.DB.Model(&videos.Episode{}).Where("video_id = ?", video.ID).Count(&episodes)
		if episodes == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot publish a series without episodes"})
			return
		}
	} else if video.VideoURL == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot publish a video without a source URL"})
		return
	}

	if err := database.DB.Model(video).Update("published", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video published"})
}

func CreateEpisode(c *gin.Context) {
	video, ok := loadVideo(c)
	if !ok {
		return
	}

	if videos.VideoType(video) != videos.TypeSeries {
		c.JSON(http.StatusConflict, gin.H{"error": "Episodes can only be added to a series"})
		return
	}

	var input struct {
		Season      int    `json:"season" binding:"required"`
		Number      int    `json:"number" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		DurationMin int    `json:"durationMin"`
		VideoURL    string `json:"videoUrl" binding:"required"`
		ThumbURL    string `json:"thumbUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	episode := videos.Episode{
		VideoID:     video.ID,
		Season:      input.Season,
		Number:      input.Number,
		Title:       input.Title,
		Description: input.Description,
		DurationMin: input.DurationMin,
		VideoURL:    input.VideoURL,
		ThumbURL:    input.ThumbURL,
	}
	if err := database.DB.Create(&episode).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Episode slot already taken for that season"})
		return
	}

	if input.Season > video.Seasons {
		database.DB.Model(video).Update("seasons", input.Season)
	}

	c.JSON(http.StatusCreated, episode)
}

func DeleteEpisode(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid episode id"})
		return
	}

	var episode videos.Episode
	if err := database.DB.First(&episode, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
		return
	}

	if err := database.DB.Delete(&episode).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete episode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Episode deleted"})
}

func UnpublishVideo(c *gin.Context) {
	video, ok := loadVideo(c)
	if !ok {
		return
	}

	if err := database.DB.Model(video).Update("published", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish video"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Video unpublished"})
}
