package admin

import (
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/billing"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type TopVideo struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	ViewCount int64  `json:"view_count"`
}

// Analytics returns the last six months of signups and revenue plus the
// most-watched titles.
func Analytics(c *gin.Context) {
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)

	var signups []MonthlyCount
	database.DB.Model(&users.User{}).
		Select("to_char(created_at, 'YYYY-MM') as month, COUNT(*) as count").
		Where("created_at >= ?", sixMonthsAgo).
		Group("month").
		Order("month ASC").
		Scan(&signups)

	var revenue []MonthlyRevenue
	database.DB.Model(&billing.Payment{}).
		Select("to_char(created_at, 'YYYY-MM') as month, COALESCE(SUM(amount), 0) as revenue").
		Where("status = ? AND created_at >= ?", billing.StatusSucceeded, sixMonthsAgo).
		Group("month").
		Order("month ASC").
		Scan(&revenue)

	var top []TopVideo
	database.DB.Model(&videos.Video{}).
		Select("id, title, view_count").
		Where("published = ?", true).
		Order("view_count DESC").
		Limit(10).
		Scan(&top)

	c.JSON(http.StatusOK, gin.H{
		"signups_per_month": signups,
		"revenue_per_month": revenue,
		"top_videos":        top,
	})
}
