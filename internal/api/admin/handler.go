package admin

import (
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/billing"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/users"
	"streamflix-app/internal/domain/videos"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	IsVerified       bool       `json:"is_verified"`
	PlanName         *string    `json:"plan_name,omitempty"`
	SubscriptionSt   *string    `json:"subscription_status,omitempty"`
	SubscriptionEnd  *time.Time `json:"subscription_end,omitempty"`
	StripeCustomerID *string    `json:"stripe_customer_id,omitempty"`
}

type AdminPayment struct {
	ID        uint    `json:"id"`
	Email     string  `json:"email"`
	PlanName  *string `json:"plan_name,omitempty"`
	Amount    int64   `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	Receipt   string  `json:"receipt"`
	IsUpgrade bool    `json:"is_upgrade"`
	CreatedAt string  `json:"created_at"`
}

type AdminStats struct {
	TotalUsers          int            `json:"total_users"`
	ActiveSubscriptions int            `json:"active_subscriptions"`
	TotalVideos         int            `json:"total_videos"`
	TotalRevenue        int64          `json:"total_revenue"`
	RecentRevenue       int64          `json:"recent_revenue"`
	UsersPerPlan        map[string]int `json:"users_per_plan"`
}

func AdminDashboard(c *gin.Context) {
	var stats AdminStats

	var totalUsers, activeSubs, totalVideos int64
	database.DB.Model(&users.User{}).Count(&totalUsers)
	database.DB.Model(&subscriptions.Subscription{}).
		Where("status = ?", subscriptions.StatusActive).
		Count(&activeSubs)
	database.DB.Model(&videos.Video{}).Count(&totalVideos)

	var totalRevenue, recentRevenue int64
	database.DB.Model(&billing.Payment{}).
		Where("status = ?", billing.StatusSucceeded).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&billing.Payment{}).
		Where("status = ? AND created_at >= ?", billing.StatusSucceeded, thirtyDaysAgo).
		Select("COALESCE(SUM(amount), 0)").Scan(&recentRevenue)

	stats.TotalUsers = int(totalUsers)
	stats.ActiveSubscriptions = int(activeSubs)
	stats.TotalVideos = int(totalVideos)
	stats.TotalRevenue = totalRevenue
	stats.RecentRevenue = recentRevenue

	type PlanCount struct {
		Name  *string
		Count int
	}
	var counts []PlanCount
	database.DB.
		Table("subscriptions").
		Select("plans.name, COUNT(subscriptions.id) as count").
		Joins("LEFT JOIN plans ON subscriptions.plan_id = plans.id").
		Where("subscriptions.status = ?", subscriptions.StatusActive).
		Group("plans.name").
		Scan(&counts)

	stats.UsersPerPlan = map[string]int{}
	for _, pc := range counts {
		name := "No Plan"
		if pc.Name != nil {
			name = *pc.Name
		}
		stats.UsersPerPlan[name] = pc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		au := AdminUser{
			ID:               u.ID,
			Name:             u.Name,
			Email:            u.Email,
			Role:             u.Role,
			Status:           u.Status,
			IsVerified:       u.IsVerified,
			StripeCustomerID: u.StripeCustomerID,
		}

		var sub subscriptions.Subscription
		if err := database.DB.
			Preload("Plan").
			Where("user_id = ?", u.ID).
			Order("created_at DESC").
			First(&sub).Error; err == nil {
			status := sub.Status
			end := sub.EndDate
			au.SubscriptionSt = &status
			au.SubscriptionEnd = &end
			if sub.Plan != nil {
				au.PlanName = &sub.Plan.Name
			}
		}

		adminUsers = append(adminUsers, au)
	}

	c.JSON(http.StatusOK, adminUsers)
}

func ListAllPayments(c *gin.Context) {
	var payments []billing.Payment
	if err := database.DB.
		Preload("User").
		Preload("Plan").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	result := make([]AdminPayment, 0, len(payments))
	for _, p := range payments {
		var planName *string
		if p.Plan != nil {
			planName = &p.Plan.Name
		}
		result = append(result, AdminPayment{
			ID:        p.ID,
			Email:     p.User.Email,
			PlanName:  planName,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Status:    p.Status,
			Receipt:   p.Receipt,
			IsUpgrade: p.IsUpgrade,
			CreatedAt: p.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	c.JSON(http.StatusOK, result)
}

// UpdateUserStatus blocks or reinstates an account. Admin accounts cannot be
// blocked through this endpoint.
func UpdateUserStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !users.IsValidAccountStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be 'active' or 'blocked'"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == "admin" && body.Status == users.AccountBlocked {
		c.JSON(http.StatusConflict, gin.H{"error": "Admin accounts cannot be blocked"})
		return
	}

	if err := database.DB.Model(&user).Update("status", body.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account status updated", "status": body.Status})
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")

	var user users.User
	if err := database.DB.Preload("Profiles").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var subs []subscriptions.Subscription
	database.DB.Preload("Plan").Where("user_id = ?", userID).Order("created_at DESC").Find(&subs)

	var payments []billing.Payment
	if err := database.DB.Preload("Plan").Where("user_id = ?", userID).Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"subscriptions": subs,
		"payments":      payments,
	})
}
