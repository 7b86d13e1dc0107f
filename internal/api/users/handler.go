package users

import (
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/access"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.
		Preload("Profiles").
		First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	now := time.Now()

	// latest subscription snapshot; absent is a valid state
	var sub *subscriptions.Subscription
	var latest subscriptions.Subscription
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		First(&latest).Error; err == nil {
		sub = &latest
	}

	var plan *plans.Plan
	if sub != nil {
		plan = sub.Plan
	}

	var catalog []plans.Plan
	database.DB.Where("active = ?", true).Order("id ASC").Find(&catalog)

	policy := access.ComputePolicy(now, sub, plan)

	resp := MeResponse{
		User: UserDTO{
			ID:         user.ID,
			Email:      user.Email,
			Name:       user.Name,
			Phone:      stringPtrIfNotEmpty(user.Phone),
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Billing: BillingDTO{
			Plan:         BuildPlanDTO(plan),
			Subscription: BuildSubscriptionDTO(sub, now),
			Upgrade:      BuildUpgradeDTO(sub, catalog, now),
		},
		Access: AccessDTO{
			State:        string(policy.State),
			Playback:     string(policy.Playback),
			Capabilities: policy.Capabilities,
		},
		Profiles: user.Profiles,
	}

	c.JSON(http.StatusOK, resp)
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
