package billing

import (
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// UpgradeQuote prices a move to an advance plan without committing to it.
// The client shows the returned offer in a confirmation modal; the actual
// charge happens through the create-order / verify-payment flow.
func UpgradeQuote(c *gin.Context) {
	var body struct {
		NewPlanID uint `json:"newPlanId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing newPlanId"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	sub, err := latestSubscription(userID)
	if err != nil || sub.Plan == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No subscription to upgrade"})
		return
	}

	var target plans.Plan
	if err := database.DB.Where("id = ? AND active = ?", body.NewPlanID, true).First(&target).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	offer := subscriptions.EvaluateUpgrade(sub, sub.Plan, &target, time.Now())
	if !offer.Eligible {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Cannot upgrade at this time",
			"reason": offer.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, offer)
}
