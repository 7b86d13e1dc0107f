package billing

import (
	"errors"
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// CancelSubscription applies a grace-period cancellation: the engine
// pre-validates the transition, then the result is persisted. Access keeps
// running until the already-scheduled end date.
func CancelSubscription(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	sub, err := latestSubscription(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscription found"})
		return
	}

	updated, err := subscriptions.Cancel(*sub)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Only an active subscription can be cancelled"})
		return
	}

	if err := database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"status":     updated.Status,
			"auto_renew": updated.AutoRenew,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Subscription cancelled. You keep access until " + updated.EndDate.Format("02 Jan 2006") + ".",
		"subscription": updated,
	})
}

// ReactivateSubscription undoes a cancellation while still inside the paid
// access window.
func ReactivateSubscription(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	sub, err := latestSubscription(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscription found"})
		return
	}

	updated, err := subscriptions.Reactivate(*sub, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, subscriptions.ErrExpiredWindow):
			c.JSON(http.StatusConflict, gin.H{"error": "Subscription window has expired, please purchase a new plan"})
		case errors.Is(err, subscriptions.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Only a cancelled subscription can be reactivated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reactivate subscription"})
		}
		return
	}

	if err := database.DB.Model(&subscriptions.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"status":     updated.Status,
			"auto_renew": updated.AutoRenew,
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reactivate subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Subscription reactivated",
		"subscription": updated,
	})
}
