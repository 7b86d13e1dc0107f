package middleware

import (
	"net/http"
	"time"

	"streamflix-app/database"
	"streamflix-app/internal/domain/subscriptions"

	"github.com/gin-gonic/gin"
)

// RequireActiveSubscription gates playback routes. Access is granted while
// the subscription classifies as active or cancelled-but-in-window; the
// response distinguishes "never subscribed" from "expired" so the client can
// route to the right screen.
func RequireActiveSubscription() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
			return
		}

		var sub subscriptions.Subscription
		err := database.DB.Where("user_id = ?", userID).
			Order("created_at DESC").
			First(&sub).Error

		var state subscriptions.State
		if err != nil {
			state = subscriptions.StateNone
		} else {
			state = subscriptions.Classify(&sub, time.Now())
		}

		if subscriptions.HasAccess(state) {
			c.Set("subscription_state", string(state))
			c.Next()
			return
		}

		switch state {
		case subscriptions.StateNone:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "An active subscription is required to watch",
			})
		default:
			c.AbortWithStatusJSON(http.StatusPaymentRequired, gin.H{
				"error": "Your subscription has expired",
			})
		}
	}
}
