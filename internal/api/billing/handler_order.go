package billing

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"streamflix-app/config"
	"streamflix-app/database"
	domainbilling "streamflix-app/internal/domain/billing"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	"streamflix-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/customer"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

// CreateOrder initiates payment for a fresh subscription or an upgrade. The
// charged amount always comes from the policy engine, never from the client.
func CreateOrder(c *gin.Context) {
	var body struct {
		PlanID    uint `json:"planId" binding:"required"`
		IsUpgrade bool `json:"isUpgrade"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid planId"})
		return
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var plan plans.Plan
	if err := database.DB.Where("id = ? AND active = ?", body.PlanID, true).First(&plan).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	if !user.IsVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
		return
	}

	var sub *subscriptions.Subscription
	if body.IsUpgrade {
		s, err := latestSubscription(userID)
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "No subscription to upgrade"})
			return
		}
		sub = s
	}

	amount, offer, ok := orderAmount(sub, &plan, body.IsUpgrade, time.Now())
	if !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "Upgrade not available", "reason": offer.Reason})
		return
	}

	// Nothing to charge: the gateway refuses zero-amount intents, so apply
	// the change directly.
	if amount == 0 {
		payment := domainbilling.Payment{
			UserID:                user.ID,
			PlanID:                &plan.ID,
			StripePaymentIntentID: "nocharge_" + uuid.NewString(),
			Receipt:               uuid.NewString(),
			Amount:                0,
			Currency:              config.CURRENCY,
			Status:                domainbilling.StatusPending,
			IsUpgrade:             body.IsUpgrade,
		}
		if err := database.DB.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment order"})
			return
		}

		newSub, err := FinalizePayment(&payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"amount":       0,
			"currency":     config.CURRENCY,
			"planName":     plan.Name,
			"subscription": newSub,
		})
		return
	}

	// ensure stripe customer
	if user.StripeCustomerID == nil || *user.StripeCustomerID == "" {
		cus, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(user.Email),
			Metadata: map[string]string{
				"user_id": fmt.Sprint(user.ID),
				"app_env": os.Getenv("APP_ENV"),
			},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Stripe customer"})
			return
		}

		if err := database.DB.Model(&users.User{}).
			Where("id = ?", user.ID).
			Update("stripe_customer_id", cus.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store Stripe customer"})
			return
		}

		user.StripeCustomerID = stripe.String(cus.ID)
	}

	intent, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(config.CURRENCY),
		Customer: stripe.String(*user.StripeCustomerID),
		Metadata: map[string]string{
			"user_id":    fmt.Sprint(user.ID),
			"plan_id":    fmt.Sprint(plan.ID),
			"is_upgrade": fmt.Sprint(body.IsUpgrade),
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment order", "details": err.Error()})
		return
	}

	payment := domainbilling.Payment{
		UserID:                user.ID,
		PlanID:                &plan.ID,
		StripePaymentIntentID: intent.ID,
		Receipt:               uuid.NewString(),
		Amount:                amount,
		Currency:              config.CURRENCY,
		Status:                domainbilling.StatusPending,
		IsUpgrade:             body.IsUpgrade,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"orderId":      intent.ID,
		"clientSecret": intent.ClientSecret,
		"amount":       amount,
		"currency":     config.CURRENCY,
		"planName":     plan.Name,
	})
}

// latestSubscription returns the most recent subscription row for the user
// with its plan preloaded.
func latestSubscription(userID uint) (*subscriptions.Subscription, error) {
	var sub subscriptions.Subscription
	err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
