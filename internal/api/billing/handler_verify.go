package billing

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"streamflix-app/database"
	domainbilling "streamflix-app/internal/domain/billing"
	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
	infrastripe "streamflix-app/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
	"gorm.io/gorm"
)

// VerifyPayment confirms a payment order against Stripe and activates the
// purchased subscription. The webhook is the authoritative path; this
// endpoint lets the client finalize immediately after a successful checkout.
func VerifyPayment(c *gin.Context) {
	var body struct {
		OrderID string `json:"orderId" binding:"required"`
		PlanID  uint   `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing orderId or planId"})
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

	var payment domainbilling.Payment
	if err := database.DB.
		Where("stripe_payment_intent_id = ? AND user_id = ?", body.OrderID, userID).
		First(&payment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	intent, err := paymentintent.Get(payment.StripePaymentIntentID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up payment"})
		return
	}

	if infrastripe.NormalizeIntentStatus(string(intent.Status)) != "succeeded" {
		c.JSON(http.StatusConflict, gin.H{"error": "Payment not completed", "status": string(intent.Status)})
		return
	}

	sub, err := FinalizePayment(&payment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Subscription activated",
		"subscription": sub,
	})
}

// FinalizePayment marks the order paid and replaces the user's subscription
// with a fresh active one for the purchased plan. Idempotent: an order that
// already succeeded is not applied twice.
func FinalizePayment(payment *domainbilling.Payment) (*subscriptions.Subscription, error) {
	if payment.Status == domainbilling.StatusSucceeded {
		sub, err := latestSubscription(payment.UserID)
		if err != nil {
			return nil, fmt.Errorf("payment already applied but subscription missing: %w", err)
		}
		return sub, nil
	}
	if payment.PlanID == nil {
		return nil, fmt.Errorf("payment %s has no plan", payment.Receipt)
	}

	var plan plans.Plan
	if err := database.DB.First(&plan, *payment.PlanID).Error; err != nil {
		return nil, fmt.Errorf("plan not found: %w", err)
	}

	now := time.Now()
	end := now.AddDate(0, 1, 0)
	if plan.Billing == plans.BillingYearly {
		end = now.AddDate(1, 0, 0)
	}

	sub := subscriptions.Subscription{
		UserID:    payment.UserID,
		PlanID:    &plan.ID,
		Status:    subscriptions.StatusActive,
		StartDate: now,
		EndDate:   end,
		AutoRenew: true,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// retire any previous snapshot; the new purchase fully replaces it
		if err := tx.Model(&subscriptions.Subscription{}).
			Where("user_id = ? AND status = ?", payment.UserID, subscriptions.StatusActive).
			Updates(map[string]interface{}{"status": subscriptions.StatusCancelled, "auto_renew": false}).Error; err != nil {
			return err
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return tx.Model(payment).Update("status", domainbilling.StatusSucceeded).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to activate subscription: %w", err)
	}

	sub.Plan = &plan
	return &sub, nil
}
