package routes

import (
	adminapi "streamflix-app/internal/api/admin"
	authapi "streamflix-app/internal/api/auth"
	"streamflix-app/internal/api/billing"
	plansapi "streamflix-app/internal/api/plans"
	stripewebhooks "streamflix-app/internal/api/stripewebhook"
	"streamflix-app/internal/api/users"
	videosapi "streamflix-app/internal/api/videos"
	"streamflix-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public, with input sanitization
	public := r.Group("/api")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/verify-email/:token", authapi.VerifyEmail)
	public.POST("/auth/resend-verification", authapi.ResendVerification)
	public.POST("/auth/forgot-password", authapi.ForgotPassword)
	public.POST("/auth/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/subscriptions/plans", plansapi.ListPlans)

	// Authenticated
	auth := r.Group("/api")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/users/me", users.GetCurrentUser)
	auth.POST("/auth/change-password", authapi.ChangePassword)

	auth.POST("/users/profile", users.CreateProfile)
	auth.PUT("/users/profile/:id", users.UpdateProfile)
	auth.DELETE("/users/profile/:id", users.DeleteProfile)
	auth.GET("/users/profile/:id/watchlist", users.GetWatchlist)
	auth.GET("/users/profile/:id/history", users.GetWatchHistory)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/subscriptions/create-order", billing.CreateOrder)
	auth.POST("/subscriptions/verify-payment", billing.VerifyPayment)
	auth.POST("/subscriptions/upgrade", billing.UpgradeQuote)
	auth.POST("/subscriptions/cancel", billing.CancelSubscription)
	auth.POST("/subscriptions/reactivate", billing.ReactivateSubscription)

	// Catalog browsing is open to any signed-in account
	auth.GET("/videos", videosapi.ListVideos)
	auth.GET("/videos/featured", videosapi.ListFeaturedVideos)
	auth.GET("/videos/recommendations", videosapi.GetRecommendations)
	auth.GET("/videos/:id", videosapi.GetVideoDetails)
	auth.GET("/videos/:id/episodes", videosapi.ListEpisodes)

	// Playback requires a paid (or in-window cancelled) subscription
	subscribed := auth.Group("/")
	subscribed.Use(middleware.RequireActiveSubscription())
	subscribed.GET("/videos/:id/stream", videosapi.GetStreamManifest)
	subscribed.GET("/videos/:id/episodes/:episodeId/stream", videosapi.GetEpisodeStreamManifest)
	subscribed.POST("/videos/:id/watch", videosapi.UpdateWatchProgress)
	subscribed.POST("/videos/:id/watchlist", videosapi.ToggleWatchlist)

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/analytics", adminapi.Analytics)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.PUT("/users/:id/status", adminapi.UpdateUserStatus)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/subscriptions/seed-plans", plansapi.SeedPlans)
	admin.GET("/videos", adminapi.ListAllVideos)
	admin.POST("/videos", adminapi.CreateVideo)
	admin.POST("/videos/:id/episodes", adminapi.CreateEpisode)
	admin.DELETE("/episodes/:id", adminapi.DeleteEpisode)
	admin.PUT("/videos/:id", adminapi.UpdateVideo)
	admin.DELETE("/videos/:id", adminapi.DeleteVideo)
	admin.POST("/videos/:id/publish", adminapi.PublishVideo)
	admin.POST("/videos/:id/unpublish", adminapi.UnpublishVideo)
}
