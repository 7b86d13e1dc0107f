package plans

import (
	"net/http"

	"streamflix-app/database"
	"streamflix-app/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

func ListPlans(c *gin.Context) {
	var catalog []plans.Plan
	if err := database.DB.
		Where("active = ?", true).
		Order("id ASC").
		Find(&catalog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// defaultCatalog is the stock storefront lineup: two basic and two advance
// plans, one per billing cycle. Prices are in the smallest currency unit.
var defaultCatalog = []plans.Plan{
	{
		Name:                "Basic Monthly",
		Tier:                plans.TierBasic,
		Price:               199,
		Billing:             plans.BillingMonthly,
		VideoQuality:        "720p",
		SimultaneousStreams: 1,
		DownloadLimit:       5,
		Features:            []string{"Watch on 1 device", "HD available", "5 downloads per month", "Cancel anytime"},
		Active:              true,
	},
	{
		Name:                "Basic Yearly",
		Tier:                plans.TierBasic,
		Price:               1999,
		Billing:             plans.BillingYearly,
		VideoQuality:        "720p",
		SimultaneousStreams: 1,
		DownloadLimit:       5,
		Features:            []string{"Watch on 1 device", "HD available", "5 downloads per month", "2 months free"},
		Active:              true,
	},
	{
		Name:                "Advance Monthly",
		Tier:                plans.TierAdvance,
		Price:               499,
		Billing:             plans.BillingMonthly,
		VideoQuality:        "4K Ultra HD",
		SimultaneousStreams: 4,
		DownloadLimit:       0,
		Features:            []string{"Watch on 4 devices", "4K Ultra HD + HDR", "Unlimited downloads", "Early access to new releases"},
		Active:              true,
	},
	{
		Name:                "Advance Yearly",
		Tier:                plans.TierAdvance,
		Price:               4999,
		Billing:             plans.BillingYearly,
		VideoQuality:        "4K Ultra HD",
		SimultaneousStreams: 4,
		DownloadLimit:       0,
		Features:            []string{"Watch on 4 devices", "4K Ultra HD + HDR", "Unlimited downloads", "2 months free"},
		Active:              true,
	},
}

// SeedPlans creates the default catalog. Existing plans are matched by name
// and updated in place so re-seeding is safe.
func SeedPlans(c *gin.Context) {
	created := 0
	updated := 0

	for _, p := range defaultCatalog {
		var existing plans.Plan
		err := database.DB.Where("name = ?", p.Name).First(&existing).Error

		if err != nil {
			if err := database.DB.Create(&p).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan", "details": err.Error()})
				return
			}
			created++
			continue
		}

		existing.Tier = p.Tier
		existing.Price = p.Price
		existing.Billing = p.Billing
		existing.VideoQuality = p.VideoQuality
		existing.SimultaneousStreams = p.SimultaneousStreams
		existing.DownloadLimit = p.DownloadLimit
		existing.Features = p.Features
		existing.Active = true

		if err := database.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan", "details": err.Error()})
			return
		}
		updated++
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription plans seeded",
		"created": created,
		"updated": updated,
	})
}
