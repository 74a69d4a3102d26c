package controllers

import (
	"net/http"
	"time"

	"carligo-backend/config"
	"carligo-backend/services"
	"carligo-backend/utils"

	"github.com/gin-gonic/gin"
)

// StatsController handles the dashboard aggregate figures
type StatsController struct{}

// GetStats returns the aggregate snapshot: booking counts, revenue sums
// over the current calendar month and all time, vehicle count and the
// most recent bookings. view=dashboard widens the recent list from 5 to 8.
func (sc *StatsController) GetStats(c *gin.Context) {
	limit := services.RecentBookingsCompact
	if c.Query("view") == "dashboard" {
		limit = services.RecentBookingsDashboard
	}

	svc := services.StatsService{DB: config.DB}
	overview, err := svc.Overview(time.Now(), limit)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, overview)
}
