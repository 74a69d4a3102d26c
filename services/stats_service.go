package services

import (
	"time"

	"carligo-backend/models"
	"carligo-backend/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Recent-bookings page sizes for the two dashboard surfaces.
const (
	RecentBookingsCompact   = 5
	RecentBookingsDashboard = 8
)

type StatsService struct {
	DB *gorm.DB
}

type StatsOverview struct {
	TotalBookings   int64            `json:"totalBookings"`
	MonthlyBookings int64            `json:"monthlyBookings"`
	TotalRevenue    float64          `json:"totalRevenue"`
	MonthlyRevenue  float64          `json:"monthlyRevenue"`
	ActiveVehicles  int64            `json:"activeVehicles"`
	RecentBookings  []models.Booking `json:"recentBookings"`
}

// Overview computes the dashboard figures over the calendar month
// containing now. The six queries are independent reads issued
// concurrently; if any one fails the whole snapshot fails, there is no
// partial response. Revenue sums cover bookings with status CONFIRME and
// treat a missing amount_total as zero.
func (s *StatsService) Overview(now time.Time, recentLimit int) (*StatsOverview, error) {
	monthStart, monthEnd := utils.MonthWindow(now)

	var overview StatsOverview
	g := new(errgroup.Group)

	g.Go(func() error {
		return s.DB.Model(&models.Booking{}).
			Count(&overview.TotalBookings).Error
	})

	g.Go(func() error {
		return s.DB.Model(&models.Booking{}).
			Where("created_at >= ? AND created_at < ?", monthStart, monthEnd).
			Count(&overview.MonthlyBookings).Error
	})

	g.Go(func() error {
		return s.DB.Model(&models.Booking{}).
			Where("status = ?", models.BookingStatusConfirmed).
			Select("COALESCE(SUM(amount_total), 0)").
			Scan(&overview.TotalRevenue).Error
	})

	g.Go(func() error {
		return s.DB.Model(&models.Booking{}).
			Where("status = ? AND created_at >= ? AND created_at < ?",
				models.BookingStatusConfirmed, monthStart, monthEnd).
			Select("COALESCE(SUM(amount_total), 0)").
			Scan(&overview.MonthlyRevenue).Error
	})

	g.Go(func() error {
		return s.DB.Model(&models.Vehicle{}).
			Count(&overview.ActiveVehicles).Error
	})

	g.Go(func() error {
		return s.DB.Preload("Vehicle").Preload("Client").
			Order("created_at desc").
			Limit(recentLimit).
			Find(&overview.RecentBookings).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if overview.RecentBookings == nil {
		overview.RecentBookings = []models.Booking{}
	}
	return &overview, nil
}
