package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"carligo-backend/config"
	"carligo-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database and point the package-level handle at it
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Vehicle{},
		&models.Client{},
		&models.Booking{},
		&models.Supplement{},
		&models.VehicleSupplement{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	config.DB = db
	return db
}

// newTestRouter wires the handlers behind a stub session gate so tests
// can exercise them with a fixed caller identity.
func newTestRouter(callerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	identity := func(c *gin.Context) {
		c.Set("userId", callerID)
		c.Set("userEmail", "caller@example.com")
		c.Next()
	}

	r.POST("/sessions", Login)
	r.GET("/sessions/me", identity, Me)

	api := r.Group("/api", identity)
	{
		api.POST("/vehicles", CreateVehicle)
		api.GET("/vehicles", GetVehicles)
		api.GET("/vehicles/:id", GetVehicle)
		api.PUT("/vehicles/:id", UpdateVehicle)
		api.DELETE("/vehicles/:id", DeleteVehicle)

		api.POST("/clients", CreateClient)
		api.GET("/clients", GetClients)
		api.GET("/clients/:id", GetClient)
		api.PUT("/clients/:id", UpdateClient)
		api.DELETE("/clients/:id", DeleteClient)

		api.GET("/bookings", GetBookings)
		api.GET("/bookings/:id", GetBooking)
		api.PUT("/bookings/:id", UpdateBooking)

		api.POST("/supplements", CreateSupplement)
		api.GET("/supplements", GetSupplements)
		api.PUT("/supplements/:id", UpdateSupplement)
		api.DELETE("/supplements/:id", DeleteSupplement)

		api.GET("/accounts", GetAccounts)
		api.POST("/accounts", CreateAccount)
		api.PUT("/accounts/:id", UpdateAccount)
		api.DELETE("/accounts/:id", DeleteAccount)

		statsController := StatsController{}
		api.GET("/stats", statsController.GetStats)
	}

	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
