package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"carligo-backend/models"

	"gorm.io/gorm"
)

func createTestBooking(t *testing.T, db *gorm.DB, vehicleID uint, client models.Client, status string, amount float64) models.Booking {
	booking := models.Booking{
		VehicleID:   vehicleID,
		ClientID:    client.ID,
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 0, 3),
		Status:      status,
		AmountTotal: amount,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return booking
}

func TestGetBookingJoinsVehicleAndClient(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter("some-caller")

	vehicle := createTestVehicle(t, db, "Renault")
	client := models.Client{Firstname: "Jean", Name: "Dupont", Mail: "jean@example.com"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	booking := createTestBooking(t, db, vehicle.ID, client, models.BookingStatusPending, 150)

	w := performRequest(r, "GET", "/api/bookings/"+booking.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var got models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if got.Vehicle == nil || got.Vehicle.Brand != "Renault" {
		t.Fatalf("expected joined vehicle, got %+v", got.Vehicle)
	}
	if got.Client == nil || got.Client.Firstname != "Jean" {
		t.Fatalf("expected joined client, got %+v", got.Client)
	}
}

func TestUpdateBookingStatusPatch(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter("some-caller")

	vehicle := createTestVehicle(t, db, "Renault")
	client := models.Client{Firstname: "Jean", Name: "Dupont", Mail: "jean@example.com"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	booking := createTestBooking(t, db, vehicle.ID, client, models.BookingStatusPending, 150)

	w := performRequest(r, "PUT", "/api/bookings/"+booking.ID.String(), map[string]interface{}{
		"status": models.BookingStatusConfirmed,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Booking
	if err := db.First(&updated, "id = ?", booking.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRME, got %s", updated.Status)
	}
	if updated.AmountTotal != 150 {
		t.Fatalf("patch must not touch other fields, amount became %v", updated.AmountTotal)
	}

	bad := performRequest(r, "PUT", "/api/bookings/"+booking.ID.String(), map[string]interface{}{
		"status": "WHATEVER",
	})
	if bad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", bad.Code)
	}
}

func TestGetClientIncludesBookings(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter("some-caller")

	vehicle := createTestVehicle(t, db, "Renault")
	client := models.Client{Firstname: "Jean", Name: "Dupont", Mail: "jean@example.com"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	createTestBooking(t, db, vehicle.ID, client, models.BookingStatusConfirmed, 150)
	createTestBooking(t, db, vehicle.ID, client, models.BookingStatusCancelled, 80)

	w := performRequest(r, "GET", "/api/clients/"+client.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var payload struct {
		Client   models.Client    `json:"client"`
		Bookings []models.Booking `json:"bookings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Client.ID != client.ID {
		t.Fatalf("expected the client back, got %+v", payload.Client)
	}
	if len(payload.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(payload.Bookings))
	}
	if payload.Bookings[0].Vehicle == nil {
		t.Fatalf("expected vehicle joined on client bookings")
	}
}

func TestDeleteClientRestrictedWhileBooked(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter("some-caller")

	vehicle := createTestVehicle(t, db, "Renault")
	client := models.Client{Firstname: "Jean", Name: "Dupont", Mail: "jean@example.com"}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}
	createTestBooking(t, db, vehicle.ID, client, models.BookingStatusConfirmed, 150)

	w := performRequest(r, "DELETE", "/api/clients/"+client.ID.String(), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}
