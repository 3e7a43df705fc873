package db_test

import (
	"strings"
	"testing"
	"time"

	dbpkg "github.com/BruksfildServices01/luxstyle-booking/internal/db"
	"github.com/BruksfildServices01/luxstyle-booking/internal/httperr"
	"github.com/BruksfildServices01/luxstyle-booking/internal/models"
	"github.com/BruksfildServices01/luxstyle-booking/internal/testutil"
	"github.com/BruksfildServices01/luxstyle-booking/internal/validators"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	for i := 0; i < 2; i++ {
		if err := dbpkg.Seed(db, "1234"); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	var services, barbers, admins int64
	db.Model(&models.Service{}).Count(&services)
	db.Model(&models.Barber{}).Count(&barbers)
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&admins)

	if services != 3 || barbers != 3 || admins != 1 {
		t.Fatalf("expected 3/3/1 rows, got %d/%d/%d", services, barbers, admins)
	}

	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", admin.Role)
	}
	if !validators.CheckPassword(admin.PasswordHash, "1234") {
		t.Fatal("admin password not hashed as expected")
	}
}

func TestSeedAcceptsLongAdminPassword(t *testing.T) {
	db := testutil.NewDB(t)
	password := strings.Repeat("x", 100)

	if err := dbpkg.Seed(db, password); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var admin models.User
	if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("load admin: %v", err)
	}
	if !validators.CheckPassword(admin.PasswordHash, password) {
		t.Fatal("long admin password does not verify")
	}
}

func TestSeedKeepsExistingCatalog(t *testing.T) {
	db := testutil.NewDB(t)

	if err := db.Create(&models.Service{Name: "Solo", DurationMinutes: 15, Price: 5}).Error; err != nil {
		t.Fatalf("create service: %v", err)
	}
	if err := dbpkg.Seed(db, "1234"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var services int64
	db.Model(&models.Service{}).Count(&services)
	if services != 1 {
		t.Fatalf("expected existing catalog untouched, got %d services", services)
	}
}

func TestActiveSlotIndex(t *testing.T) {
	db := testutil.NewDB(t)
	if err := dbpkg.Seed(db, "1234"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user := models.User{Username: "alice", PasswordHash: "x", Role: models.RoleClient}
	db.Create(&user)
	client := models.Client{UserID: user.ID, FullName: "Alice", Phone: "555"}
	db.Create(&client)

	start := time.Date(2030, 1, 2, 13, 0, 0, 0, time.UTC)
	first := models.Appointment{ClientID: client.ID, ServiceID: 1, BarberID: 1, StartTime: start, Status: "pendiente"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first: %v", err)
	}

	dup := models.Appointment{ClientID: client.ID, ServiceID: 1, BarberID: 1, StartTime: start, Status: "pendiente"}
	if err := db.Create(&dup).Error; !httperr.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}

	if err := db.Model(&first).Update("status", "cancelada").Error; err != nil {
		t.Fatalf("cancel first: %v", err)
	}

	again := models.Appointment{ClientID: client.ID, ServiceID: 1, BarberID: 1, StartTime: start, Status: "pendiente"}
	if err := db.Create(&again).Error; err != nil {
		t.Fatalf("slot should be free after cancellation: %v", err)
	}
}
