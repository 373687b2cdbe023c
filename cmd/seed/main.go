package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"staybook/internal/config"
	"staybook/internal/database"
	"staybook/internal/domain"
)

// Seeds a local database with demo accounts and hotels. Dev only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}
	if os.Getenv("APP_ENV") == "production" {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM change_requests")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	admin := createUser(db, "admin@staybook.local", "admin1234", domain.RoleAdmin, "Alex Admin")
	traveler := createUser(db, "traveler@staybook.local", "traveler1234", domain.RoleTraveler, "Tina Traveler")
	mara := createUser(db, "mara@staybook.local", "manager1234", domain.RoleManager, "Mara Manager")
	oto := createUser(db, "oto@staybook.local", "manager1234", domain.RoleManager, "Oto Owner")

	log.Println("Creating hotels...")
	lat1, lng1 := 41.6461, 41.6339
	seaBreeze := domain.Hotel{
		OwnerID:       mara.ID,
		Slug:          "sea-breeze",
		Name:          "Sea Breeze",
		City:          "Batumi",
		Country:       "Georgia",
		Address:       "1 Seaside Blvd",
		Category:      4,
		Latitude:      &lat1,
		Longitude:     &lng1,
		Description:   "Beachfront hotel two minutes from the boulevard.",
		CheckInTime:   "14:00",
		CheckOutTime:  "12:00",
		Amenities:     []string{"wifi", "pool", "parking"},
		Languages:     []string{"en", "ka", "ru"},
		Policies:      []string{"No smoking", "Pets allowed on request"},
		Status:        domain.HotelApproved,
		PublishStatus: domain.Published,
	}
	mustCreate(db, &seaBreeze)

	hillHouse := domain.Hotel{
		OwnerID:       oto.ID,
		Slug:          "hill-house",
		Name:          "Hill House",
		City:          "Tbilisi",
		Country:       "Georgia",
		Address:       "12 Mtatsminda St",
		Category:      3,
		Description:   "Guesthouse overlooking the old town.",
		Status:        domain.HotelPending,
		PublishStatus: domain.PublishDraft,
	}
	mustCreate(db, &hillHouse)

	log.Println("Creating rooms...")
	mustCreate(db, &domain.Room{
		HotelID: seaBreeze.ID, Name: "Standard Double", Capacity: 2,
		BedType: "double", SizeSqm: 22, PricePerNight: 80, AvailableCount: 10,
		Amenities: []string{"tv", "air conditioning"},
	})
	mustCreate(db, &domain.Room{
		HotelID: seaBreeze.ID, Name: "Family Suite", Capacity: 4,
		BedType: "two doubles", SizeSqm: 40, PricePerNight: 150, AvailableCount: 4,
		Amenities: []string{"tv", "air conditioning", "balcony"},
	})

	log.Println("Creating a review...")
	mustCreate(db, &domain.Review{
		HotelID: seaBreeze.ID, UserID: traveler.ID,
		Rating: 5, Comment: "Spotless rooms and a great breakfast.",
	})
	db.Model(&domain.Hotel{}).Where("id = ?", seaBreeze.ID).
		Updates(map[string]any{"rating": 5.0, "total_reviews": 1})

	log.Printf("Done. admin=%s manager=%s traveler=%s", admin.Email, mara.Email, traveler.Email)
}

func createUser(db *gorm.DB, email, password string, role domain.UserRole, name string) domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}
	u := domain.User{Email: email, PasswordHash: string(hash), Role: role, Name: name}
	mustCreate(db, &u)
	return u
}

func mustCreate(db *gorm.DB, v any) {
	if err := db.Create(v).Error; err != nil {
		log.Fatalf("seed %T: %v", v, err)
	}
}
