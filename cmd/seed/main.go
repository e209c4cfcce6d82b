package main

import (
	"context"
	"log"

	"gearshare/internal/config"
	"gearshare/internal/database"
	"gearshare/internal/domain"
	"gearshare/internal/repository/gormstore"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	for _, table := range []string{"reports", "reviews", "reservations", "equipment", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s: %v", table, err)
		}
	}

	store := gormstore.New(db)
	ctx := context.Background()

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	dhaka := "Dhaka"
	users := []domain.User{
		{Username: "admin", Email: "admin@gearshare.local", Role: "Admin"},
		{Username: "rahim", Email: "rahim@gearshare.local", Role: domain.DefaultRole, Location: &dhaka},
		{Username: "karim", Email: "karim@gearshare.local", Role: domain.DefaultRole, Location: &dhaka},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
		users[i].VerificationStatus = true
		if err := store.Users().Create(ctx, &users[i]); err != nil {
			log.Fatal("create user:", err)
		}
	}

	log.Println("Creating equipment...")
	items := []domain.Equipment{
		{OwnerUsername: "rahim", Name: "Canon EOS R6", Category: "Camera", DailyPrice: decimal.RequireFromString("1500.00"), PickupLocation: "Dhanmondi"},
		{OwnerUsername: "rahim", Name: "DJI Mini 3", Category: "Drone", DailyPrice: decimal.RequireFromString("1200.00"), PickupLocation: "Dhanmondi"},
		{OwnerUsername: "karim", Name: "4-person tent", Category: "Camping", DailyPrice: decimal.RequireFromString("400.00"), PickupLocation: "Gulshan"},
		{OwnerUsername: "karim", Name: "Mountain bike", Category: "Cycling", DailyPrice: decimal.RequireFromString("350.00"), PickupLocation: "Gulshan"},
	}
	for i := range items {
		items[i].Status = domain.EquipmentAvailable
		if err := store.Equipment().Create(ctx, &items[i]); err != nil {
			log.Fatal("create equipment:", err)
		}
	}

	log.Printf("Seed complete: %d users, %d equipment (password: password123)", len(users), len(items))
}
