// Command seed creates the initial admin user and loads the
// predefined blacklist without starting the API server.
package main

import (
	"context"
	"log"
	"os"

	"vigil/internal/config"
	"vigil/internal/models"
	"vigil/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_USERNAME, ADMIN_EMAIL, and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	blacklistRepo := repositories.NewBlacklistRepository(repositories.DB)
	if err := repositories.SeedBlacklist(context.Background(), blacklistRepo); err != nil {
		log.Fatalf("Failed to seed blacklist: %v", err)
	}
	log.Println("Blacklist seeded")

	userRepo := repositories.NewUserRepository(repositories.DB)
	if _, err := userRepo.GetByUsername(adminUsername); err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &models.User{
		Username: adminUsername,
		Email:    adminEmail,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Admin user %s created", adminUsername)
}
