package main

import (
	"errors"
	"fmt"
	"log"

	"order_manager/internal/config"
	"order_manager/internal/database"
	"order_manager/internal/migrations"
	"order_manager/internal/models"
	"order_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Create tables and seed roles plus the advance-amount sentinel
	if err := migrations.RunMigrations(db, cfg.AdvanceAmountLabel); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Create default system admin user
	fmt.Println("Creating default system admin user...")
	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.GetByEmailOrPhone("admin@example.com", "9999999999"); err == nil {
		fmt.Println("System admin user already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal("Failed to check for existing admin:", err)
	}

	role, err := userRepo.GetRoleByName(models.RoleSystemAdmin)
	if err != nil {
		log.Fatal("System admin role missing:", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		UserName:    "admin",
		Email:       "admin@example.com",
		PhoneNumber: "9999999999",
		Password:    string(hashed),
		UserRoleID:  role.ID,
		IsActive:    true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create system admin user: %v", err)
	} else {
		fmt.Println("System admin user created successfully")
		fmt.Println("Email: admin@example.com")
		fmt.Println("Password: admin123")
	}

	fmt.Println("Database initialization completed successfully!")
}
