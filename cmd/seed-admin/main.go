package main

import (
	"flag"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fahrielsara/portfolio-backend/config"
	"github.com/fahrielsara/portfolio-backend/internal/database"
	"github.com/fahrielsara/portfolio-backend/internal/models"
)

// Creates or updates the single dashboard owner account. There is no
// registration endpoint; this command is how the account comes to exist.
func main() {
	name := flag.String("name", "Admin", "Display name for the owner account")
	email := flag.String("email", "", "Login email (required)")
	password := flag.String("password", "", "Login password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	var user models.User
	err = db.Where("email = ?", *email).First(&user).Error
	if err == nil {
		user.Name = *name
		user.PasswordHash = string(hashed)
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("Failed to update owner account: %v", err)
		}
		log.Printf("Updated owner account %s", *email)
		return
	}

	user = models.User{
		ID:           uuid.New(),
		Name:         *name,
		Email:        *email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create owner account: %v", err)
	}
	log.Printf("Created owner account %s", *email)
}
