package main

import (
	"flag"
	"log"

	"go-pharmacy-api/internal/model"
	"go-pharmacy-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Operator escape hatch: reset a user's password directly in the
// database when they are locked out.
func main() {
	email := flag.String("email", "admin@example.com", "email of the account to reset")
	password := flag.String("password", "admin123", "new password to set")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	db := database.ConnectDB()

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Rotating the token version kicks any live session for the account.
	updates := map[string]interface{}{
		"password":      string(hashedPassword),
		"token_version": "",
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Fatalf("Failed to update password: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
