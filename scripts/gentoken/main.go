// Generates a JWT for a throwaway test user, for exercising
// authenticated endpoints by hand.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/scentmatch/server/internal/auth"
	"github.com/scentmatch/server/scentmatch/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	userRepo := users.NewRepository(dbPool)

	user, err := userRepo.FindOrCreateByProvider(ctx, "test", "test-user-123", "test@scentmatch.dev", "Test User", "")
	if err != nil {
		log.Fatalf("Failed to create test user: %v", err)
	}

	fmt.Printf("Test user: %s (ID: %s)\n", user.Email, user.ID)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
