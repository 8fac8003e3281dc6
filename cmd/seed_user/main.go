// Command seed_user creates a login account, hashing the given password.
// Usage:
//
//	go run ./cmd/seed_user -username alice -password s3cret -name "Alice"
package main

import (
	"context"
	"flag"
	"log"

	"quizsheet/internal/config"
	"quizsheet/internal/database"
	"quizsheet/internal/domain"
	"quizsheet/internal/logger"
	"quizsheet/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "login username (required)")
	password := flag.String("password", "", "plaintext password to hash (required)")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		log.Fatal("both -username and -password are required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXSQLiteDB(cfg.DB.Path)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewSQLXUserRepository(db)
	ctx := context.Background()

	existing, err := repo.GetUserByUsername(ctx, *username)
	if err != nil {
		l.Fatal("Failed to check for existing user", zap.Error(err))
	}
	if existing != nil {
		l.Fatal("User already exists", zap.String("username", *username))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		l.Fatal("Failed to hash password", zap.Error(err))
	}

	user := domain.NewUser(*username, string(hash))
	user.Name = *name
	if err := user.Validate(); err != nil {
		l.Fatal("Invalid user", zap.Error(err))
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		l.Fatal("Failed to create user", zap.Error(err))
	}
	l.Info("User created", zap.String("username", *username), zap.String("id", user.ID))
}
