package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/costaverde/backend/internal/config"
	"github.com/costaverde/backend/internal/db"
	"github.com/costaverde/backend/internal/users"
	"github.com/costaverde/backend/pkg"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	email := flag.String("email", "", "email of the admin user to create")
	displayName := flag.String("name", "", "display name of the admin user")
	flag.Parse()

	log.Printf("creating admin user in [%s] environment ...", *env)

	if *email == "" {
		log.Fatalln("admin email not specified")
	}
	if *displayName == "" {
		log.Fatalln("admin display name not specified")
	}

	// taken from the env to keep it out of the shell history
	password := os.Getenv("COSTAVERDE_NEW_ADMIN_PASSWORD")
	if password == "" {
		log.Fatalln("COSTAVERDE_NEW_ADMIN_PASSWORD not set")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	addedUser, err := users.NewRepo(dbPool).Add(ctx, &users.User{
		Email:        *email,
		PasswordHash: passwordHash,
		DisplayName:  *displayName,
		Role:         "admin",
		CreatedAt:    time.Now(),
	})
	if errors.Is(err, users.ErrEmailTaken) {
		log.Fatalf("admin user with email %s already exists", *email)
	}
	if err != nil {
		log.Fatalf("add admin user: %s", err)
	}

	log.Printf("admin user %s created, id: %d", addedUser.Email, addedUser.ID)
}
