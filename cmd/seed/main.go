package main

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"taskauth/internal/auth"
	"taskauth/internal/config"
	"taskauth/internal/db"
	"taskauth/internal/model"
	"taskauth/internal/repository"
)

// demoUser is a local development account.
type demoUser struct {
	Name     string
	Email    string
	Password string
}

var demoUsers = []demoUser{
	{Name: "Ana Smith", Email: "ana.smith@example.com", Password: "secret123"},
	{Name: "Ben Okafor", Email: "ben.okafor@example.com", Password: "hunter2hunter2"},
	{Name: "Carla Jones", Email: "carla.jones@example.com", Password: "correct-horse"},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, du := range demoUsers {
		if _, err := users.FindByEmail(ctx, du.Email); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Lookup %s: %v", du.Email, err)
		}

		hash, err := auth.HashPassword(du.Password)
		if err != nil {
			log.Fatalf("Hash password for %s: %v", du.Email, err)
		}

		user := &model.User{Name: du.Name, Email: du.Email, PasswordHash: hash}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("Create %s: %v", du.Email, err)
		}
		log.Printf("Created user %s (%s)", du.Name, du.Email)
		created++
	}

	log.Printf("Seed complete: %d created, %d already present", created, skipped)
}
