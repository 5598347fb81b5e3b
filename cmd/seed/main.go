package main

import (
	"context"
	"log"

	"motorhub/internal/config"
	"motorhub/internal/database"
	"motorhub/internal/domain"
	"motorhub/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the admin account and a demo vehicle owner so a fresh environment
// is usable without manual SQL.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	seedUser(ctx, users, &domain.User{
		Name:     "Administrator",
		Email:    "admin@motorhub.local",
		Phone:    "+10000000001",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}, "admin12345")

	seedUser(ctx, users, &domain.User{
		Name:     "Demo Owner",
		Email:    "owner@motorhub.local",
		Phone:    "+10000000002",
		Role:     domain.RoleVehicleOwner,
		IsActive: true,
	}, "owner12345")

	log.Println("seed complete")
}

func seedUser(ctx context.Context, users *repository.UserRepository, u *domain.User, password string) {
	if _, err := users.GetByEmail(ctx, u.Email); err == nil {
		log.Printf("skip existing account %s", u.Email)
		return
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("lookup %s: %v", u.Email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u.PasswordHash = string(hash)

	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("create %s: %v", u.Email, err)
	}
	log.Printf("created account %s (%s)", u.Email, u.Role)
}
