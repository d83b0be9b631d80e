// Command createadmin bootstraps the first admin account. It is a no-op when
// an admin already exists.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authadapters "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/adapters"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
	"github.com/Billie0903/vina-ET-training-center/internal/platform/config"
	infradb "github.com/Billie0903/vina-ET-training-center/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin User"
	}
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db := infradb.OpenDB(cfg.DSN(), true)
	users := authadapters.NewUserGorm(db)
	ctx := context.Background()

	exists, err := users.AdminExists(ctx)
	if err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if exists {
		log.Println("Admin user already exists, nothing to do")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	log.Printf("Admin user created: %s (%s)", admin.Name, admin.Email)
}
