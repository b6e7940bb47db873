package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-auth-portal/config"
	"github.com/oksasatya/go-auth-portal/internal/application"
	"github.com/oksasatya/go-auth-portal/internal/domain/entity"
	"github.com/oksasatya/go-auth-portal/internal/infrastructure/jsonfile"
	"github.com/oksasatya/go-auth-portal/pkg/helpers"
)

// Seeds a demo standard user and a demo agent through the application
// service, so the users file ends up with properly hashed records.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	store := jsonfile.NewUserStore(cfg.UsersFile, logger)
	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	svc := application.NewService(store, jwtManager, logger)

	ctx := context.Background()
	seeds := []application.RegisterInput{
		{Name: "Demo User", Password: "password123", Type: entity.TypeStandard, Email: "demo@example.com"},
		{Name: "Demo Agent", Password: "password123", Type: entity.TypeAgent, Identifier: "00042"},
	}

	for _, in := range seeds {
		user, _, err := svc.Register(ctx, in)
		if errors.Is(err, application.ErrUserExists) {
			fmt.Printf("already seeded: %s\n", identifierOf(in))
			continue
		}
		if err != nil {
			log.Fatalf("failed to seed %s: %v", identifierOf(in), err)
		}
		fmt.Printf("seeded %s: id=%s identifier=%s password=%s\n", user.Type, user.ID, user.Identifier, in.Password)
	}
}

func identifierOf(in application.RegisterInput) string {
	if in.Type == entity.TypeAgent {
		return in.Identifier
	}
	return in.Email
}
