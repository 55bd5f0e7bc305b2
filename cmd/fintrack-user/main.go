// Command fintrack-user provisions a user record and prints a bearer token for it.
//
//	fintrack-user -email me@example.com [-id <uuid>] [-premium] [-token-only]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/auth"
	"github.com/kailas-cloud/fintrack/internal/config"
	dbRedis "github.com/kailas-cloud/fintrack/internal/db/redis"
	"github.com/kailas-cloud/fintrack/internal/domain"
	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
	logpkg "github.com/kailas-cloud/fintrack/internal/logger"
	userrepo "github.com/kailas-cloud/fintrack/internal/repository/user"
)

func main() {
	var (
		email     = flag.String("email", "", "user email (required for new users)")
		id        = flag.String("id", "", "user id (default: random UUID)")
		premium   = flag.Bool("premium", false, "grant the premium plan")
		tokenOnly = flag.Bool("token-only", false, "skip provisioning, only issue a token for -id")
	)
	flag.Parse()

	_ = godotenv.Load()
	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	if *id == "" {
		if *tokenOnly {
			logger.Fatal("-token-only requires -id")
		}
		*id = uuid.NewString()
	}

	if !*tokenOnly {
		if err := provision(cfg, *id, *email, *premium, logger); err != nil {
			logger.Fatal("Provisioning failed", zap.String("user_id", *id), zap.Error(err))
		}
	}

	issuer := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)
	token, err := issuer.Issue(*id, *email)
	if err != nil {
		logger.Fatal("Failed to issue token", zap.Error(err))
	}

	fmt.Fprintf(os.Stdout, "user_id=%s\ntoken=%s\n", *id, token)
}

// provision creates the user, or updates the plan when the id already exists.
func provision(cfg config.Config, id, email string, premium bool, logger *zap.Logger) error {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ReadinessTimeout)*time.Second)
	defer cancel()

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	repo := userrepo.New(store).WithPrefix(cfg.Storage.KeyPrefix)

	u, err := domuser.New(id, email, premium, time.Now())
	if err != nil {
		return err
	}

	err = repo.Create(ctx, u)
	switch {
	case err == nil:
		logger.Info("User created", zap.String("user_id", id), zap.Bool("premium", premium))
		return nil
	case errors.Is(err, domain.ErrAlreadyExists):
		if err := repo.SetPremium(ctx, id, premium); err != nil {
			return fmt.Errorf("set premium: %w", err)
		}
		logger.Info("User exists, plan updated", zap.String("user_id", id), zap.Bool("premium", premium))
		return nil
	default:
		return fmt.Errorf("create user: %w", err)
	}
}
