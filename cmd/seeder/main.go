// Command seeder populates reference data: the default question catalog,
// the status dictionary, and the initial operator account. It is idempotent
// and intended to run on deploy, before the bot and the admin API start.
//
// Flags:
//
//	--superuser-login     operator login (required unless --skip-superuser)
//	--superuser-email     operator contact email
//	--skip-superuser      seed only questions and statuses
//
// The operator password is taken from the SEEDER_SUPERUSER_PASSWORD
// environment variable so it does not leak into shell history.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/turutin/intake-backend/internal/adapter/postgres"
	questionrepo "github.com/turutin/intake-backend/internal/adapter/postgres/question"
	staffrepo "github.com/turutin/intake-backend/internal/adapter/postgres/staff"
	statusrepo "github.com/turutin/intake-backend/internal/adapter/postgres/status"
	"github.com/turutin/intake-backend/internal/app"
	"github.com/turutin/intake-backend/internal/app/seeder"
	"github.com/turutin/intake-backend/internal/config"
)

func main() {
	login := flag.String("superuser-login", "", "operator login")
	email := flag.String("superuser-email", "", "operator contact email")
	skipSuperuser := flag.Bool("skip-superuser", false, "seed only questions and statuses")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := seeder.New(logger, questionrepo.New(pool), statusrepo.New(pool), staffrepo.New(pool))

	if err := s.SeedStatuses(ctx); err != nil {
		logger.Error("seed statuses", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := s.SeedQuestions(ctx); err != nil {
		logger.Error("seed questions", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !*skipSuperuser {
		password := os.Getenv("SEEDER_SUPERUSER_PASSWORD")
		if err := s.SeedSuperuser(ctx, *login, *email, password); err != nil {
			logger.Error("seed superuser", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("seeding completed")
}
