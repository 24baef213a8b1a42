// Command seed provisions a bootstrap account for development: it ensures
// the configured user exists, issues a bearer token, and prints the raw
// token once. Only the token's hash is persisted; the printed value cannot
// be recovered later.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dpetrovs/credstore/internal/config"
	"github.com/dpetrovs/credstore/internal/hashing"
	"github.com/dpetrovs/credstore/internal/logging"
	"github.com/dpetrovs/credstore/internal/store"
	"github.com/dpetrovs/credstore/internal/users"
)

func main() {
	interactive := flag.Bool("interactive", false, "prompt for the seed account password instead of reading it from config")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoad()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	password := cfg.Seed.Password
	if *interactive {
		pw, err := getPassword(os.Stderr)
		if err != nil {
			logger.Error(ctx, "password prompt failed", logging.Err(err))
			os.Exit(1)
		}
		password = string(pw)
	}

	st, err := store.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "db init error", logging.Err(err))
		os.Exit(1)
	}
	defer st.Close()

	svc := users.NewService(st.Users(), hashing.Select(), logger)

	user, err := svc.EnsureUserExists(ctx, cfg.Seed.Email, cfg.Seed.Name, password)
	if err != nil {
		logger.Error(ctx, "seed user error", logging.Err(err))
		os.Exit(1)
	}

	raw, err := svc.IssueToken(ctx, user.ID)
	if err != nil {
		logger.Error(ctx, "token issue error", logging.Err(err))
		os.Exit(1)
	}

	fmt.Printf("seeded %s (user id %s)\n", user.Email, user.ID)
	fmt.Printf("token: %s\n", raw)
}
