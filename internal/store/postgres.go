// Package store opens the PostgreSQL pool, applies the embedded migrations,
// and hands out repositories. It holds no state beyond the connection pool;
// every repository operation is its own short-lived unit of work.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dpetrovs/credstore/internal/migrations"
	"github.com/dpetrovs/credstore/internal/users"
)

type Postgres struct {
	db    *sql.DB
	users users.Repository
}

// NewPostgres opens the pool for dsn, runs migrations, and wires the user
// repository. A connection failure surfaces here, loudly, rather than as a
// quiet not-found later.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &Postgres{db: db, users: users.NewPostgresRepository(db)}

	if err := s.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}

func (s *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	return goose.UpContext(ctx, s.db, ".")
}

func (s *Postgres) Conn() *sql.DB {
	return s.db
}

func (s *Postgres) Users() users.Repository {
	return s.users
}

func (s *Postgres) Close() error {
	return s.db.Close()
}
