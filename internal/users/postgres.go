package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpetrovs/credstore/internal/dbx"
)

// PostgresRepository implements Repository over PostgreSQL. Methods run
// against the pool directly; EnsureByEmail wraps its lookup and insert in one
// transaction via dbx.WithTx.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository constructs a repository bound to the given pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password, token, token_expires_at`

func scanUser(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.TokenHash, &u.TokenExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func createUser(ctx context.Context, db dbx.DBTX, user *User) (*User, error) {
	query := `
		INSERT INTO users (id, name, email, password, token)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	return scanUser(db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.TokenHash))
}

func getByEmail(ctx context.Context, db dbx.DBTX, email string) (*User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE email = $1
		LIMIT 1
	`
	return scanUser(db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	return createUser(ctx, r.db, user)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return getByEmail(ctx, r.db, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*User, error) {
	// Logged-out rows store an empty token column; an empty hash must not
	// resolve to them.
	if tokenHash == "" {
		return nil, ErrNotFound
	}
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE token = $1
		LIMIT 1
	`
	return scanUser(r.db.QueryRowContext(ctx, query, tokenHash))
}

func (r *PostgresRepository) SetTokenHash(ctx context.Context, id, tokenHash string) (*User, error) {
	query := `
		UPDATE users SET token = $2
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRowContext(ctx, query, id, tokenHash))
}

func (r *PostgresRepository) SetPasswordHash(ctx context.Context, id, passwordHash string) (*User, error) {
	query := `
		UPDATE users SET password = $2
		WHERE id = $1
		RETURNING ` + userColumns

	return scanUser(r.db.QueryRowContext(ctx, query, id, passwordHash))
}

func (r *PostgresRepository) EnsureByEmail(ctx context.Context, user *User) (*User, error) {
	var out *User
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		existing, err := getByEmail(ctx, tx, user.Email)
		if err == nil {
			out = existing
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		created, err := createUser(ctx, tx, user)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
