package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dpetrovs/credstore/internal/hashing"
	"github.com/dpetrovs/credstore/internal/logging"
)

// Service is the credential and token store. It hashes passwords through the
// injected KDF, persists users through the injected Repository, and owns the
// bearer-token lifecycle: issue, resolve, clear.
//
// All methods are safe for concurrent use. Two concurrent IssueToken calls
// for the same user race last-write-wins: the loser's raw token keeps
// resolving until the winner's hash commits, then starts failing. That is the
// single-session policy, not a bug.
type Service struct {
	repo Repository
	kdf  hashing.KDF
	log  logging.Logger
}

// NewService constructs the store. The KDF is chosen once at startup
// (hashing.Select) and injected; verification still accepts hashes produced
// by either algorithm.
func NewService(repo Repository, kdf hashing.KDF, log logging.Logger) *Service {
	return &Service{repo: repo, kdf: kdf, log: log}
}

// CreateUser hashes the password and persists a new user row. Email
// uniqueness is not enforced here; callers that need it must check first.
func (s *Service) CreateUser(ctx context.Context, name, email, password string) (*User, error) {
	hash, err := s.kdf.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.log.Error(ctx, "user create failed", logging.Err(err))
		return nil, err
	}
	s.log.Info(ctx, "user created", "user_id", created.ID)
	return created, nil
}

// GetUserByEmail returns the first user with the given email, or ErrNotFound.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetUserByID returns the user with the given id, or ErrNotFound.
func (s *Service) GetUserByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// AuthenticateUser looks up the user by email and verifies the password.
// Unknown email and wrong password both return ErrInvalidCredentials.
//
// A lookup miss returns faster than a failed verify; that timing difference
// is a known, accepted leak — do not pad it without product sign-off.
func (s *Service) AuthenticateUser(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.log.Error(ctx, "user lookup failed", logging.Err(err))
		return nil, err
	}
	if !hashing.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SetUserToken stores the SHA-256 hash of raw as the user's active token,
// replacing any prior one. An empty raw clears the token (logout). Returns
// ErrNotFound if the id does not exist.
func (s *Service) SetUserToken(ctx context.Context, id, raw string) (*User, error) {
	hash := ""
	if raw != "" {
		hash = HashToken(raw)
	}
	return s.repo.SetTokenHash(ctx, id, hash)
}

// IssueToken generates a fresh bearer token, stores its hash on the user row,
// and returns the raw token. This is the only moment the raw token exists
// server-side; it cannot be retrieved again. Issuing invalidates any
// previously issued token for the user.
func (s *Service) IssueToken(ctx context.Context, id string) (string, error) {
	raw, err := GenerateToken(DefaultTokenLength)
	if err != nil {
		return "", err
	}
	if _, err := s.SetUserToken(ctx, id, raw); err != nil {
		return "", err
	}
	s.log.Info(ctx, "token issued", "user_id", id)
	return raw, nil
}

// GetUserByToken resolves a presented raw token to its user by hashing it and
// looking the digest up. An empty token short-circuits to ErrNotFound without
// touching storage.
func (s *Service) GetUserByToken(ctx context.Context, raw string) (*User, error) {
	if raw == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByTokenHash(ctx, HashToken(raw))
}

// ClearUserToken ends the user's session. Sugar over SetUserToken with an
// empty token.
func (s *Service) ClearUserToken(ctx context.Context, id string) (*User, error) {
	return s.SetUserToken(ctx, id, "")
}

// EnsureUserExists returns the user with the given email, creating it first
// if missing. The password is applied only when the record is newly created;
// an empty name defaults to the email's local part.
func (s *Service) EnsureUserExists(ctx context.Context, email, name, password string) (*User, error) {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	hash, err := s.kdf.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	return s.repo.EnsureByEmail(ctx, user)
}

// SetUserPassword replaces the user's password hash. Returns ErrNotFound if
// the id does not exist.
func (s *Service) SetUserPassword(ctx context.Context, id, password string) (*User, error) {
	hash, err := s.kdf.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.repo.SetPasswordHash(ctx, id, hash)
}
