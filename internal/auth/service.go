// Package auth implements the admin/viewer session gate.
//
// There is a single admin account whose password hash, "password has been
// changed" flag and session flag live in the same key/value store as the board.
// This is a capability toggle for the local user, not a security boundary.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// MinPasswordLength is the shortest password ChangePassword accepts
const MinPasswordLength = 6

// Config holds the admin account settings
type Config struct {
	Username        string
	DefaultPassword string
	BcryptCost      int
}

// LoginResult reports the outcome of a successful credential check
type LoginResult struct {
	// MustChangePassword is set when the default password was used and has
	// never been changed. The session is not granted until ChangePassword succeeds.
	MustChangePassword bool
}

// Session describes the stored session state
type Session struct {
	Admin           bool `json:"admin"`
	PasswordChanged bool `json:"passwordChanged"`
}

// Service checks credentials and toggles the admin session flag
type Service struct {
	mu        sync.Mutex
	store     storage.Store
	cfg       Config
	publisher events.Publisher
}

// NewService creates an auth service over store. Zero config fields fall back
// to the username "admin", password "admin" and bcrypt.DefaultCost.
func NewService(store storage.Store, cfg Config, publisher events.Publisher) *Service {
	if strings.TrimSpace(cfg.Username) == "" {
		cfg.Username = "admin"
	}
	if cfg.DefaultPassword == "" {
		cfg.DefaultPassword = "admin"
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &Service{store: store, cfg: cfg, publisher: publisher}
}

// Login verifies the admin credentials. With the default password still in
// place it returns MustChangePassword and leaves the session flag off.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(username) != s.cfg.Username {
		return LoginResult{}, ErrInvalidCredentials
	}
	hash, err := s.passwordHash(ctx)
	if err != nil {
		return LoginResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		slog.Debug("admin login rejected", "username", username)
		return LoginResult{}, ErrInvalidCredentials
	}

	changed, err := s.loadBool(ctx, storage.KeyPasswordHasBeenChanged)
	if err != nil {
		return LoginResult{}, err
	}
	if !changed {
		slog.Info("default admin password in use, password change required")
		return LoginResult{MustChangePassword: true}, nil
	}

	if err := s.setSession(ctx, storage.Batch{}); err != nil {
		return LoginResult{}, err
	}
	slog.Info("admin session started")
	return LoginResult{}, nil
}

// ChangePassword replaces the admin password and grants the session.
// On any failure the stored password is left unchanged.
func (s *Service) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.passwordHash(ctx)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(current)); err != nil {
		return ErrWrongPassword
	}
	if utf8.RuneCountInString(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	batch := storage.Batch{}
	if err := errors.Join(
		batch.Put(storage.KeyAdminPassword, string(newHash)),
		batch.Put(storage.KeyPasswordHasBeenChanged, true),
	); err != nil {
		return err
	}
	if err := s.setSession(ctx, batch); err != nil {
		return err
	}
	slog.Info("admin password changed")
	return nil
}

// Logout clears the session flag
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := storage.Batch{}
	if err := batch.Put(storage.KeyIsAdminSession, false); err != nil {
		return err
	}
	if err := s.store.SetMany(ctx, batch); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.announce()
	slog.Info("admin session ended")
	return nil
}

// IsAdmin reports whether the admin session is active.
// An unreadable flag counts as a viewer session.
func (s *Service) IsAdmin(ctx context.Context) bool {
	admin, err := s.loadBool(ctx, storage.KeyIsAdminSession)
	if err != nil {
		slog.Warn("failed to read session flag", "error", err)
		return false
	}
	return admin
}

// CanEdit implements board.Permissions
func (s *Service) CanEdit(ctx context.Context) bool {
	return s.IsAdmin(ctx)
}

// Status returns the stored session state
func (s *Service) Status(ctx context.Context) (Session, error) {
	admin, err := s.loadBool(ctx, storage.KeyIsAdminSession)
	if err != nil {
		return Session{}, err
	}
	changed, err := s.loadBool(ctx, storage.KeyPasswordHasBeenChanged)
	if err != nil {
		return Session{}, err
	}
	return Session{Admin: admin, PasswordChanged: changed}, nil
}

// passwordHash returns the stored hash, seeding it from the default password
// on first use. A stored value that is not a bcrypt hash is treated as a
// plaintext password and upgraded in place.
func (s *Service) passwordHash(ctx context.Context) ([]byte, error) {
	var stored string
	found, err := storage.LoadJSON(ctx, s.store, storage.KeyAdminPassword, &stored)
	switch {
	case errors.Is(err, storage.ErrMalformed):
		slog.Warn("stored admin password unreadable, resetting to default", "error", err)
		stored = s.cfg.DefaultPassword
	case err != nil:
		return nil, err
	case !found:
		stored = s.cfg.DefaultPassword
	default:
		if _, costErr := bcrypt.Cost([]byte(stored)); costErr == nil {
			return []byte(stored), nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(stored), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	batch := storage.Batch{}
	if err := batch.Put(storage.KeyAdminPassword, string(hash)); err != nil {
		return nil, err
	}
	if err := s.store.SetMany(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to store password: %w", err)
	}
	return hash, nil
}

func (s *Service) loadBool(ctx context.Context, key string) (bool, error) {
	var v bool
	if _, err := storage.LoadJSON(ctx, s.store, key, &v); err != nil {
		if errors.Is(err, storage.ErrMalformed) {
			slog.Warn("ignoring malformed stored flag", "key", key, "error", err)
			return false, nil
		}
		return false, err
	}
	return v, nil
}

// setSession writes batch together with the session flag
func (s *Service) setSession(ctx context.Context, batch storage.Batch) error {
	if err := batch.Put(storage.KeyIsAdminSession, true); err != nil {
		return err
	}
	if err := s.store.SetMany(ctx, batch); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	s.announce()
	return nil
}

func (s *Service) announce() {
	events.Publish(s.publisher, events.Event{
		Type:      events.EventSessionChanged,
		Timestamp: time.Now(),
	})
}
