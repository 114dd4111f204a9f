package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"academy/internal/pkg/jwt"
)

// dummyHash is compared against when the username is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := HashPassword("unknown-admin-placeholder")
	return hash
})

type Service struct {
	repo AdminRepository
	jwt  *jwt.Service
	now  func() time.Time
}

func NewService(repo AdminRepository, jwtService *jwt.Service) *Service {
	return &Service{
		repo: repo,
		jwt:  jwtService,
		now:  time.Now,
	}
}

// FindByUsername returns ErrAdminNotFound when no admin has that username.
func (s *Service) FindByUsername(ctx context.Context, username string) (*AdminUser, error) {
	return s.repo.GetByUsername(ctx, normalizeUsername(username))
}

// VerifyCredentials fails closed with ErrInvalidCredentials for unknown,
// inactive or wrong-password admins alike.
func (s *Service) VerifyCredentials(ctx context.Context, username, password string) (*AdminUser, error) {
	admin, err := s.repo.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			_ = CheckPassword(password, dummyHash())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := CheckPassword(password, admin.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		log.Printf("admin_last_login_failed admin_id=%s username=%s error=%q", admin.ID, admin.Username, err)
	} else {
		admin.LastLoginAt = &now
	}

	return admin, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, *AdminUser, error) {
	admin, err := s.VerifyCredentials(ctx, username, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwt.GenerateToken(jwt.Identity{
		Username:    admin.Username,
		Role:        string(admin.Role),
		Permissions: admin.EffectivePermissions().Strings(),
	})
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, admin, nil
}

type BootstrapInput struct {
	Username    string
	Password    string
	Role        Role
	Permissions []string
}

// Bootstrap creates the admin if the username is free. An existing admin is
// returned untouched with created=false.
func (s *Service) Bootstrap(ctx context.Context, in BootstrapInput) (*AdminUser, bool, error) {
	username := normalizeUsername(in.Username)
	if username == "" || in.Password == "" {
		return nil, false, errors.New("username and password are required")
	}
	if in.Role == "" {
		in.Role = RoleAdmin
	}
	if !in.Role.Valid() {
		return nil, false, ErrInvalidRole
	}

	existing, err := s.FindByUsername(ctx, username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return nil, false, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	admin := &AdminUser{
		Username:     username,
		PasswordHash: hash,
		Role:         in.Role,
		Permissions:  in.Permissions,
		IsActive:     true,
	}
	if admin.Permissions == nil {
		admin.Permissions = []string{}
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, ErrAdminExists) {
			// lost a race with a concurrent bootstrap
			existing, getErr := s.FindByUsername(ctx, username)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return admin, true, nil
}

func (s *Service) List(ctx context.Context) ([]AdminUser, error) {
	return s.repo.List(ctx)
}

func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
