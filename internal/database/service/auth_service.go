package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/database/repository"
	"github.com/mesa-app/mesa/internal/session"
)

// AuthService defines the account flow: registration, login and logout
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AccountResult, error)
	Login(ctx context.Context, email, password string) (*AccountResult, error)
	Logout(ctx context.Context) *AccountResult
}

// RegisterInput carries the fields of the registration form
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Gender     *models.Gender
	BirthDate  *time.Time
}

// AccountResult is what a successful account operation asks the caller to
// do: apply Delta to the request session and show Flash.
type AccountResult struct {
	User  *models.User
	Delta session.Delta
	Flash session.Flash
}

// LoginGuard counts failed logins per account and refuses further attempts
// once a limit is reached
type LoginGuard interface {
	Allow(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type authService struct {
	userRepo repository.UserRepository
	guard    LoginGuard
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance. A nil guard
// disables login throttling.
func NewAuthService(userRepo repository.UserRepository, guard LoginGuard, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		guard:    guard,
		logger:   logger,
	}
}

// NormalizeEmail trims and lowercases an address before lookup or storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*AccountResult, error) {
	input.Email = NormalizeEmail(input.Email)
	s.logger.Info("📝 [AuthService] Registration attempt", "email", input.Email)

	if err := validateRegistration(input); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid registration form", "error", err)
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if exists {
		s.logger.Warn("⚠️ [AuthService] Email already registered", "email", input.Email)
		return nil, ErrEmailAlreadyExists
	}

	user := &models.User{
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Email:      input.Email,
		Phone:      optional(input.Phone),
		Address:    optional(input.Address),
		City:       optional(input.City),
		PostalCode: optional(input.PostalCode),
		Gender:     input.Gender,
		BirthDate:  input.BirthDate,
		Status:     models.StatusActive,
		Role:       models.RoleUser,
	}

	if err := user.SetPassword(input.Password); err != nil {
		s.logger.Error("❌ [AuthService] Failed to hash password", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.logger.Warn("⚠️ [AuthService] Email registered concurrently", "email", input.Email)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [AuthService] Failed to create user", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Info("✅ [AuthService] User registered successfully", "user_id", user.ID)
	return &AccountResult{
		User:  user,
		Flash: session.Flash{Category: session.FlashSuccess, Message: fmt.Sprintf(MsgRegistered, user.FirstName)},
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AccountResult, error) {
	email = NormalizeEmail(email)
	s.logger.Info("🔐 [AuthService] Login attempt", "email", email)

	if s.guard != nil && email != "" {
		allowed, err := s.guard.Allow(ctx, email)
		if err != nil {
			s.logger.Error("❌ [AuthService] Login guard unavailable", "error", err)
		} else if !allowed {
			s.logger.Warn("⚠️ [AuthService] Too many failed logins", "email", email)
			return nil, ErrTooManyAttempts
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] Login failed - user not found", "email", email)
			s.recordFailure(ctx, email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if !user.CheckPassword(password) {
		s.logger.Warn("⚠️ [AuthService] Login failed - invalid password", "user_id", user.ID)
		s.recordFailure(ctx, email)
		return nil, ErrInvalidCredentials
	}

	if s.guard != nil {
		if err := s.guard.Reset(ctx, email); err != nil {
			s.logger.Error("❌ [AuthService] Failed to reset login guard", "error", err)
		}
	}

	s.logger.Info("✅ [AuthService] User logged in successfully", "user_id", user.ID)
	return &AccountResult{
		User:  user,
		Delta: session.SetIdentity(user.ID, user.DisplayName()),
		Flash: session.Flash{Category: session.FlashSuccess, Message: MsgWelcomeBack},
	}, nil
}

// Logout always succeeds, whether or not anyone was logged in
func (s *authService) Logout(ctx context.Context) *AccountResult {
	s.logger.Info("👋 [AuthService] Logout")
	return &AccountResult{
		Delta: session.Clear(),
		Flash: session.Flash{Category: session.FlashInfo, Message: MsgLoggedOut},
	}
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if s.guard == nil || email == "" {
		return
	}
	if err := s.guard.RecordFailure(ctx, email); err != nil {
		s.logger.Error("❌ [AuthService] Failed to record login failure", "error", err)
	}
}

func validateRegistration(input RegisterInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrInvalidInput)
	}
	if input.Email == "" || input.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if len(input.Password) > models.MaxPasswordBytes {
		return fmt.Errorf("%w: password longer than %d bytes", ErrInvalidInput, models.MaxPasswordBytes)
	}
	if addr, err := mail.ParseAddress(input.Email); err != nil || addr.Address != input.Email {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	if input.Gender != nil && !input.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, *input.Gender)
	}
	return nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
