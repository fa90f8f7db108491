package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nishlen_auth/internal/model"
	"nishlen_auth/internal/repository"
	"nishlen_auth/internal/utils"

	"github.com/google/uuid"
)

const MinPasswordLength = 6

var (
	ErrWeakPassword = fmt.Errorf("password too short (min. %d characters)", MinPasswordLength)
	ErrInvalidRole  = errors.New("invalid role")
	ErrPhoneTaken   = errors.New("phone already registered")
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both an unknown phone and a wrong password.
	// The two cases must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid phone or password")
)

// AuthService provides registration, authentication and identity lookup
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, phone, password string) (*model.User, string, error)
	Me(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   *utils.PasswordHasher
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, hasher *utils.PasswordHasher, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		jwtUtil:  jwtUtil,
	}
}

// Register creates a new user account. It never issues a token; session
// issuance is Login's job.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if len(req.Password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Role:         req.Role,
		PhotoURL:     req.PhotoURL,
		City:         req.City,
		SalonName:    req.SalonName,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, ErrPhoneTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user by phone and password and returns a signed token
// together with the user record.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // Unknown phone, same error as a bad password
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// Me returns the user record behind an already-verified identity.
func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
