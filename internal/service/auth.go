package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rental-backend/internal/domain"
	"rental-backend/internal/logger"
	"rental-backend/internal/repository"
	"rental-backend/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoSession          = errors.New("not authenticated")
)

const minPasswordLength = 8

type authService struct {
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, tokenManager: tokenManager}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	logger.EnterMethod("authService.Login", "email", email)

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.WarnContext(ctx, "login rejected", "email", email)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expires, err := s.tokenManager.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	logger.ExitMethod("authService.Login", "userID", user.ID)
	return user, token, expires, nil
}

func (s *authService) CurrentUser(ctx context.Context, session *security.Session) (*domain.User, error) {
	if session == nil {
		return nil, ErrNoSession
	}
	return s.userRepo.GetByID(ctx, session.UserID)
}

func (s *authService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	v := domain.NewValidationError()
	if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "valid email address required")
	}
	if len(password) < minPasswordLength {
		v.Add("password", "password must be at least 8 characters")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
