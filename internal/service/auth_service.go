package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	"github.com/ddoc14896/Realty-Website-sub000/pkg/jwt"
	pkglogger "github.com/ddoc14896/Realty-Website-sub000/pkg/logger"
)

// AuthService registration, login and token verification
type AuthService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest, sessionID string) (*domain.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type authService struct {
	users      repository.UserRepository
	favorites  *FavoriteStore
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, favorites *FavoriteStore, jwtManager *jwt.Manager) AuthService {
	return &authService{users: users, favorites: favorites, jwtManager: jwtManager}
}

// Register creates an account and issues tokens
func (s *authService) Register(_ context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, common.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     req.Email,
		Name:      req.Name,
		Password:  string(hashed),
		Level:     1,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user, false)
}

// Login verifies credentials, issues tokens and merges the visitor's
// anonymous favorites into the account when a session ID is present.
// A failed merge never fails the login; the response reports it.
func (s *authService) Login(ctx context.Context, req *domain.LoginRequest, sessionID string) (*domain.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	merged := false
	if sessionID != "" {
		anon := domain.SessionIdentity(sessionID)
		authed := domain.UserIdentity(user.ID)
		if err := s.favorites.MergeAnonymous(ctx, anon, authed); err != nil {
			pkglogger.Get().Warn().Err(err).
				Str("user_id", user.ID).
				Str("session_id", sessionID).
				Msg("anonymous favorites merge failed")
		} else {
			merged = true
		}
	}

	return s.issueTokens(user, merged)
}

// Refresh exchanges a refresh token for fresh tokens
func (s *authService) Refresh(_ context.Context, refreshToken string) (*domain.AuthResponse, error) {
	claims, err := s.jwtManager.VerifyToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, common.ErrExpiredToken
		}
		return nil, common.ErrInvalidToken
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(user, false)
}

func (s *authService) GetUser(_ context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(userID)
}

func (s *authService) issueTokens(user *domain.User, merged bool) (*domain.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Name, user.Level)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &domain.AuthResponse{
		User:            user,
		AccessToken:     accessToken,
		RefreshToken:    refreshToken,
		FavoritesMerged: merged,
	}, nil
}
