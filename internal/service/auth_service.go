package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quizsheet/internal/config"
	"quizsheet/internal/domain"
	"quizsheet/internal/dto"
	"quizsheet/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidToken is returned when a session token fails validation.
var ErrInvalidToken = errors.New("invalid session token")

// AuthService defines the interface for authentication operations.
type AuthService interface {
	// Login checks the credentials against the user repository and returns
	// a signed session token on success.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	CreateToken(user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	appConfig *config.Config
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, appConfig *config.Config) (AuthService, error) {
	if len(appConfig.Auth.SecretKey) < 32 {
		return nil, errors.New("auth secret key must be at least 32 bytes long")
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		appConfig: appConfig,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	appLogger := logger.Get()

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		// Same response as a wrong password; do not leak which part failed.
		appLogger.Info("Login attempt for unknown user", zap.String("username", username))
		return "", nil, domain.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		appLogger.Info("Login attempt with wrong password",
			zap.String("username", username),
			zap.String("userID", user.ID),
		)
		return "", nil, domain.NewInvalidCredentialsError()
	}

	token, err := s.CreateToken(user, s.appConfig.Auth.TokenTTL)
	if err != nil {
		return "", nil, domain.NewInternalError("failed to create session token", err)
	}

	appLogger.Info("User logged in", zap.String("userID", user.ID), zap.String("username", user.Username))
	return token, user, nil
}

func (s *authServiceImpl) CreateToken(user *domain.User, ttl time.Duration) (string, error) {
	claims := dto.AuthClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.Auth.SecretKey))
}

func (s *authServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.Auth.SecretKey), nil
	})

	if err != nil {
		snippet := tokenString[:min(len(tokenString), 20)] + "..."
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("Session token expired", zap.Error(err), zap.String("token_snippet", snippet))
		} else {
			appLogger.Warn("Session token validation failed", zap.Error(err), zap.String("token_snippet", snippet))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
