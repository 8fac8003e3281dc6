package handler

import (
	"time"

	"quizsheet/internal/config"
	"quizsheet/internal/dto"
	"quizsheet/internal/logger"
	"quizsheet/internal/middleware"
	"quizsheet/internal/service"
	"quizsheet/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles login and logout requests.
type AuthHandler struct {
	authService service.AuthService
	quizService service.QuizService
	validator   *validation.Validator
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler instance. The quiz service is
// needed so logout can clear any in-flight attempt.
func NewAuthHandler(authService service.AuthService, quizService service.QuizService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		quizService: quizService,
		validator:   validation.NewValidator(),
		cfg:         cfg,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateLoginRequest(req.Username, req.Password); len(errs) > 0 {
		return errs
	}

	token, user, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.Auth.TokenTTL),
		HTTPOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(dto.LoginResponse{
		AccessToken: token,
		Username:    user.Username,
		Name:        user.Name,
	})
}

// Logout handles POST /api/auth/logout. It clears the auth cookie and any
// quiz attempt in progress.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	if userID != "" {
		if err := h.quizService.Reset(c.Context(), userID); err != nil {
			logger.Get().Warn("Failed to clear quiz session on logout",
				zap.Error(err),
				zap.String("userID", userID),
			)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.SendStatus(fiber.StatusNoContent)
}
