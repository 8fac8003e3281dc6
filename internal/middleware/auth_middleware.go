package middleware

import (
	"quizsheet/internal/service"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	// AuthCookieName is the HTTP-only cookie the login handler sets; browser
	// clients authenticate through it without handling the token themselves.
	AuthCookieName = "quizsheet_token"
	// UserIDKey is the key for storing the user ID in fiber.Ctx locals.
	UserIDKey = "userID"
	// UsernameKey is the key for storing the username in fiber.Ctx locals.
	UsernameKey = "username"
)

// Protected is a middleware function that protects routes by requiring a
// valid session token, taken from the Authorization header or, failing that,
// from the auth cookie. On success the user identity is stored in the
// request locals.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "Authentication required",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := authService.ValidateToken(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "Session is invalid or expired; please log in again",
				Status:  fiber.StatusUnauthorized,
			})
		}

		c.Locals(UserIDKey, claims.UserID)
		c.Locals(UsernameKey, claims.Username)

		return c.Next()
	}
}

// tokenFromRequest extracts the session token, preferring the bearer header.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		if token := strings.TrimPrefix(authHeader, BearerSchema); token != "" {
			return token
		}
	}
	return c.Cookies(AuthCookieName)
}
