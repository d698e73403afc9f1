package middleware

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
)

const (
	CookieName = "jwt"
	localUser  = "userID"
)

var ErrUnauthenticated = errors.New("unauthenticated")

func IssueToken(userID uint, now time.Time) (string, time.Time, error) {
	expires := now.Add(config.App.JWTTTL)
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Issuer:    strconv.Itoa(int(userID)),
		IssuedAt:  now.Unix(),
		ExpiresAt: expires.Unix(),
	})
	token, err := claims.SignedString([]byte(config.App.JWTSecret))
	return token, expires, err
}

// ParseToken validates the signature and expiry and returns the user id
// carried in the Issuer claim.
func ParseToken(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.StandardClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return []byte(config.App.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrUnauthenticated
	}
	claims := token.Claims.(*jwt.StandardClaims)
	id, err := strconv.Atoi(claims.Issuer)
	if err != nil || id <= 0 {
		return 0, ErrUnauthenticated
	}
	return uint(id), nil
}

func tokenFrom(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return c.Cookies(CookieName)
}

// CurrentUserID returns the authenticated user id of the request.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	if id, ok := c.Locals(localUser).(uint); ok {
		return id, nil
	}
	raw := tokenFrom(c)
	if raw == "" {
		return 0, ErrUnauthenticated
	}
	return ParseToken(raw)
}

func RequireAuth(c *fiber.Ctx) error {
	id, err := CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "unauthenticated",
		})
	}
	c.Locals(localUser, id)
	return c.Next()
}
