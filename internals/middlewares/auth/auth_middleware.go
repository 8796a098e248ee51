package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT verifies the bearer token and stores the user claims in
// c.Locals (user_id, email, role, school_id).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing bearer token")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	if schoolID, ok := claims["school_id"].(string); ok {
		c.Locals("school_id", schoolID)
	}
}
