package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func extractToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) >= 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	// Browser clients keep the token in a cookie.
	return ctx.Cookies("token")
}

func parseClaims(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, Unauthorized("Invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, Unauthorized("Invalid claims")
	}
	return claims, nil
}

func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := extractToken(ctx)
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
	}

	claims, err := parseClaims(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("email", claims["email"])
	return ctx.Next()
}

// OptionalJwtMiddleware populates locals when a valid token is present
// and lets the request through anonymously otherwise.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := extractToken(ctx)
	if tokenStr == "" {
		return ctx.Next()
	}

	claims, err := parseClaims(tokenStr)
	if err != nil {
		return ctx.Next()
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("email", claims["email"])
	return ctx.Next()
}
