package serverutils

import (
	"crypto/sha256"
	"encoding/hex"

	"notekeeper-be/internal/apperror"
	"notekeeper-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// TokenHash is the identity under which a token is revoked. Storing the
// hash keeps raw bearer tokens out of the revocation store.
func TokenHash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// NewJwtMiddleware authenticates requests with a Bearer token, rejects
// revoked tokens, and stashes the caller identity in ctx.Locals for the
// controllers. "token" carries the raw string so logout can revoke it.
func NewJwtMiddleware(secret string, revocations contract.RevocationRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(apperror.CodeAuth, "Missing token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(apperror.CodeAuth, "Invalid token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(apperror.CodeAuth, "Invalid claims"))
		}

		revoked, err := revocations.IsRevoked(ctx.Context(), TokenHash(tokenStr))
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(apperror.CodeInternal, "Internal server error"))
		}
		if revoked {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(apperror.CodeAuth, "Invalid token"))
		}

		ctx.Locals("user_id", claims["user_id"])
		ctx.Locals("token", tokenStr)
		return ctx.Next()
	}
}
