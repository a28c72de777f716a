package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	apimodels "store-ops-backend/models/api"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		token, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(fiber.StatusUnauthorized, "authorization required"))
		}
		claims := token.Claims.(jwt.MapClaims)
		isAdmin, _ := claims["admin"].(bool)
		if !isAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(fiber.StatusForbidden, "admin access required"))
		}
		return ctx.Next()
	}
}
