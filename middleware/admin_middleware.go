package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	apimodels "vocacional-ai-backend/models/api"
)

func AdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		token, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operação não permitida"))
		}
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)
		if role != "admin" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operação não permitida"))
		}
		return ctx.Next()
	}
}
