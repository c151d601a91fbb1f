package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"booking-platform/apperror"
	"booking-platform/errors"
	"booking-platform/model"
)

// Authorize verifies the bearer token and stores it under the "identity"
// context key for downstream handlers.
func Authorize(secret string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(secret),
		ErrorHandler: jwtError,
		ContextKey:   "identity",
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return errors.RaiseError(c, fiber.StatusBadRequest, "Missing or malformed JWT", nil)
	}
	return errors.RaiseError(c, fiber.StatusUnauthorized, "Invalid or expired JWT", nil)
}

// Identity extracts the verified requester id and role from the token.
func Identity(c *fiber.Ctx) (primitive.ObjectID, string, error) {
	token, ok := c.Locals("identity").(*jwt.Token)
	if !ok {
		return primitive.NilObjectID, "", apperror.Authentication("No token provided")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, "", apperror.Authentication("Invalid token")
	}

	idHex, _ := claims["id"].(string)
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return primitive.NilObjectID, "", apperror.Authentication("Invalid token")
	}

	role, _ := claims["role"].(string)
	return id, role, nil
}

// UserLookup is the slice of the user service the admin guard needs.
type UserLookup interface {
	Get(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

// RequireAdmin re-validates the token holder against the user store so a
// stale token cannot outlive a revoked admin account.
func RequireAdmin(users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, _, err := Identity(c)
		if err != nil {
			return errors.Respond(c, err)
		}

		user, err := users.Get(c.Context(), id)
		if err != nil {
			if apperror.IsKind(err, apperror.KindNotFound) {
				return errors.Respond(c, apperror.Authentication("Token belongs to a user that no longer exists"))
			}
			return errors.Respond(c, err)
		}
		if user.Role != model.RoleAdmin {
			return errors.Respond(c, apperror.Authorization("You are not authorized to do this action"))
		}

		return c.Next()
	}
}
