package middleware

import (
	"strings"

	"go-pharmacy-api/internal/repository"
	"go-pharmacy-api/pkg/apierr"
	"go-pharmacy-api/pkg/jwt"
	"go-pharmacy-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth and read by handlers.
const (
	LocalUserID     = "userID"
	LocalUserEmail  = "userEmail"
	LocalUserName   = "userName"
	LocalRoleCode   = "roleCode"
	LocalPrivileges = "privileges"
)

// RequireAuth validates the bearer token and hydrates the request
// locals. The token version is checked against the database so a newer
// login immediately invalidates older sessions.
func RequireAuth(userRepo repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return response.Error(c, apierr.Unauthorized("missing bearer token"))
		}

		claims, err := jwt.ValidateAccess(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return response.Error(c, apierr.Unauthorized("invalid or expired token"))
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return response.Error(c, apierr.Unauthorized("user no longer exists"))
		}
		if !user.IsActive {
			return response.Error(c, apierr.Forbidden("account is deactivated"))
		}
		if user.TokenVersion != claims.TokenVersion {
			return response.Error(c, apierr.Unauthorized("session superseded by a newer login"))
		}

		c.Locals(LocalUserID, claims.UserID.String())
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalRoleCode, claims.RoleCode)
		c.Locals(LocalPrivileges, user.GetPrivilegeCodes())

		return c.Next()
	}
}

func hasPrivilege(c *fiber.Ctx, code string) bool {
	privileges, ok := c.Locals(LocalPrivileges).([]string)
	if !ok {
		return false
	}
	for _, p := range privileges {
		if p == code {
			return true
		}
	}
	return false
}

// RequirePrivilege gates a route behind a single privilege code.
func RequirePrivilege(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !hasPrivilege(c, code) {
			return response.Error(c, apierr.Forbidden("missing privilege: "+code))
		}
		return c.Next()
	}
}

// RequireAnyPrivilege passes when the user holds at least one of the
// given codes. Used where view access is shared across roles.
func RequireAnyPrivilege(codes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, code := range codes {
			if hasPrivilege(c, code) {
				return c.Next()
			}
		}
		return response.Error(c, apierr.Forbidden("insufficient privileges"))
	}
}
