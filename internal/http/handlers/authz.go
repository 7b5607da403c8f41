package handlers

import (
	"strings"

	applog "tillpoint/internal/log"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

func isAPI(c *fiber.Ctx) bool { return strings.HasPrefix(c.Path(), "/api/") }

func denyAnonymous(c *fiber.Ctx) error {
	if isAPI(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "login required"})
	}
	return c.Redirect("/login")
}

func denyForbidden(c *fiber.Ctx, action string, sid string) error {
	applog.Security(c, action, map[string]any{"sid": sid})
	if isAPI(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "access denied"})
	}
	return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Access denied"})
}

// RequireUser enforces that a user is logged in.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return denyAnonymous(c)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil {
			return denyAnonymous(c)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return denyAnonymous(c)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || (u.Role != "ADMIN" && u.Role != "SUPERADMIN") {
			return denyForbidden(c, "access.denied.admin", sid)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

// RequireSuperAdmin gates the cross-tenant surface.
func RequireSuperAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return denyAnonymous(c)
		}
		u, err := auth.CurrentUser(sid)
		if err != nil || u == nil || u.Role != "SUPERADMIN" {
			return denyForbidden(c, "access.denied.superadmin", sid)
		}
		c.Locals("user", u)
		return c.Next()
	}
}
