package handlers

import (
	applog "tillpoint/internal/log"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Users     *repos.UserRepo
	Registers *services.RegisterService
	Promos    *services.PromotionService
}

// GET / — back-office dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	sessions, _ := h.Registers.ListLatest(10)
	promos := h.Promos.Store.List()
	return render(c, "home", fiber.Map{
		"Sessions":   sessions,
		"Promotions": promos,
		"Carousel":   h.Promos.Store.CarouselPromotions(),
	})
}

// GET /admin
func (h *AdminHandler) AdminDashboard(c *fiber.Ctx) error {
	return render(c, "admin_dashboard", fiber.Map{})
}

// GET /admin/users
func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load users"})
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

// POST /admin/users/:id/delete — removes the user and their sessions.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Users.DeleteUserCascade(id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user_id": id})
		return c.Status(400).SendString("could not delete user")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user_id": id})
	return c.Redirect("/admin/users")
}
