package handlers

import (
	applog "tillpoint/internal/log"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type TenantHandler struct {
	Tenants *services.TenantService
}

// GET /superadmin/tenants
func (h *TenantHandler) Page(c *fiber.Ctx) error {
	tenants, err := h.Tenants.List()
	if err != nil {
		applog.Error(c, "superadmin.tenants.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load tenants"})
	}
	return render(c, "admin_tenants", fiber.Map{"Tenants": tenants})
}

// POST /superadmin/tenants
func (h *TenantHandler) Create(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return c.Status(400).SendString("invalid tenant name")
	}
	t, err := h.Tenants.Create(name, c.FormValue("plan"))
	if err != nil {
		applog.Error(c, "superadmin.tenants.create.fail", err, map[string]any{"name": name})
		return c.Status(400).SendString("could not create tenant")
	}
	applog.Audit(c, "superadmin.tenants.create", map[string]any{"tenant_id": t.ID})
	return c.Redirect("/superadmin/tenants")
}

// POST /superadmin/tenants/:id/status
func (h *TenantHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	if id == "" || (status != "ACTIVE" && status != "SUSPENDED") {
		return c.Status(400).SendString("missing id or status")
	}
	var err error
	if status == "ACTIVE" {
		err = h.Tenants.Activate(id)
	} else {
		err = h.Tenants.Suspend(id)
	}
	if err != nil {
		applog.Error(c, "superadmin.tenants.status.fail", err, map[string]any{"tenant_id": id})
		return c.Status(400).SendString("could not update tenant")
	}
	applog.Audit(c, "superadmin.tenants.status", map[string]any{"tenant_id": id, "status": status})
	return c.Redirect("/superadmin/tenants")
}
