package handlers

import (
	"errors"

	applog "tillpoint/internal/log"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	Customers *services.CustomerService
}

// GET /admin/customers
func (h *CustomerHandler) AdminPage(c *fiber.Ctx) error {
	custs, err := h.Customers.List(c.QueryInt("page", 1), 50)
	if err != nil {
		applog.Error(c, "admin.customers.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load customers"})
	}
	return render(c, "admin_customers", fiber.Map{"Customers": custs})
}

// GET /api/v1/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	custs, err := h.Customers.List(c.QueryInt("page", 1), c.QueryInt("limit", 25))
	if err != nil {
		applog.Error(c, "customers.list.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": custs, "count": len(custs)})
}

type createCustomerRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=60"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

// POST /api/v1/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var body createCustomerRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid customer payload"})
	}
	cust, err := h.Customers.Create(body.Name, body.Email, body.Phone)
	if err != nil {
		applog.Error(c, "customers.create.fail", err, map[string]any{"email": body.Email})
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "could not create customer"})
	}
	applog.Audit(c, "customers.create", map[string]any{"customer_id": cust.ID})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": cust})
}

type accrueRequest struct {
	PurchaseAmount float64 `json:"purchaseAmount" validate:"gt=0"`
}

// POST /api/v1/customers/:id/accrue — loyalty points from a purchase.
func (h *CustomerHandler) Accrue(c *fiber.Ctx) error {
	id := c.Params("id")
	var body accrueRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "purchase amount must be positive"})
	}
	if err := h.Customers.Accrue(id, body.PurchaseAmount); err != nil {
		applog.Error(c, "customers.accrue.fail", err, map[string]any{"customer_id": id})
		return c.Status(404).JSON(fiber.Map{"success": false, "message": "customer not found"})
	}
	cust, err := h.Customers.Get(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	applog.Audit(c, "customers.accrue", map[string]any{"customer_id": id, "amount": body.PurchaseAmount})
	return c.JSON(fiber.Map{"success": true, "data": cust})
}

type redeemRequest struct {
	Points int `json:"points" validate:"gt=0"`
}

// POST /api/v1/customers/:id/redeem
func (h *CustomerHandler) Redeem(c *fiber.Ctx) error {
	id := c.Params("id")
	var body redeemRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "points must be positive"})
	}
	if err := h.Customers.Redeem(id, body.Points); err != nil {
		if errors.Is(err, services.ErrInsufficientPoints) {
			return c.Status(409).JSON(fiber.Map{"success": false, "message": "not enough loyalty points"})
		}
		applog.Error(c, "customers.redeem.fail", err, map[string]any{"customer_id": id})
		return c.Status(404).JSON(fiber.Map{"success": false, "message": "customer not found"})
	}
	cust, err := h.Customers.Get(id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	applog.Audit(c, "customers.redeem", map[string]any{"customer_id": id, "points": body.Points})
	return c.JSON(fiber.Map{"success": true, "data": cust})
}
