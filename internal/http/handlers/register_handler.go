package handlers

import (
	"errors"

	"tillpoint/internal/domain"
	applog "tillpoint/internal/log"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterHandler struct {
	Registers *services.RegisterService
}

func registerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRegisterBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "register already has an open session"})
	case errors.Is(err, services.ErrSessionMissing):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "register session not found"})
	case errors.Is(err, services.ErrSessionClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "register session is not open"})
	default:
		applog.Error(c, "registers.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
}

// GET /admin/registers
func (h *RegisterHandler) AdminPage(c *fiber.Ctx) error {
	sessions, err := h.Registers.ListLatest(50)
	if err != nil {
		applog.Error(c, "admin.registers.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load register sessions"})
	}
	return render(c, "admin_registers", fiber.Map{"Sessions": sessions})
}

type openRegisterRequest struct {
	RegisterCode string  `json:"registerCode" validate:"required,min=1,max=20"`
	OpeningFloat float64 `json:"openingFloat" validate:"gte=0"`
}

// POST /api/v1/registers — open a shift; the cashier is the session user.
func (h *RegisterHandler) Open(c *fiber.Ctx) error {
	var body openRegisterRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid register payload"})
	}
	cashierID := ""
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		cashierID = u.ID
	}
	sess, err := h.Registers.Open(body.RegisterCode, cashierID, body.OpeningFloat)
	if err != nil {
		return registerError(c, err)
	}
	applog.Audit(c, "registers.open", map[string]any{"session_id": sess.ID, "register": body.RegisterCode})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": sess})
}

// GET /api/v1/registers
func (h *RegisterHandler) List(c *fiber.Ctx) error {
	sessions, err := h.Registers.ListLatest(c.QueryInt("limit", 25))
	if err != nil {
		applog.Error(c, "registers.list.fail", err, nil)
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": sessions, "count": len(sessions)})
}

type movementRequest struct {
	Kind   string  `json:"kind" validate:"required,oneof=SALE PAYOUT DEPOSIT"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Note   string  `json:"note" validate:"max=200"`
}

// POST /api/v1/registers/:id/movements
func (h *RegisterHandler) AddMovement(c *fiber.Ctx) error {
	id := c.Params("id")
	var body movementRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid movement payload"})
	}
	if err := h.Registers.Record(id, body.Kind, body.Amount, body.Note); err != nil {
		return registerError(c, err)
	}
	applog.Audit(c, "registers.movement", map[string]any{"session_id": id, "kind": body.Kind, "amount": body.Amount})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// GET /api/v1/registers/:id/movements
func (h *RegisterHandler) Movements(c *fiber.Ctx) error {
	id := c.Params("id")
	moves, err := h.Registers.Movements(id)
	if err != nil {
		applog.Error(c, "registers.movements.fail", err, map[string]any{"session_id": id})
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": moves, "count": len(moves)})
}

type closeRegisterRequest struct {
	CountedAmount float64 `json:"countedAmount" validate:"gte=0"`
}

// POST /api/v1/registers/:id/close — reconcile the drawer.
func (h *RegisterHandler) Close(c *fiber.Ctx) error {
	id := c.Params("id")
	var body closeRegisterRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid close payload"})
	}
	sess, err := h.Registers.Close(id, body.CountedAmount)
	if err != nil {
		return registerError(c, err)
	}
	applog.Audit(c, "registers.close", map[string]any{"session_id": id, "difference": sess.Difference})
	return c.JSON(fiber.Map{"success": true, "data": sess})
}
