package handlers

import (
	"errors"
	"strings"
	"time"

	"tillpoint/internal/domain"
	applog "tillpoint/internal/log"
	"tillpoint/internal/promotions"
	"tillpoint/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PromotionHandler struct {
	Promos *services.PromotionService
}

// parseQuery maps query-string parameters onto the typed promotions.Query.
// Bounds are the core's job; this layer only parses.
func parseQuery(c *fiber.Ctx) promotions.Query {
	q := promotions.Query{
		Page:     c.QueryInt("page", 0),
		Limit:    c.QueryInt("limit", 0),
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	switch strings.ToLower(c.Query("status")) {
	case "active":
		q.Status = promotions.StatusActive
	case "inactive":
		q.Status = promotions.StatusInactive
	default:
		q.Status = promotions.StatusAll
	}
	if t, ok := parseDateParam(c.Query("dateFrom")); ok {
		q.DateFrom = t
	}
	if t, ok := parseDateParam(c.Query("dateTo")); ok {
		q.DateTo = t
	}
	return q
}

func parseDateParam(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, true
		}
	}
	return nil, false
}

func promoError(c *fiber.Ctx, err error) error {
	var verr *promotions.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": verr.Reason,
		})
	}
	var nf *promotions.NotFoundError
	if errors.As(err, &nf) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": "promotion not found",
		})
	}
	applog.Error(c, "promo.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false, "message": "internal error",
	})
}

// GET /api/v1/promotions
func (h *PromotionHandler) Query(c *fiber.Ctx) error {
	res := h.Promos.Store.Query(parseQuery(c))
	return c.JSON(fiber.Map{
		"success": true,
		"data":    res.Items,
		"count":   res.Total,
		"page":    res.Page,
		"limit":   res.Limit,
		"pages":   res.Pages,
	})
}

// GET /api/v1/promotions/all
func (h *PromotionHandler) List(c *fiber.Ctx) error {
	items := h.Promos.Store.List()
	return c.JSON(fiber.Map{"success": true, "data": items, "count": len(items)})
}

// POST /api/v1/promotions
func (h *PromotionHandler) Create(c *fiber.Ctx) error {
	var in promotions.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid request body",
		})
	}
	p, err := h.Promos.Create(in)
	if err != nil {
		return promoError(c, err)
	}
	applog.Audit(c, "promo.create", map[string]any{"promo_id": p.ID, "name": p.Name})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": p})
}

// PUT /api/v1/promotions/:id
func (h *PromotionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in promotions.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid request body",
		})
	}
	p, err := h.Promos.Update(id, in)
	if err != nil {
		return promoError(c, err)
	}
	applog.Audit(c, "promo.update", map[string]any{"promo_id": id})
	return c.JSON(fiber.Map{"success": true, "data": p})
}

// DELETE /api/v1/promotions/:id — absence is reported, never an error.
func (h *PromotionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted := h.Promos.Store.Delete(id)
	if deleted {
		applog.Audit(c, "promo.delete", map[string]any{"promo_id": id})
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}

// PATCH /api/v1/promotions/:id/status
func (h *PromotionHandler) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var body struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid request body",
		})
	}
	p, err := h.Promos.Store.ToggleActive(id, body.IsActive)
	if err != nil {
		return promoError(c, err)
	}
	applog.Audit(c, "promo.toggle", map[string]any{"promo_id": id, "is_active": body.IsActive})
	return c.JSON(fiber.Map{"success": true, "data": p})
}

type approvalRequest struct {
	Status  string `json:"status" validate:"required,oneof=pending approved rejected"`
	Comment string `json:"comment"`
}

// POST /api/v1/promotions/:id/approval — actor is the logged-in user.
func (h *PromotionHandler) SetApproval(c *fiber.Ctx) error {
	id := c.Params("id")
	var body approvalRequest
	if err := parseBody(c, &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "status must be pending, approved or rejected",
		})
	}

	var actor *promotions.Actor
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil {
		actor = &promotions.Actor{ID: u.ID, Email: u.Email}
	}

	p, err := h.Promos.Store.SetApproval(id, promotions.ApprovalStatus(body.Status), body.Comment, actor)
	if err != nil {
		return promoError(c, err)
	}
	applog.Audit(c, "promo.approval", map[string]any{"promo_id": id, "status": body.Status})
	return c.JSON(fiber.Map{"success": true, "data": p})
}

// GET /api/v1/carousel
func (h *PromotionHandler) Carousel(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"ids":   h.Promos.Store.CarouselIDs(),
			"items": h.Promos.Store.CarouselPromotions(),
		},
	})
}

// PUT /api/v1/carousel — full replace; unknown/duplicate ids are normalized
// away by the store.
func (h *PromotionHandler) SetCarousel(c *fiber.Ctx) error {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "invalid request body",
		})
	}
	ids, items := h.Promos.Store.SetCarousel(body.IDs)
	applog.Audit(c, "promo.carousel.set", map[string]any{"count": len(ids)})
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"ids": ids, "items": items},
	})
}
