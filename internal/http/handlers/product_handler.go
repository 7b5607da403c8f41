package handlers

import (
	"tillpoint/internal/domain"
	applog "tillpoint/internal/log"
	"tillpoint/internal/services"
	"tillpoint/internal/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// GET /admin/products
func (h *ProductHandler) AdminPage(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "admin.products.cats.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load categories"})
	}
	catID := c.Query("category")
	if catID == "" && len(cats) > 0 {
		catID = cats[0].ID
	}
	prods, err := h.Catalog.ListProductsByCategory(catID, c.QueryInt("page", 1), 50)
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, map[string]any{"category": catID})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Categories": cats, "Products": prods, "Selected": catID})
}

// POST /admin/products — create or update from the admin form.
func (h *ProductHandler) Save(c *fiber.Ctx) error {
	id := c.FormValue("id")
	name, okName := validate.Name(c.FormValue("name"))
	price, okPrice := validate.Money(c.FormValue("price"))
	catID, okCat := validate.ID(c.FormValue("category_id"))
	sku, okSKU := validate.ID(c.FormValue("sku"))
	if !okName || !okPrice || !okCat || !okSKU {
		return c.Status(400).SendString("invalid input")
	}

	isNew := id == ""
	if isNew {
		id = uuid.NewString()
	} else if _, ok := validate.ID(id); !ok {
		return c.Status(400).SendString("invalid input")
	}

	p := domain.Product{
		ID:          id,
		CategoryID:  catID,
		SKU:         sku,
		Name:        name,
		Description: c.FormValue("description"),
		Price:       price,
		Active:      c.FormValue("active") != "false",
	}
	if err := h.Catalog.SaveProduct(p, isNew); err != nil {
		applog.Error(c, "admin.products.save.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not save product")
	}
	applog.Audit(c, "admin.products.save", map[string]any{"product_id": id, "new": isNew})
	return c.Redirect("/admin/products?category=" + catID)
}

// GET /api/v1/products — search endpoint for POS terminals.
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Q(c.Query("q"))
	if !ok && c.Query("q") != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "invalid search query"})
	}
	prods, err := h.Catalog.Search(q, c.Query("category"), c.QueryInt("page", 1), c.QueryInt("limit", 25))
	if err != nil {
		applog.Error(c, "products.search.fail", err, map[string]any{"q": q})
		return c.Status(500).JSON(fiber.Map{"success": false, "message": "internal error"})
	}
	return c.JSON(fiber.Map{"success": true, "data": prods, "count": len(prods)})
}
