package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"tillpoint/internal/config"
	"tillpoint/internal/http/handlers"
	"tillpoint/internal/promotions"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

// newTestApp builds the app the way main does, minus rate limiting and CSRF,
// against a seeded in-memory database. Sessions sid-user/sid-admin/sid-root
// are pre-bound to the seeded accounts.
func newTestApp(t *testing.T) (*fiber.App, *promotions.Store) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	store := promotions.NewStore()

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(requestid.New())

	deps := handlers.NewDeps(db, config.Config{}, authSvc, store)

	api := app.Group("/api/v1", handlers.RequireUser(authSvc))
	api.Get("/promotions", deps.PromotionHandler.Query)
	api.Get("/promotions/all", deps.PromotionHandler.List)
	api.Get("/carousel", deps.PromotionHandler.Carousel)
	api.Get("/products", deps.ProductHandler.Search)
	api.Get("/registers", deps.RegisterHandler.List)
	api.Post("/registers", deps.RegisterHandler.Open)
	api.Get("/registers/:id/movements", deps.RegisterHandler.Movements)
	api.Post("/registers/:id/movements", deps.RegisterHandler.AddMovement)
	api.Post("/registers/:id/close", deps.RegisterHandler.Close)
	api.Get("/customers", deps.CustomerHandler.List)
	api.Post("/customers", deps.CustomerHandler.Create)
	api.Post("/customers/:id/accrue", deps.CustomerHandler.Accrue)
	api.Post("/customers/:id/redeem", deps.CustomerHandler.Redeem)

	apiAdmin := app.Group("/api/v1", handlers.RequireAdmin(authSvc))
	apiAdmin.Post("/promotions", deps.PromotionHandler.Create)
	apiAdmin.Put("/promotions/:id", deps.PromotionHandler.Update)
	apiAdmin.Delete("/promotions/:id", deps.PromotionHandler.Delete)
	apiAdmin.Patch("/promotions/:id/status", deps.PromotionHandler.ToggleStatus)
	apiAdmin.Post("/promotions/:id/approval", deps.PromotionHandler.SetApproval)
	apiAdmin.Put("/carousel", deps.PromotionHandler.SetCarousel)

	super := app.Group("/superadmin", handlers.RequireSuperAdmin(authSvc))
	super.Get("/tenants", deps.TenantHandler.Page)

	if err := userRepo.BindSession("sid-user", "u-carla"); err != nil {
		t.Fatalf("bind user session: %v", err)
	}
	if err := userRepo.BindSession("sid-admin", "u-admin"); err != nil {
		t.Fatalf("bind admin session: %v", err)
	}
	if err := userRepo.BindSession("sid-root", "u-root"); err != nil {
		t.Fatalf("bind root session: %v", err)
	}

	return app, store
}

// doJSON fires a request with an optional session cookie and JSON body and
// decodes the JSON response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path, sid string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func dataMap(t *testing.T, out map[string]any) map[string]any {
	t.Helper()
	m, ok := out["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", out)
	}
	return m
}
