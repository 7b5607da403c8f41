package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"tillpoint/internal/config"
	"tillpoint/internal/http/handlers"
	applog "tillpoint/internal/log"
	"tillpoint/internal/metrics"
	"tillpoint/internal/promotions"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Promotions live in memory; the carousel with them.
	store := promotions.NewStore()

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false, "message": "internal error",
				})
			}
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(metrics.Middleware())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/static/")
		},
	}))
	// The JSON API is session-gated and carries no forms; CSRF covers the
	// rendered pages only.
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			formTok := c.FormValue("csrf")
			applog.Security(c, "csrf.fail", map[string]any{"form": formTok})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc, store)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Back-office pages
	app.Get("/", handlers.RequireUser(authSvc), deps.AdminHandler.Dashboard)

	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.AdminDashboard)
	admin.Get("/products", deps.ProductHandler.AdminPage)
	admin.Post("/products", deps.ProductHandler.Save)
	admin.Get("/customers", deps.CustomerHandler.AdminPage)
	admin.Get("/registers", deps.RegisterHandler.AdminPage)
	admin.Get("/users", deps.AdminHandler.UsersPage)
	admin.Post("/users/:id/delete", deps.AdminHandler.DeleteUser)

	super := app.Group("/superadmin", handlers.RequireSuperAdmin(authSvc))
	super.Get("/tenants", deps.TenantHandler.Page)
	super.Post("/tenants", deps.TenantHandler.Create)
	super.Post("/tenants/:id/status", deps.TenantHandler.SetStatus)

	// JSON API
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

	// Promotion writes are an admin concern.
	apiAdmin := app.Group("/api/v1", handlers.RequireAdmin(authSvc))
	apiAdmin.Post("/promotions", deps.PromotionHandler.Create)
	apiAdmin.Put("/promotions/:id", deps.PromotionHandler.Update)
	apiAdmin.Delete("/promotions/:id", deps.PromotionHandler.Delete)
	apiAdmin.Patch("/promotions/:id/status", deps.PromotionHandler.ToggleStatus)
	apiAdmin.Post("/promotions/:id/approval", deps.PromotionHandler.SetApproval)
	apiAdmin.Put("/carousel", deps.PromotionHandler.SetCarousel)

	// Health & metrics
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", metrics.Handler())

	// 404 fallback
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "not found"})
		}
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
