// Package server assembles the fiber application.
package server

import (
	"context"
	"time"

	"kickshop/internal/handlers"
	"kickshop/internal/middleware"
	"kickshop/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options holds the HTTP-level settings.
type Options struct {
	AppName        string
	APIPrefix      string
	CORSOrigins    string
	AdminToken     string
	AuthRateLimit  int
	AuthRateWindow time.Duration
	// LimiterStorage shares limiter counters between instances; nil keeps them in memory.
	LimiterStorage fiber.Storage
}

// Deps are the services the routes are bound to.
type Deps struct {
	Auth     *services.AuthService
	Products *services.ProductService
	Carts    *services.CartService
	Orders   *services.OrderService
	Store    Pinger
	Log      *logrus.Logger
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(opts Options, deps Deps) *fiber.App {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.AppName,
		ErrorHandler:          handlers.ErrorHandler(deps.Log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} ${path} | ${locals:requestid}\n",
		Output: deps.Log.Out,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: opts.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.AdminTokenHeader,
	}))

	app.Get("/health", healthHandler(deps.Store))

	api := app.Group(opts.APIPrefix)
	authRequired := middleware.AuthRequired(deps.Auth)

	handlers.NewAuthHandler(deps.Auth).RegisterRoutes(api, authLimiter(opts))
	handlers.NewProductHandler(deps.Products, opts.AdminToken).RegisterRoutes(api)
	handlers.NewCartHandler(deps.Carts).RegisterRoutes(api, authRequired)
	handlers.NewOrderHandler(deps.Orders).RegisterRoutes(api, authRequired)

	return app
}

func authLimiter(opts Options) fiber.Handler {
	if opts.AuthRateLimit <= 0 {
		return nil
	}
	window := opts.AuthRateWindow
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        opts.AuthRateLimit,
		Expiration: window,
		Storage:    opts.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "auth:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests")
		},
	})
}

func healthHandler(store Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		now := time.Now().UTC().Format(time.RFC3339)
		if store != nil {
			if err := store.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status": "unhealthy",
					"time":   now,
				})
			}
		}
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   now,
		})
	}
}
