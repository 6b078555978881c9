package handlers

import (
	"fmt"

	"kickshop/internal/middleware"
	"kickshop/internal/models"
	"kickshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service    *services.ProductService
	adminToken string
	validate   *validator.Validate
}

// NewProductHandler creates a new ProductHandler. adminToken guards catalog seeding.
func NewProductHandler(service *services.ProductService, adminToken string) *ProductHandler {
	return &ProductHandler{
		service:    service,
		adminToken: adminToken,
		validate:   newValidator(),
	}
}

// RegisterRoutes registers the product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)

	router.Post("/init-products", middleware.AdminRequired(h.adminToken), h.HandleInitProducts)
}

// ProductQuery is the optional filter of a product listing.
type ProductQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=sneakers boots casual athletic formal"`
	Brand    string `query:"brand" validate:"omitempty,oneof=Nike Adidas Puma Converse Vans Timberland"`
}

// HandleListProducts lists products, optionally filtered by category and brand.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var q ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return &ValidationError{Message: "Invalid query parameters"}
	}
	if err := validate(h.validate, q); err != nil {
		return err
	}

	products, err := h.service.ListProducts(c.UserContext(), models.ProductFilter{
		Category: models.Category(q.Category),
		Brand:    models.Brand(q.Brand),
	})
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleInitProducts replaces the catalog with the built-in product list.
func (h *ProductHandler) HandleInitProducts(c *fiber.Ctx) error {
	n, err := h.service.SeedCatalog(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Initialized %d products", n),
		"count":   n,
	})
}
