package handlers

import (
	"kickshop/internal/middleware"
	"kickshop/internal/models"
	"kickshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart of the authenticated user.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the cart routes behind the auth middleware.
func (h *CartHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	cartRoutes := router.Group("/cart", auth)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Get("/", h.HandleListItems)
	cartRoutes.Delete("/:item_id", h.HandleRemoveItem)
}

// AddCartItemRequest represents the request body for adding to the cart.
type AddCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Size      float64 `json:"size" validate:"gt=0"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
}

// HandleAddItem adds a product to the cart or grows the matching line.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := parseBody(c, h.validate, &req); err != nil {
		return err
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	user := middleware.CurrentUser(c)
	outcome, err := h.service.AddItem(c.UserContext(), user.ID, services.AddCartItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  qty,
	})
	if err != nil {
		return err
	}

	message := "Item added to cart"
	if outcome == models.CartItemMerged {
		message = "Quantity updated"
	}
	return c.JSON(fiber.Map{"message": message})
}

// HandleListItems lists the lines of the user's cart.
func (h *CartHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.UserContext(), middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// HandleRemoveItem deletes one line of the user's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.UserContext(), middleware.CurrentUser(c).ID, c.Params("item_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}
