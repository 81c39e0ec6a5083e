package handler

import (
	"net/http"

	"zctraders-api/internal/features/catalog/domain"
	inquirydomain "zctraders-api/internal/features/inquiries/domain"
	orderdomain "zctraders-api/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static marketing data the site pages render.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Products handles GET /catalog/products.
// @Summary Product data
// @Description Order-form product labels plus the showcase categories.
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"order_products":     orderdomain.Products,
		"product_categories": domain.ProductCategories(),
	})
}

// InquiryCategories handles GET /catalog/categories.
// @Summary Inquiry categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/categories [get]
func (h *CatalogHandler) InquiryCategories(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"categories": inquirydomain.Categories,
	})
}

// PaymentChannels handles GET /catalog/payment-channels.
// @Summary Payment channel details
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/payment-channels [get]
func (h *CatalogHandler) PaymentChannels(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"channels": domain.PaymentChannels(),
	})
}

// Contacts handles GET /catalog/contacts.
// @Summary Company contact inboxes
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /catalog/contacts [get]
func (h *CatalogHandler) Contacts(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"contacts": domain.ContactEmails(),
	})
}
