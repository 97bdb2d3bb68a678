package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront-system/internal/core/ports"
)

// ProductHandler serves the catalog API.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns every product in catalog order.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      302
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.List(c.Request().Context()))
}

// Upsert creates a product or replaces the one with the same id.
//
// @Summary      Create or replace a product
// @Tags         products
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      productRequest  true  "Product"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/products [post]
func (h *ProductHandler) Upsert(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.catalog.Upsert(c.Request().Context(), caller(c), req.toDomain()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product saved successfully!"})
}
