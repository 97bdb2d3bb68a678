package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/storefront-system/internal/core/domain"
	"github.com/99minutos/storefront-system/internal/core/ports"
)

// CheckoutHandler turns the caller's product selection into an order.
type CheckoutHandler struct {
	checkout ports.CheckoutService
}

func NewCheckoutHandler(checkout ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout creates an order for the selected products.
//
// @Summary      Checkout
// @Tags         orders
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body      checkoutRequest  true  "Selected product ids"
// @Success      200   {object}  checkoutResponse
// @Failure      400   {object}  checkoutResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return invalidSelection(c)
	}

	receipt, err := h.checkout.Checkout(c.Request().Context(), caller(c), req.Products)
	if errors.Is(err, domain.ErrNoValidProducts) {
		return invalidSelection(c)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, checkoutResponse{
		Success: true,
		Message: "Checkout successful! Total: $" + receipt.FormattedTotal(),
	})
}

func invalidSelection(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, checkoutResponse{
		Success: false,
		Message: domain.ErrNoValidProducts.Message,
	})
}
