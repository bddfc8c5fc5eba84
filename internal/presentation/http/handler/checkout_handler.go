package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jpmanalo/bakepos-counter/internal/application/service"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/response"
)

// CheckoutHandler submits the cart as a completed sale.
type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout runs the checkout sequence for the session's cart.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), *sessionID, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Checkout completed", gin.H{
		"transaction_id": result.TransactionID,
		"receipt":        result.Receipt,
		"totals":         response.NewTotalsResponse(result.Totals),
	})
}
