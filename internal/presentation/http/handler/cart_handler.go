package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jpmanalo/bakepos-counter/internal/application/service"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/request"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/response"
)

// CartHandler manages the session cart and payment panel.
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart returns the session's cart with derived totals.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	cart, totals, err := h.cartService.Get(c.Request.Context(), *sessionID, GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", response.NewCartResponse(cart, totals))
}

// AddItem adds one unit of a product to the cart.
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	cart, totals, err := h.cartService.AddItem(c.Request.Context(), *sessionID, GetUsername(c), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", response.NewCartResponse(cart, totals))
}

// RemoveItem deletes the whole line for a product.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, totals, err := h.cartService.RemoveItem(c.Request.Context(), *sessionID, GetUsername(c), productID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed", response.NewCartResponse(cart, totals))
}

// SetPayment stores the payment panel inputs on the cart.
func (h *CartHandler) SetPayment(c *gin.Context) {
	sessionID := GetSessionID(c)
	if sessionID == nil {
		response.Unauthorized(c, "Session required")
		return
	}

	var req request.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	cart, totals, err := h.cartService.SetPayment(c.Request.Context(), *sessionID, GetUsername(c), service.PaymentInput{
		Discount:   req.Discount,
		AmountPaid: req.AmountPaid,
		Method:     req.Method,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment updated", response.NewCartResponse(cart, totals))
}
