package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply/internal/domain"
	ordersvc "shoply/internal/service/order"
)

type checkoutRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Address    string `json:"address" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	City       string `json:"city" binding:"required"`

	CardNumber  string `json:"card_number" binding:"required"`
	ExpiryMonth int64  `json:"expiry_month" binding:"required"`
	ExpiryYear  int64  `json:"expiry_year" binding:"required"`
	CVC         string `json:"cvc" binding:"required"`
}

// checkout places an order from the session cart and charges the card. The
// cart is cleared only after the charge succeeds, so a declined card leaves
// the cart intact for a retry.
func (h *handlers) checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	in := ordersvc.CreateOrderInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Address:    req.Address,
		PostalCode: req.PostalCode,
		City:       req.City,
		Card: domain.CardInformation{
			Number:      req.CardNumber,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVC:         req.CVC,
		},
	}
	if cust, ok := h.authenticate(c); ok {
		in.CustomerID = &cust.ID
	}

	sid := sessionID(c)
	data, err := h.deps.OrderSvc.CreateOrder(c.Request.Context(), sid, in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.deps.PaymentSvc.ChargeCard(c.Request.Context(), data.Card, data.TotalPrice); err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.deps.OrderSvc.ClearCart(c.Request.Context(), sid); err != nil {
		h.logger.Printf("clear cart after checkout: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":    data.Order.ID,
		"total_price": data.TotalPrice,
		"detail":      "your order was placed successfully",
	})
}
