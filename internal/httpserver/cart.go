package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type cartAddRequest struct {
	Quantity       int  `json:"quantity"`
	UpdateQuantity bool `json:"update_quantity"`
}

type couponApplyRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *handlers) cartDetail(c *gin.Context) {
	summary, err := h.deps.CartSvc.Summary(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) cartAdd(c *gin.Context) {
	req := cartAddRequest{Quantity: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid payload")
			return
		}
	}

	err := h.deps.CartSvc.Add(c.Request.Context(), sessionID(c), c.Param("product_id"), req.Quantity, req.UpdateQuantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.cartDetail(c)
}

func (h *handlers) cartRemove(c *gin.Context) {
	if err := h.deps.CartSvc.Remove(c.Request.Context(), sessionID(c), c.Param("product_id")); err != nil {
		h.respondError(c, err)
		return
	}
	h.cartDetail(c)
}

func (h *handlers) cartSubtract(c *gin.Context) {
	if err := h.deps.CartSvc.SubtractQuantity(c.Request.Context(), sessionID(c), c.Param("product_id")); err != nil {
		h.respondError(c, err)
		return
	}
	h.cartDetail(c)
}

func (h *handlers) couponApply(c *gin.Context) {
	var req couponApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	if err := h.deps.CartSvc.ApplyCoupon(c.Request.Context(), sessionID(c), req.Code); err != nil {
		h.respondError(c, err)
		return
	}
	h.cartDetail(c)
}

func (h *handlers) couponRemove(c *gin.Context) {
	if err := h.deps.CartSvc.RemoveCoupon(c.Request.Context(), sessionID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	h.cartDetail(c)
}
