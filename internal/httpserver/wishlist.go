package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) wishlistList(c *gin.Context) {
	products, err := h.deps.WishlistSvc.List(c.Request.Context(), sessionID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) wishlistAdd(c *gin.Context) {
	if err := h.deps.WishlistSvc.Add(c.Request.Context(), sessionID(c), c.Param("product_id")); err != nil {
		h.respondError(c, err)
		return
	}
	h.wishlistList(c)
}

func (h *handlers) wishlistRemove(c *gin.Context) {
	if err := h.deps.WishlistSvc.Remove(c.Request.Context(), sessionID(c), c.Param("product_id")); err != nil {
		h.respondError(c, err)
		return
	}
	h.wishlistList(c)
}
