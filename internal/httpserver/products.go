package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shoply/internal/domain"
	productrepo "shoply/internal/repository/product"
)

type productCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Slug        string          `json:"slug" binding:"required"`
	CategoryID  *string         `json:"categoryId"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
}

type productUpdateRequest struct {
	Name        *string          `json:"name"`
	Slug        *string          `json:"slug"`
	CategoryID  *string          `json:"categoryId"`
	Price       *decimal.Decimal `json:"price"`
	SKU         *string          `json:"sku"`
	Description *string          `json:"description"`
}

func (h *handlers) productList(c *gin.Context) {
	filter := productrepo.ListFilter{
		CategorySlug: c.Query("category"),
		Name:         c.Query("name"),
		Ordering:     c.Query("ordering"),
	}
	products, err := h.deps.ProductSvc.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) productDetail(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) productPopular(c *gin.Context) {
	products, err := h.deps.ProductSvc.Popular(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) productLatestArrivals(c *gin.Context) {
	products, err := h.deps.ProductSvc.LatestArrivals(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) productCreate(c *gin.Context) {
	var req productCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Price.IsNegative() {
		badRequest(c, "price must not be negative")
		return
	}

	p, err := h.deps.ProductSvc.Create(c.Request.Context(), domain.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		SKU:         req.SKU,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *handlers) productUpdate(c *gin.Context) {
	var req productUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}
	if req.Price != nil && req.Price.IsNegative() {
		badRequest(c, "price must not be negative")
		return
	}

	p, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), productrepo.UpdateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		SKU:         req.SKU,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) productDelete(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
