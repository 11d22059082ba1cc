package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply/internal/domain"
	categoryrepo "shoply/internal/repository/category"
)

type categoryCreateRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type categoryUpdateRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func (h *handlers) categoryList(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) categoryDetail(c *gin.Context) {
	cat, err := h.deps.CategorySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) categoryCreate(c *gin.Context) {
	var req categoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	cat, err := h.deps.CategorySvc.Create(c.Request.Context(), domain.Category{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *handlers) categoryUpdate(c *gin.Context) {
	var req categoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	cat, err := h.deps.CategorySvc.Update(c.Request.Context(), c.Param("id"), categoryrepo.UpdateInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *handlers) categoryDelete(c *gin.Context) {
	if err := h.deps.CategorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
