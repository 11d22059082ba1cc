package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shoply/internal/domain"
	customerrepo "shoply/internal/repository/customer"
	customersvc "shoply/internal/service/customer"
)

const ctxCustomer = "customer"

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type profileUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (h *handlers) register(c *gin.Context) {
	var req customersvc.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	cust, err := h.deps.CustomerSvc.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"detail": "email already registered"})
			return
		}
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	_, access, refresh, err := h.deps.CustomerSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, customersvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid credentials"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access":     access,
		"refresh":    refresh,
		"expires_in": h.deps.CustomerSvc.AccessTTLSeconds(),
	})
}

func (h *handlers) refreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	access, err := h.deps.CustomerSvc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, customersvc.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// requireAuth validates the Bearer token and stashes the customer on the
// request context.
func (h *handlers) requireAuth(c *gin.Context) {
	cust, ok := h.authenticate(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
		return
	}
	c.Set(ctxCustomer, cust)
	c.Next()
}

// authenticate resolves the Bearer token if one is present. The second return
// is false when the header is missing or the token does not validate.
func (h *handlers) authenticate(c *gin.Context) (*domain.Customer, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if header == "" || token == "" || token == header {
		return nil, false
	}
	cust, err := h.deps.CustomerSvc.LookupByToken(c.Request.Context(), token)
	if err != nil {
		return nil, false
	}
	return cust, true
}

func currentCustomer(c *gin.Context) *domain.Customer {
	v, ok := c.Get(ctxCustomer)
	if !ok {
		return nil
	}
	cust, _ := v.(*domain.Customer)
	return cust
}

func (h *handlers) profile(c *gin.Context) {
	c.JSON(http.StatusOK, currentCustomer(c))
}

func (h *handlers) updateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	cust := currentCustomer(c)
	updated, err := h.deps.CustomerSvc.UpdateProfile(c.Request.Context(), cust.ID, customerrepo.UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handlers) listCustomers(c *gin.Context) {
	customers, err := h.deps.CustomerSvc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
