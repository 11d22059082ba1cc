package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply/internal/domain"
)

// respondError translates domain and payment errors into their HTTP status
// and a {"detail": ...} body. Unknown errors become an opaque 500.
func (h *handlers) respondError(c *gin.Context, err error) {
	var payErr *domain.PaymentError
	if errors.As(err, &payErr) {
		c.JSON(paymentStatus(payErr.Kind), gin.H{"detail": payErr.Detail})
		return
	}

	switch {
	case errors.Is(err, domain.ErrProductNotExist),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrCartEmpty),
		errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
	default:
		h.logger.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

func paymentStatus(kind domain.PaymentErrorKind) int {
	switch kind {
	case domain.PaymentErrCard:
		return http.StatusPaymentRequired
	case domain.PaymentErrRateLimit:
		return http.StatusTooManyRequests
	case domain.PaymentErrInvalidRequest:
		return http.StatusBadRequest
	case domain.PaymentErrAuthentication:
		return http.StatusBadGateway
	case domain.PaymentErrAPIConnection:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
}
