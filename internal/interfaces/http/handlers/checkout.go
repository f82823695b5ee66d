// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/WebDevchicka/Petal-Pine/internal/config"
	"github.com/WebDevchicka/Petal-Pine/internal/domain/checkout"
	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	confirmation, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			// a benign notice, not a failure; the cart is untouched
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Your cart is empty.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": confirmation.Message,
		"data":    confirmation,
	})
}
