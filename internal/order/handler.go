package order

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamadino877/Al-Nile-Gourmet/internal/cart"
)

type Handler struct {
	engine *cart.Engine
	phone  string
}

// NewHandler wires the formatter to the cart engine. phone is the
// restaurant's WhatsApp number in international format without the plus.
func NewHandler(engine *cart.Engine, phone string) *Handler {
	return &Handler{engine: engine, phone: phone}
}

// --------------------------------------------------
// Checkout: format the order and hand off to WhatsApp
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	text, total, err := Format(h.engine.Lines())
	if errors.Is(err, ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      text,
		"total":        total.StringFixed(2),
		"whatsapp_url": WhatsAppLink(h.phone, text),
	})
}
