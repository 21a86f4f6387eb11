package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines":     h.deps.Cart.Lines(),
		"total":     h.deps.Cart.Total(),
		"itemCount": h.deps.Cart.ItemCount(),
	})
}

func (h *handlers) addCartItem(c *gin.Context) {
	var in addCartItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.deps.Cart.Add(c.Request.Context(), in.ProductID, in.Quantity); err != nil {
		respondError(c, err)
		return
	}
	h.getCart(c)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, ok := pathID(c, "productId")
	if !ok {
		return
	}
	if err := h.deps.Cart.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.getCart(c)
}

func (h *handlers) clearCart(c *gin.Context) {
	if err := h.deps.Cart.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
