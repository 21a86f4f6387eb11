package httpserver

import (
	"net/http"

	"vishnu-auto/internal/billing"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listBills(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bills": h.deps.Billing.Bills()})
}

// printBill serves the standalone printable bill document for a booking.
// The frontend opens it in a new window and triggers the print dialog.
func (h *handlers) printBill(c *gin.Context) {
	id, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	bill, err := h.deps.Billing.ByBookingID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := billing.RenderPrintable(h.deps.ShopName, *bill)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
