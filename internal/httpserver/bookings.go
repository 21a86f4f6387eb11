package httpserver

import (
	"net/http"

	"vishnu-auto/internal/booking"
	"vishnu-auto/internal/domain"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	PackageID int64  `json:"packageId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) createBooking(c *gin.Context) {
	var in createBookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	created, whatsappURL, err := h.deps.Booking.Book(c.Request.Context(), in.PackageID, booking.CustomerInput{
		Name:  in.Name,
		Phone: in.Phone,
		Email: in.Email,
		Date:  in.Date,
		Time:  in.Time,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created, "whatsappUrl": whatsappURL})
}

func (h *handlers) listBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.deps.Booking.Bookings()})
}

func (h *handlers) updateBookingStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in updateStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := h.deps.Booking.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(in.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
