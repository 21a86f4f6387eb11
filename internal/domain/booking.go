package domain

import "time"

// BookingStatus is an open set; the admin UI can introduce new values
// without a schema change, so unknown strings pass through untouched.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID            int64         `json:"id"`
	PackageID     int64         `json:"packageId"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	CustomerEmail string        `json:"customerEmail"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
	TotalPrice    int64         `json:"totalPrice"`
	CartItems     []CartLine    `json:"cartItems"`
	CreatedAt     time.Time     `json:"createdAt"`
}
