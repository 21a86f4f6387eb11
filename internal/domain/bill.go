package domain

// Bill is an append-only log entry derived from a booking. TotalAmount is
// the service price plus the cart snapshot subtotal at booking time;
// CreatedAt is a human-readable date, not a timestamp.
type Bill struct {
	BookingID     int64      `json:"bookingId"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	ServiceName   string     `json:"serviceName"`
	ServicePrice  int64      `json:"servicePrice"`
	Items         []CartLine `json:"items"`
	TotalAmount   int64      `json:"totalAmount"`
	CreatedAt     string     `json:"createdAt"`
}
