package notify

import (
	"fmt"
	"net/url"
	"strings"

	"vishnu-auto/internal/domain"
)

// WhatsAppLink builds the wa.me deep link carrying the booking summary. The
// link is opened by the customer in a new browser context; nothing is sent
// programmatically. The cart subtotal comes from the booking's snapshot, not
// the live cart, which is already empty by the time the link is built.
func WhatsAppLink(shopName, countryCode string, booking domain.Booking, pkg domain.ServicePackage) string {
	subtotal := domain.LinesSubtotal(booking.CartItems)
	total := pkg.Price + subtotal

	lines := []string{
		fmt.Sprintf("*%s - Service Booking Confirmation*", shopName),
		"",
		fmt.Sprintf("Customer: %s", booking.CustomerName),
		fmt.Sprintf("Phone: %s", booking.CustomerPhone),
		fmt.Sprintf("Date: %s", booking.Date),
		fmt.Sprintf("Time: %s", booking.Time),
		fmt.Sprintf("Service: %s", pkg.Name),
		fmt.Sprintf("Service Price: Rs.%d", pkg.Price),
		fmt.Sprintf("Additional Items: Rs.%d", subtotal),
		fmt.Sprintf("Total Amount: Rs.%d", total),
		"",
		fmt.Sprintf("Status: %s", strings.ToUpper(string(booking.Status))),
		fmt.Sprintf("Booking ID: #%d", booking.ID),
		"",
		fmt.Sprintf("Thank you for choosing %s!", shopName),
	}
	message := strings.Join(lines, "\n")

	return fmt.Sprintf("https://wa.me/%s%s?text=%s",
		countryCode, booking.CustomerPhone, url.QueryEscape(message))
}
