package httpserver

import (
	"context"
	"log"

	"vishnu-auto/internal/booking"
	"vishnu-auto/internal/catalog"
	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogService interface {
	Products() []domain.Product
	Packages() []domain.ServicePackage
	AddProduct(ctx context.Context, in catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, in catalog.UpdateInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CartService interface {
	Add(ctx context.Context, productID int64, quantity int) error
	Remove(ctx context.Context, productID int64) error
	Clear(ctx context.Context) error
	Lines() []domain.CartLine
	Total() int64
	ItemCount() int
}

type BookingService interface {
	Book(ctx context.Context, packageID int64, customer booking.CustomerInput) (*domain.Booking, string, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Bookings() []domain.Booking
}

type BillingService interface {
	Bills() []domain.Bill
	ByBookingID(bookingID int64) (*domain.Bill, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string, role domain.Role) (*domain.Session, error)
	Logout(ctx context.Context) error
	Current() *domain.Session
}

type NotificationFeed interface {
	Active() []notify.Notification
}

// Deps bundles the services the router needs.
type Deps struct {
	Catalog       CatalogService
	Cart          CartService
	Booking       BookingService
	Billing       BillingService
	Auth          AuthService
	Notifications NotificationFeed
	ShopName      string
	CORSOrigins   []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), requestID())

	corsCfg := cors.DefaultConfig()
	if len(deps.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = deps.CORSOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsMiddleware := cors.New(corsCfg)
	router.Use(corsMiddleware)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	router.GET("/products", h.listProducts)
	router.POST("/products", h.addProduct)
	router.PATCH("/products/:id", h.updateProduct)
	router.DELETE("/products/:id", h.deleteProduct)

	router.GET("/service-packages", h.listPackages)

	router.GET("/cart", h.getCart)
	router.POST("/cart/items", h.addCartItem)
	router.DELETE("/cart/items/:productId", h.removeCartItem)
	router.DELETE("/cart", h.clearCart)

	router.POST("/bookings", h.createBooking)
	router.GET("/bookings", h.listBookings)
	router.PATCH("/bookings/:id/status", h.updateBookingStatus)

	router.GET("/bills", h.listBills)
	router.GET("/bills/:bookingId/print", h.printBill)

	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
	router.GET("/session", h.session)

	router.GET("/notifications", h.notifications)

	return router, nil
}
