package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vishnu-auto/internal/booking"
	"vishnu-auto/internal/catalog"
	"vishnu-auto/internal/domain"
	"vishnu-auto/internal/notify"

	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCatalogSvc struct {
	products  []domain.Product
	packages  []domain.ServicePackage
	addErr    error
	updateErr error
	deleteErr error
}

func (s *stubCatalogSvc) Products() []domain.Product        { return s.products }
func (s *stubCatalogSvc) Packages() []domain.ServicePackage { return s.packages }

func (s *stubCatalogSvc) AddProduct(_ context.Context, in catalog.ProductInput) (*domain.Product, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &domain.Product{ID: 10, Name: in.Name, Price: in.Price}, nil
}

func (s *stubCatalogSvc) UpdateProduct(_ context.Context, id int64, _ catalog.UpdateInput) (*domain.Product, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &domain.Product{ID: id}, nil
}

func (s *stubCatalogSvc) DeleteProduct(_ context.Context, _ int64) error {
	return s.deleteErr
}

type stubCartSvc struct {
	lines  []domain.CartLine
	addErr error
}

func (s *stubCartSvc) Add(_ context.Context, _ int64, _ int) error { return s.addErr }
func (s *stubCartSvc) Remove(_ context.Context, _ int64) error     { return nil }
func (s *stubCartSvc) Clear(_ context.Context) error               { return nil }
func (s *stubCartSvc) Lines() []domain.CartLine                    { return s.lines }
func (s *stubCartSvc) Total() int64                                { return domain.LinesSubtotal(s.lines) }

func (s *stubCartSvc) ItemCount() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

type stubBookingSvc struct {
	created   *domain.Booking
	link      string
	bookErr   error
	statusErr error
}

func (s *stubBookingSvc) Book(_ context.Context, _ int64, _ booking.CustomerInput) (*domain.Booking, string, error) {
	return s.created, s.link, s.bookErr
}

func (s *stubBookingSvc) UpdateStatus(_ context.Context, _ int64, _ domain.BookingStatus) error {
	return s.statusErr
}

func (s *stubBookingSvc) Bookings() []domain.Booking { return nil }

type stubBillingSvc struct {
	bill *domain.Bill
	err  error
}

func (s *stubBillingSvc) Bills() []domain.Bill {
	if s.bill == nil {
		return nil
	}
	return []domain.Bill{*s.bill}
}

func (s *stubBillingSvc) ByBookingID(_ int64) (*domain.Bill, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bill, nil
}

type stubAuthSvc struct {
	session  *domain.Session
	loginErr error
}

func (s *stubAuthSvc) Login(_ context.Context, _, _ string, _ domain.Role) (*domain.Session, error) {
	return s.session, s.loginErr
}

func (s *stubAuthSvc) Logout(_ context.Context) error { return nil }
func (s *stubAuthSvc) Current() *domain.Session       { return s.session }

type stubFeed struct {
	entries []notify.Notification
}

func (s *stubFeed) Active() []notify.Notification { return s.entries }

func testDeps() Deps {
	return Deps{
		Catalog:       &stubCatalogSvc{},
		Cart:          &stubCartSvc{},
		Booking:       &stubBookingSvc{},
		Billing:       &stubBillingSvc{},
		Auth:          &stubAuthSvc{},
		Notifications: &stubFeed{},
		ShopName:      "Vishnu Auto",
	}
}

func testRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	deps := testDeps()
	deps.Catalog = &stubCatalogSvc{products: []domain.Product{{ID: 1, Name: "Engine Oil - Premium", Price: 450}}}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Engine Oil - Premium"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddProductForbidden(t *testing.T) {
	deps := testDeps()
	deps.Catalog = &stubCatalogSvc{addErr: domain.ErrUnauthorized}
	router := testRouter(t, deps)

	body := `{"name":"Chain Lube","price":250}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddProductCreated(t *testing.T) {
	router := testRouter(t, testDeps())

	body := `{"name":"Chain Lube","price":250}`
	req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"Chain Lube"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateProductBadID(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodPatch, "/products/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddCartItemNotFound(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{addErr: domain.ErrNotFound}
	router := testRouter(t, deps)

	body := `{"productId":999,"quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGetCart(t *testing.T) {
	deps := testDeps()
	deps.Cart = &stubCartSvc{lines: []domain.CartLine{{ProductID: 1, Name: "Brake Pads", Price: 280, Quantity: 2}}}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":560`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"itemCount":2`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	deps := testDeps()
	deps.Booking = &stubBookingSvc{bookErr: domain.ErrNotFound}
	router := testRouter(t, deps)

	body := `{"packageId":999,"name":"Ravi","phone":"9876543210","date":"2026-09-01","time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCreateBooking(t *testing.T) {
	deps := testDeps()
	deps.Booking = &stubBookingSvc{
		created: &domain.Booking{ID: 101, Status: domain.StatusPending, TotalPrice: 500},
		link:    "https://wa.me/919876543210?text=hello",
	}
	router := testRouter(t, deps)

	body := `{"packageId":1,"name":"Ravi","phone":"9876543210","date":"2026-09-01","time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"whatsappUrl"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestUpdateBookingStatusForbidden(t *testing.T) {
	deps := testDeps()
	deps.Booking = &stubBookingSvc{statusErr: domain.ErrUnauthorized}
	router := testRouter(t, deps)

	body := `{"status":"confirmed"}`
	req := httptest.NewRequest(http.MethodPatch, "/bookings/101/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestPrintBill(t *testing.T) {
	deps := testDeps()
	deps.Billing = &stubBillingSvc{bill: &domain.Bill{
		BookingID:    101,
		CustomerName: "Ravi Kumar",
		ServiceName:  "Basic Service",
		ServicePrice: 500,
		TotalAmount:  950,
	}}
	router := testRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/bills/101/print", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html, got %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "Total Amount: Rs.950") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	deps := testDeps()
	deps.Auth = &stubAuthSvc{loginErr: domain.ErrInvalidCredentials}
	router := testRouter(t, deps)

	body := `{"username":"admin","password":"wrong","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLoginRedirectsByRole(t *testing.T) {
	deps := testDeps()
	deps.Auth = &stubAuthSvc{session: &domain.Session{
		Username:    "admin",
		Role:        domain.RoleAdmin,
		Permissions: []domain.Permission{domain.PermRead, domain.PermWrite, domain.PermDelete},
	}}
	router := testRouter(t, deps)

	body := `{"username":"admin","password":"admin123","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"redirect":"admin-dashboard.html"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSessionWhenLoggedOut(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"session":null`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected a request id header")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "fixed-id" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
