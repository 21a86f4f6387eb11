package catalog

import "vishnu-auto/internal/domain"

// Built-in catalog used when the store holds no data yet. Prices are whole
// rupees.
var defaultProducts = []domain.Product{
	{ID: 1, Name: "Engine Oil - Premium", Price: 450, Category: "Oil", Stock: 50, Description: "High-quality synthetic engine oil for all bike models"},
	{ID: 2, Name: "Brake Pads", Price: 280, Category: "Brakes", Stock: 30, Description: "Durable brake pads for superior stopping power"},
	{ID: 3, Name: "Air Filter", Price: 150, Category: "Filters", Stock: 75, Description: "Clean air filter for better engine performance"},
	{ID: 4, Name: "Chain Cleaner", Price: 200, Category: "Maintenance", Stock: 40, Description: "Professional chain cleaning solution"},
	{ID: 5, Name: "Spark Plug", Price: 120, Category: "Ignition", Stock: 60, Description: "High-performance spark plug for better ignition"},
	{ID: 6, Name: "Coolant", Price: 180, Category: "Cooling", Stock: 35, Description: "Premium coolant for optimal engine temperature"},
	{ID: 7, Name: "Professional Washing", Price: 200, Category: "Maintenance", Stock: 100, Description: "Complete exterior and interior cleaning service"},
	{ID: 8, Name: "Polishing & Waxing", Price: 350, Category: "Maintenance", Stock: 50, Description: "Restore shine and protect paint surface"},
	{ID: 9, Name: "Detailing Service", Price: 500, Category: "Maintenance", Stock: 25, Description: "Deep cleaning and restoration service"},
}

// DefaultProducts returns a copy of the built-in product list.
func DefaultProducts() []domain.Product {
	return append([]domain.Product(nil), defaultProducts...)
}

// DefaultPackages returns a copy of the built-in service packages.
func DefaultPackages() []domain.ServicePackage {
	return append([]domain.ServicePackage(nil), defaultPackages...)
}

var defaultPackages = []domain.ServicePackage{
	{ID: 1, Name: "Basic Service", Price: 500, Duration: "2 hours", Items: []string{"Oil Change", "Basic Inspection", "Chain Adjustment"}},
	{ID: 2, Name: "Standard Service", Price: 1200, Duration: "4 hours", Items: []string{"Oil Change", "Full Inspection", "Brake Check", "Tire Pressure"}},
	{ID: 3, Name: "Premium Service", Price: 2500, Duration: "6 hours", Items: []string{"Complete Service", "Engine Tuning", "Washing", "Polishing"}},
	{ID: 4, Name: "Express Service", Price: 350, Duration: "1 hour", Items: []string{"Quick Check", "Oil Top-up", "Basic Cleaning"}},
}
