package entity

import "time"

// Currency is the store default currency.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
)

// Currencies lists selectable currencies.
var Currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY}

// GeneralSettings is the "General" tab.
type GeneralSettings struct {
	StoreName       string   `json:"store_name" form:"store_name" validate:"required,max=120"`
	StoreURL        string   `json:"store_url" form:"store_url" validate:"omitempty,url"`
	Description     string   `json:"description" form:"description" validate:"max=2000"`
	Currency        Currency `json:"currency" form:"currency" validate:"required,oneof=USD EUR GBP JPY"`
	MaintenanceMode bool     `json:"maintenance_mode" form:"maintenance_mode"`
}

// CompanySettings is the "Company" tab.
type CompanySettings struct {
	Name         string `json:"name" form:"company_name" validate:"required,max=120"`
	TaxID        string `json:"tax_id" form:"tax_id" validate:"max=64"`
	Address      string `json:"address" form:"address" validate:"max=500"`
	ContactEmail string `json:"contact_email" form:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" form:"contact_phone" validate:"max=32"`
}

// NotificationSettings is the "Notifications" tab.
type NotificationSettings struct {
	NewOrders       bool `json:"new_orders" form:"new_orders"`
	LowStock        bool `json:"low_stock" form:"low_stock"`
	CustomerReviews bool `json:"customer_reviews" form:"customer_reviews"`
	MarketingUpdate bool `json:"marketing_updates" form:"marketing_updates"`
}

// Settings groups the three tabs.
type Settings struct {
	General       GeneralSettings      `json:"general"`
	Company       CompanySettings      `json:"company"`
	Notifications NotificationSettings `json:"notifications"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// DefaultSettings is shown before anything has been saved.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			StoreName:   "E-Shop Store",
			StoreURL:    "https://example.com",
			Description: "Your premium e-commerce destination for all your shopping needs.",
			Currency:    CurrencyUSD,
		},
		Company: CompanySettings{
			Name:         "E-Shop Inc.",
			ContactEmail: "support@example.com",
		},
		Notifications: NotificationSettings{
			NewOrders:       true,
			LowStock:        true,
			CustomerReviews: true,
		},
	}
}
