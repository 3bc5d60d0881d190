package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// AdminAPI is the typed surface of the back office HTTP API. Every call
// goes through the authenticated client bound to one TokenStore.
type AdminAPI interface {
	// Login exchanges credentials for a token pair and stores it when the
	// server returned both tokens.
	Login(ctx context.Context, creds entity.Credentials) (entity.TokenPair, error)

	Register(ctx context.Context, input entity.RegisterInput) error

	AddProduct(ctx context.Context, form entity.ProductForm) error
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, id int64, form entity.ProductForm) error
	DeleteProduct(ctx context.Context, id int64) error

	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	ListOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status entity.OrderStatus) error
}

// AdminAPIFactory binds the API to a session's token storage.
type AdminAPIFactory interface {
	Open(tokens TokenStore) AdminAPI
}
