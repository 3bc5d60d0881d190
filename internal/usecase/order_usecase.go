package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/util"
)

// OrderList is one rendered page of the orders screen.
type OrderList struct {
	Query entity.OrderQuery
	Page  util.Page[entity.Order]
}

// OrderUsecase drives the orders screen.
type OrderUsecase interface {
	// List fetches the orders and applies the local search, status filter and paging.
	List(ctx context.Context, tokens service.TokenStore, query entity.OrderQuery) (*OrderList, error)

	// UpdateStatus changes one order remotely and returns the list with only
	// that order reconciled.
	UpdateStatus(ctx context.Context, tokens service.TokenStore, query entity.OrderQuery, id int64, status entity.OrderStatus) (*OrderList, error)

	// Customer loads the customer details dialog of an order.
	Customer(ctx context.Context, tokens service.TokenStore, customerID int64) (*entity.Customer, error)
}
