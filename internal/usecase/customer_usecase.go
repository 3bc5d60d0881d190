package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/util"
)

// CustomerList is one rendered page of the customers screen.
type CustomerList struct {
	Query entity.CustomerQuery
	Page  util.Page[entity.Customer]
}

// CustomerUsecase drives the customers screen.
type CustomerUsecase interface {
	List(ctx context.Context, tokens service.TokenStore, query entity.CustomerQuery) (*CustomerList, error)

	// Register creates a customer account.
	Register(ctx context.Context, tokens service.TokenStore, input entity.RegisterInput) error
}
