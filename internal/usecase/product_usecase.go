package usecase

import (
	"context"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/util"
)

// ProductQuery is the products screen filter state. Filters are sent to the API.
type ProductQuery struct {
	Search   string               `query:"q"`
	Category entity.Category      `query:"category"`
	Status   entity.ProductStatus `query:"status"`
	Page     int                  `query:"page"`
}

// Filter converts the query to the API filter.
func (q ProductQuery) Filter() entity.ProductFilter {
	return entity.ProductFilter{
		Category: q.Category,
		Status:   q.Status,
		Name:     q.Search,
	}
}

// ProductList is one rendered page of the products screen.
type ProductList struct {
	Query ProductQuery
	Page  util.Page[entity.Product]
}

// ProductSubmission is a submitted product dialog. Media is rebuilt from
// the kept persisted media ids and the session's staged previews.
type ProductSubmission struct {
	Form         entity.ProductForm
	KeepMediaIDs []int64
	PreviewIDs   []string
}

// ProductUsecase drives the products screen and its dialog.
type ProductUsecase interface {
	List(ctx context.Context, tokens service.TokenStore, query ProductQuery) (*ProductList, error)

	// EditForm seeds the dialog from the product with the given id.
	EditForm(ctx context.Context, tokens service.TokenStore, id int64) (entity.ProductForm, error)

	// Save validates the form before any network call, then creates or
	// updates the product and releases the previews it consumed.
	Save(ctx context.Context, tokens service.TokenStore, owner string, submission ProductSubmission) error

	Delete(ctx context.Context, tokens service.TokenStore, id int64) error
}
