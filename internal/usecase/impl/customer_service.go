package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/go-playground/validator/v10"
)

type customerService struct {
	apis     service.AdminAPIFactory
	validate *validator.Validate
	pageSize int
	logger   *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(apis service.AdminAPIFactory, cfg *config.Config, logger *slog.Logger) usecase.CustomerUsecase {
	return &customerService{
		apis:     apis,
		validate: newValidator(),
		pageSize: cfg.Pagination.PageSize,
		logger:   logger,
	}
}

func (srv *customerService) List(ctx context.Context, tokens service.TokenStore, query entity.CustomerQuery) (*usecase.CustomerList, error) {
	customers, err := srv.apis.Open(tokens).ListCustomers(ctx)
	if err != nil {
		return nil, remoteError(err, "list customers")
	}

	matched := make([]entity.Customer, 0, len(customers))
	for _, c := range customers {
		if query.Matches(c) {
			matched = append(matched, c)
		}
	}

	page := util.Paginate(matched, srv.pageSize, query.Page)
	query.Page = page.Page

	return &usecase.CustomerList{Query: query, Page: page}, nil
}

func (srv *customerService) Register(ctx context.Context, tokens service.TokenStore, input entity.RegisterInput) error {
	if err := validateInput(srv.validate, input); err != nil {
		return err
	}

	if err := srv.apis.Open(tokens).Register(ctx, input); err != nil {
		return remoteError(err, "register customer")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Customer registered", slog.String("email", input.Email))

	return nil
}
