package impl

import (
	"context"
	"log/slog"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"
)

type orderService struct {
	apis     service.AdminAPIFactory
	pageSize int
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(apis service.AdminAPIFactory, cfg *config.Config, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		apis:     apis,
		pageSize: cfg.Pagination.PageSize,
		logger:   logger,
	}
}

func (srv *orderService) List(ctx context.Context, tokens service.TokenStore, query entity.OrderQuery) (*usecase.OrderList, error) {
	orders, err := srv.apis.Open(tokens).ListOrders(ctx)
	if err != nil {
		return nil, remoteError(err, "list orders")
	}

	return srv.page(query, orders), nil
}

// UpdateStatus sends the new status and reconciles it into the fetched list
// without reloading, so only the matching order changes.
func (srv *orderService) UpdateStatus(
	ctx context.Context,
	tokens service.TokenStore,
	query entity.OrderQuery,
	id int64,
	status entity.OrderStatus,
) (*usecase.OrderList, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status: unknown order status " + string(status))
	}

	api := srv.apis.Open(tokens)

	orders, err := api.ListOrders(ctx)
	if err != nil {
		return nil, remoteError(err, "list orders")
	}
	if _, ok := entity.FindOrder(orders, id); !ok {
		return nil, errors.Wrapf(domainerrors.ErrNotFound, "order %d", id)
	}

	if err := api.UpdateOrderStatus(ctx, id, status); err != nil {
		return nil, remoteError(err, "update order status")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Order status updated",
		slog.Int64("order_id", id),
		slog.String("status", string(status)),
	)

	return srv.page(query, entity.ApplyOrderStatus(orders, id, status)), nil
}

func (srv *orderService) Customer(ctx context.Context, tokens service.TokenStore, customerID int64) (*entity.Customer, error) {
	customer, err := srv.apis.Open(tokens).GetCustomer(ctx, customerID)
	if err != nil {
		return nil, remoteError(err, "get customer")
	}

	return customer, nil
}

func (srv *orderService) page(query entity.OrderQuery, orders []entity.Order) *usecase.OrderList {
	matched := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if query.Matches(o) {
			matched = append(matched, o)
		}
	}

	page := util.Paginate(matched, srv.pageSize, query.Page)
	query.Page = page.Page

	return &usecase.OrderList{Query: query, Page: page}
}
