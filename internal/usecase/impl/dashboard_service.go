package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	recentOrdersShown = 4
	topProductsShown  = 4
)

type dashboardService struct {
	apis   service.AdminAPIFactory
	logger *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(apis service.AdminAPIFactory, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{apis: apis, logger: logger}
}

// Summary loads orders, products and customers concurrently and derives the figures.
func (srv *dashboardService) Summary(ctx context.Context, tokens service.TokenStore) (*entity.DashboardSummary, error) {
	api := srv.apis.Open(tokens)

	var (
		orders    []entity.Order
		products  []entity.Product
		customers []entity.Customer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = api.ListOrders(gctx)

		return remoteError(err, "list orders")
	})
	g.Go(func() error {
		var err error
		products, err = api.ListProducts(gctx, entity.ProductFilter{})

		return remoteError(err, "list products")
	})
	g.Go(func() error {
		var err error
		customers, err = api.ListCustomers(gctx)

		return remoteError(err, "list customers")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := summarize(orders, products, customers)

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard summary computed",
		slog.Int("orders", summary.TotalOrders),
		slog.Int("products", summary.Products),
		slog.Int("customers", summary.Customers),
	)

	return summary, nil
}

func summarize(orders []entity.Order, products []entity.Product, customers []entity.Customer) *entity.DashboardSummary {
	summary := &entity.DashboardSummary{
		TotalOrders: len(orders),
		Products:    len(products),
		Customers:   len(customers),
	}

	for _, o := range orders {
		switch o.Status {
		case entity.OrderCompleted:
			summary.TotalRevenue += o.Total
		case entity.OrderPending:
			summary.NewOrders++
		}
	}

	for _, p := range products {
		if p.Status == entity.ProductActive {
			summary.ActiveProducts++
		}
		if p.LowStock() {
			summary.LowStock++
		}
	}

	recent := slices.Clone(orders)
	slices.SortStableFunc(recent, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	summary.RecentOrders = recent[:min(recentOrdersShown, len(recent))]

	top := slices.Clone(products)
	slices.SortStableFunc(top, func(a, b entity.Product) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	summary.TopProducts = top[:min(topProductsShown, len(top))]

	return summary
}
