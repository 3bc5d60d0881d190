package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

type deliveryService struct {
	apis      service.AdminAPIFactory
	publisher service.EventPublisher
	labels    service.QRCodeService
	logger    *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(
	apis service.AdminAPIFactory,
	publisher service.EventPublisher,
	labels service.QRCodeService,
	logger *slog.Logger,
) usecase.DeliveryUsecase {
	return &deliveryService{
		apis:      apis,
		publisher: publisher,
		labels:    labels,
		logger:    logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *deliveryService) Board(ctx context.Context, tokens service.TokenStore, search string) (*usecase.DeliveryBoard, error) {
	orders, err := srv.apis.Open(tokens).ListOrders(ctx)
	if err != nil {
		return nil, remoteError(err, "list orders")
	}

	board := &usecase.DeliveryBoard{
		Search:     search,
		Deliveries: make([]entity.Delivery, 0, len(orders)),
		Counts:     make(map[entity.DeliveryStatus]int, 4),
	}
	for _, o := range orders {
		d := entity.DeliveryFromOrder(o)
		board.Counts[d.Status]++
		if d.MatchesSearch(search) {
			board.Deliveries = append(board.Deliveries, d)
		}
	}

	return board, nil
}

func (srv *deliveryService) Toggle(ctx context.Context, tokens service.TokenStore, orderID int64) (*entity.Delivery, error) {
	api := srv.apis.Open(tokens)

	delivery, err := srv.find(ctx, api, orderID)
	if err != nil {
		return nil, err
	}

	status := delivery.ToggledOrderStatus()
	if err := api.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, remoteError(err, "update order status")
	}

	delivery.OrderStatus = status
	delivery.Status = entity.DeliveryStatusOf(status)

	srv.log(ctx).Info("Delivery toggled",
		slog.Int64("order_id", orderID),
		slog.String("status", string(delivery.Status)),
	)

	return &delivery, nil
}

func (srv *deliveryService) Notify(ctx context.Context, tokens service.TokenStore, orderID int64) error {
	delivery, err := srv.find(ctx, srv.apis.Open(tokens), orderID)
	if err != nil {
		return err
	}

	title, body := notificationText(delivery)
	event := &service.DeliveryEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventID:        uuid.NewString(),
		OrderID:        delivery.OrderID,
		CustomerID:     delivery.CustomerID,
		TrackingNumber: delivery.TrackingNumber,
		Status:         string(delivery.Status),
		Title:          title,
		Body:           body,
	}

	if err := srv.publisher.PublishDeliveryEvent(ctx, event); err != nil {
		return errors.Wrap(err, "publish delivery event")
	}

	srv.log(ctx).Info("Delivery notification published",
		slog.String("event_id", event.EventID),
		slog.Int64("order_id", orderID),
	)

	return nil
}

func (srv *deliveryService) Label(ctx context.Context, tokens service.TokenStore, orderID int64) ([]byte, error) {
	delivery, err := srv.find(ctx, srv.apis.Open(tokens), orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.labels.GenerateTrackingLabel(delivery)
	if err != nil {
		return nil, errors.Wrap(err, "generate tracking label")
	}

	return png, nil
}

func (srv *deliveryService) find(ctx context.Context, api service.AdminAPI, orderID int64) (entity.Delivery, error) {
	orders, err := api.ListOrders(ctx)
	if err != nil {
		return entity.Delivery{}, remoteError(err, "list orders")
	}

	order, ok := entity.FindOrder(orders, orderID)
	if !ok {
		return entity.Delivery{}, errors.Wrapf(domainerrors.ErrNotFound, "order %d", orderID)
	}

	return entity.DeliveryFromOrder(order), nil
}

func notificationText(d entity.Delivery) (title, body string) {
	switch d.Status {
	case entity.DeliveryInTransit:
		return "Your order is on its way", fmt.Sprintf("Order %s is in transit (%s).", d.OrderRef, d.TrackingNumber)
	case entity.DeliveryDelivered:
		return "Your order was delivered", fmt.Sprintf("Order %s has been delivered.", d.OrderRef)
	case entity.DeliveryFailed:
		return "Delivery cancelled", fmt.Sprintf("Order %s will not be delivered.", d.OrderRef)
	default:
		return "Order received", fmt.Sprintf("Order %s is being prepared.", d.OrderRef)
	}
}
