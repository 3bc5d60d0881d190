package handler

import (
	"bytes"
	"net/http"
	"net/url"
	"testing"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/infra/qrcode"
	mockService "backoffice/internal/mocks/service"
	"backoffice/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveryHandler(f *fixture, publisher service.EventPublisher) *DeliveryHandler {
	return NewDeliveryHandler(DeliveryHandlerParams{
		DeliveryUC: impl.NewDeliveryService(f.factory, publisher, qrcode.NewQRCodeService(128, "M"), discardLogger()),
	})
}

func deliveryOrders() []entity.Order {
	return []entity.Order{
		{ID: 1, User: 7, Status: entity.OrderProcessing},
		{ID: 2, User: 8, Status: entity.OrderCompleted},
		{ID: 3, User: 9, Status: entity.OrderPending},
	}
}

func TestDeliveryHandler_BoardSearch(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().ListOrders(mock.Anything).Return(deliveryOrders(), nil)

	c, rec := f.get(t, "/delivery-status?q=TRK0000002")
	require.NoError(t, newDeliveryHandler(f, mockService.NewMockEventPublisher(t)).Board(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	view := f.renderer.page.Data.(DeliveryView)
	require.Len(t, view.Board.Deliveries, 1)
	assert.Equal(t, int64(2), view.Board.Deliveries[0].OrderID)
	assert.Equal(t, 1, view.Board.Counts[entity.DeliveryInTransit])
	assert.Equal(t, 1, view.Board.Counts[entity.DeliveryDelivered])
}

func TestDeliveryHandler_ToggleRedirectsBackToSearch(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().ListOrders(mock.Anything).Return(deliveryOrders(), nil)
	f.api.EXPECT().UpdateOrderStatus(mock.Anything, int64(2), entity.OrderProcessing).Return(nil)

	c, rec := f.postForm(t, "/delivery-status/2/toggle", url.Values{"q": {"ORD-2"}})
	withID(c, "2")
	require.NoError(t, newDeliveryHandler(f, mockService.NewMockEventPublisher(t)).Toggle(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/delivery-status?q=ORD-2", rec.Header().Get("Location"))
}

func TestDeliveryHandler_NotifyPublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().ListOrders(mock.Anything).Return(deliveryOrders(), nil)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishDeliveryEvent(mock.Anything, mock.MatchedBy(func(e *service.DeliveryEvent) bool {
		return e.OrderID == 1 && e.CustomerID == 7 && e.Status == string(entity.DeliveryInTransit)
	})).Return(nil)

	c, rec := f.postForm(t, "/delivery-status/1/notify", url.Values{})
	withID(c, "1")
	require.NoError(t, newDeliveryHandler(f, publisher).Notify(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, deliveryPath, rec.Header().Get("Location"))
}

func TestDeliveryHandler_Label(t *testing.T) {
	f := newFixture(t)
	f.api.EXPECT().ListOrders(mock.Anything).Return(deliveryOrders(), nil)

	c, rec := f.get(t, "/delivery-status/3/label.png")
	withID(c, "3")
	require.NoError(t, newDeliveryHandler(f, mockService.NewMockEventPublisher(t)).Label(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}
