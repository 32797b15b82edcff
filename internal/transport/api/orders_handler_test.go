package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/middlewares"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	handlerSuite
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func placedOrder() *domain.Order {
	productID := int64(1)
	return &domain.Order{
		ID:            1,
		OrderCode:     "ORD-261016-ABCDE",
		CustomerName:  "Ramesh",
		CustomerPhone: "+919876543210",
		Items: []domain.OrderItem{
			{ProductID: &productID, Size: "1L", Quantity: 12, UnitPrice: decimal.NewFromInt(180)},
		},
		TotalAmount:   decimal.NewFromInt(2160),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func (s *OrderHandlerTestSuite) TestCreate() {
	s.mockOrderService.EXPECT().
		PlaceOrder(gomock.Any(), service.PlaceOrderArgs{
			CustomerName:  "Ramesh",
			CustomerPhone: "9876543210",
			Items:         []service.OrderLine{{ProductID: 1, Quantity: 12}},
			PaymentStatus: domain.PaymentUnpaid,
		}).
		Return(placedOrder(), nil)

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, PlaceOrderParams{
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
		Items:         []OrderItemParams{{ProductID: 1, Quantity: 12}},
	})
	s.Equal(http.StatusCreated, res.StatusCode)

	var body struct {
		OrderID     string `json:"orderId"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Equal("ORD-261016-ABCDE", body.OrderID)
	s.True(strings.HasPrefix(body.WhatsAppURL, "https://wa.me/919800000000?text="))
}

// Без токена dealerId и paymentStatus из запроса до сервиса не доходят.
func (s *OrderHandlerTestSuite) TestCreateGuestCannotChooseDealerOrPayment() {
	s.mockOrderService.EXPECT().
		PlaceOrder(gomock.Any(), service.PlaceOrderArgs{
			CustomerName:  "Ramesh",
			CustomerPhone: "9876543210",
			Items:         []service.OrderLine{{ProductID: 1, Quantity: 12}},
			PaymentStatus: domain.PaymentUnpaid,
		}).
		Return(placedOrder(), nil)

	dealerID := int64(7)
	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, PlaceOrderParams{
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
		DealerID:      &dealerID,
		Items:         []OrderItemParams{{ProductID: 1, Quantity: 12}},
		PaymentStatus: domain.PaymentPaid,
	})
	res.Body.Close()
	s.Equal(http.StatusCreated, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestCreateAdminChoosesDealerAndPayment() {
	dealerID := int64(7)
	s.mockOrderService.EXPECT().
		PlaceOrder(gomock.Any(), service.PlaceOrderArgs{
			CustomerName:  "Ramesh",
			CustomerPhone: "9876543210",
			DealerID:      &dealerID,
			Items:         []service.OrderLine{{ProductID: 1, Quantity: 12}},
			PaymentStatus: domain.PaymentPaid,
		}).
		Return(placedOrder(), nil)

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, PlaceOrderParams{
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
		DealerID:      &dealerID,
		Items:         []OrderItemParams{{ProductID: 1, Quantity: 12}},
		PaymentStatus: domain.PaymentPaid,
	}, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusCreated, res.StatusCode)

	// недействительный токен не понижается до гостя.
	res = s.request(http.MethodPost, RouteGroup+OrdersRoute, PlaceOrderParams{
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
		Items:         []OrderItemParams{{ProductID: 1, Quantity: 12}},
	}, testutils.WithBearer("nope"))
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *OrderHandlerTestSuite) TestCreateValidation() {
	// сервис не вызывается.
	cases := []struct {
		name       string
		payload    any
		wantStatus int
	}{
		{
			name: "bad phone",
			payload: PlaceOrderParams{CustomerName: "Ramesh", CustomerPhone: "12",
				Items: []OrderItemParams{{ProductID: 1, Quantity: 1}}},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "no items",
			payload:    PlaceOrderParams{CustomerName: "Ramesh", CustomerPhone: "9876543210"},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name: "zero quantity",
			payload: PlaceOrderParams{CustomerName: "Ramesh", CustomerPhone: "9876543210",
				Items: []OrderItemParams{{ProductID: 1}}},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name: "quantity over limit",
			payload: PlaceOrderParams{CustomerName: "Ramesh", CustomerPhone: "9876543210",
				Items: []OrderItemParams{{ProductID: 1, Quantity: service.MaxLineQuantity + 1}}},
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "not json",
			payload:    "[]",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodPost, RouteGroup+OrdersRoute, t.payload)
			defer res.Body.Close()
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestCreateInsufficientStock() {
	s.mockOrderService.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewInsufficientStockError(
			domain.StockShortage{ProductID: 1, Size: "1L", Requested: 12, Available: 5},
		))

	res := s.request(http.MethodPost, RouteGroup+OrdersRoute, PlaceOrderParams{
		CustomerName:  "Ramesh",
		CustomerPhone: "9876543210",
		Items:         []OrderItemParams{{ProductID: 1, Quantity: 12}},
	})
	s.Equal(http.StatusConflict, res.StatusCode)

	var body middlewares.ErrorResponse
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Equal("insufficient stock for 1L", body.Error)
	s.Require().Len(body.Shortages, 1)
	s.Equal(int64(5), body.Shortages[0].Available)
}

func (s *OrderHandlerTestSuite) TestIndex() {
	s.mockOrderService.EXPECT().ListOrdersForPhone(gomock.Any(), "9876543210").
		Return([]domain.Order{*placedOrder()}, nil)
	s.mockOrderService.EXPECT().ListAllOrders(gomock.Any()).Return(nil, nil)

	cases := []struct {
		name       string
		url        string
		opts       []func(*testutils.RequestOptions)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public by phone",
			url:        RouteGroup + OrdersRoute + "?phone=9876543210",
			wantStatus: http.StatusOK,
		}, {
			name:       "all orders without token",
			url:        RouteGroup + OrdersRoute,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "invalid token",
			url:        RouteGroup + OrdersRoute + "?phone=9876543210",
			opts:       []func(*testutils.RequestOptions){testutils.WithBearer("garbage")},
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "all orders for admin",
			url:        RouteGroup + OrdersRoute,
			opts:       []func(*testutils.RequestOptions){testutils.WithHeader(middlewares.AuthTokenHeader, s.adminToken)},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.request(http.MethodGet, t.url, nil, t.opts...)
			if t.wantBody != "" {
				var raw []domain.Order
				s.Require().NoError(testutils.DecodeJSON(res, &raw))
				s.NotNil(raw)
				s.Empty(raw)
			} else {
				defer res.Body.Close()
			}
			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	dispatched := domain.OrderStatusDispatched
	updated := placedOrder()
	updated.Status = dispatched

	s.mockOrderService.EXPECT().
		UpdateOrderStatus(gomock.Any(), service.UpdateOrderStatusArgs{OrderCode: "ORD-261016-ABCDE", Status: &dispatched}).
		Return(updated, nil)
	s.mockOrderService.EXPECT().
		UpdateOrderStatus(gomock.Any(), service.UpdateOrderStatusArgs{OrderCode: "ORD-000000-NONE1", Status: &dispatched}).
		Return(nil, domain.ErrRecordNotFound)

	payload := UpdateOrderParams{Status: &dispatched}

	res := s.request(http.MethodPut, RouteGroup+"/orders/ORD-261016-ABCDE", payload, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPut, RouteGroup+"/orders/ORD-000000-NONE1", payload, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusNotFound, res.StatusCode)

	// без токена сервис не вызывается.
	res = s.request(http.MethodPut, RouteGroup+"/orders/ORD-261016-ABCDE", payload)
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
