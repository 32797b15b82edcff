package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/handoff"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs OrderServicer
	whatsApp *handoff.WhatsApp
}

func NewOrdersHandler(orderSvs OrderServicer, whatsApp *handoff.WhatsApp) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
		whatsApp: whatsApp,
	}
}

type OrderItemParams struct {
	ProductID int64 `binding:"required,gt=0"        json:"productId"`
	Quantity  int64 `binding:"required,gt=0,max=10000" json:"quantity"`
}

// PlaceOrderParams dealerId и paymentStatus учитываются только для администратора.
type PlaceOrderParams struct {
	CustomerName  string               `binding:"required,max=100"         json:"customerName"`
	CustomerPhone string               `binding:"required,phone"           json:"customerPhone"`
	DealerID      *int64               `binding:"omitempty,gt=0"           json:"dealerId"`
	Items         []OrderItemParams    `binding:"required,min=1,max=50,dive" json:"items"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

type PlacedOrderResponse struct {
	*domain.Order
	// WhatsAppURL ссылка для подтверждения заказа в WhatsApp, пустая если номер магазина не задан.
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// Create POST RouteGroup + OrdersRoute. Публичное оформление заказа. Заказ с витрины всегда
// Unpaid, а дилер находится только по телефону покупателя.
func (o *OrdersHandler) Create(c *gin.Context) {
	var params PlaceOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if !middlewares.IsAdmin(c) {
		params.DealerID = nil
		params.PaymentStatus = domain.PaymentUnpaid
	}

	items := make([]service.OrderLine, len(params.Items))
	for i, item := range params.Items {
		items[i] = service.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.PlaceOrder(reqCtx, service.PlaceOrderArgs{
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		DealerID:      params.DealerID,
		Items:         items,
		PaymentStatus: params.PaymentStatus,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PlacedOrderResponse{Order: order, WhatsAppURL: o.whatsApp.OrderURL(order)})
}

// Index GET RouteGroup + OrdersRoute. С параметром phone отдает заказы покупателя всем,
// без него - все заказы и только администратору.
func (o *OrdersHandler) Index(c *gin.Context) {
	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" && !middlewares.IsAdmin(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, middlewares.ErrorResponse{Error: "unauthorized"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	var orders []domain.Order
	var err error
	if phone != "" {
		orders, err = o.orderSvs.ListOrdersForPhone(reqCtx, phone)
	} else {
		orders, err = o.orderSvs.ListAllOrders(reqCtx)
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(orders))
}

// Show GET RouteGroup + OrderRoute, id - номер заказа вида ORD-....
func (o *OrdersHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.GetOrder(reqCtx, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateOrderParams struct {
	Status        *domain.OrderStatus   `json:"status"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus"`
}

// UpdateStatus PUT RouteGroup + OrderRoute.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	var params UpdateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.UpdateOrderStatus(reqCtx, service.UpdateOrderStatusArgs{
		OrderCode:     c.Param("id"),
		Status:        params.Status,
		PaymentStatus: params.PaymentStatus,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
