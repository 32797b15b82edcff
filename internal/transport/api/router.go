package api

import (
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/handoff"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/fsdevblog/jalsa-khata/internal/phone"
	"github.com/fsdevblog/jalsa-khata/internal/realtime"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/middlewares"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup        = "/api"
	LoginRoute        = "/auth/login"
	ProductsRoute     = "/products"
	ProductRoute      = "/products/:id"
	RestockRoute      = "/products/:id/restock"
	OrdersRoute       = "/orders"
	OrderRoute        = "/orders/:id"
	DealersRoute      = "/dealers"
	DealerRoute       = "/dealers/:id"
	TransactionRoute  = "/dealers/:id/transaction"
	DealerActiveRoute = "/dealers/:id/active"
	BalanceRoute      = "/dealers/:id/balance"
	StatementRoute    = "/dealers/:id/statement.xlsx"
	ApplicationsRoute = "/applications"
	ApplicationRoute  = "/applications/:id"
	EventsRoute       = "/events"
	AdminEventsRoute  = "/admin/events"
	MetricsRoute      = "/metrics"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	LedgerService      LedgerServicer
	OrderService       OrderServicer
	ProductService     ProductServicer
	ApplicationService ApplicationServicer
	Hub                *realtime.Hub
	WhatsApp           *handoff.WhatsApp
	Phones             *phone.Normalizer
	Metrics            *metrics.ShopMetrics
	// Gatherer источник для /metrics. Если nil, маршрут не регистрируется.
	Gatherer       prometheus.Gatherer
	JWTSecretKey   []byte
	AllowedOrigins []string
	// Heartbeat интервал комментариев в SSE потоке.
	Heartbeat time.Duration
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(args.Phones); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics(args.Metrics))
	r.Use(cors.New(corsConfig(args.AllowedOrigins)))
	r.Use(middlewares.Errors())

	if args.Gatherer != nil {
		r.GET(MetricsRoute, gin.WrapH(promhttp.HandlerFor(args.Gatherer, promhttp.HandlerOpts{})))
	}

	authHandler := NewAuthHandler(args.UserService)
	productsHandler := NewProductsHandler(args.ProductService)
	ordersHandler := NewOrdersHandler(args.OrderService, args.WhatsApp)
	dealersHandler := NewDealersHandler(args.LedgerService)
	applicationsHandler := NewApplicationsHandler(args.ApplicationService)
	eventsHandler := NewEventsHandler(args.Hub, args.Heartbeat)

	api := r.Group(RouteGroup)

	// публичная часть витрины.
	api.POST(LoginRoute, authHandler.Login)
	api.GET(ProductsRoute, middlewares.AuthOptional(args.JWTSecretKey), productsHandler.Index)
	api.GET(ProductRoute, middlewares.AuthOptional(args.JWTSecretKey), productsHandler.Show)
	// без токена статус оплаты и дилер определяются сервером.
	api.POST(OrdersRoute, middlewares.AuthOptional(args.JWTSecretKey), ordersHandler.Create)
	// без токена отдает только заказы по ?phone=.
	api.GET(OrdersRoute, middlewares.AuthOptional(args.JWTSecretKey), ordersHandler.Index)
	api.POST(ApplicationsRoute, applicationsHandler.Create)
	api.GET(EventsRoute, eventsHandler.Public)

	admin := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют токен администратора.
	admin.POST(ProductsRoute, productsHandler.Create)
	admin.PUT(ProductRoute, productsHandler.Update)
	admin.POST(RestockRoute, productsHandler.Restock)
	admin.DELETE(ProductRoute, productsHandler.Delete)

	admin.GET(OrderRoute, ordersHandler.Show)
	admin.PUT(OrderRoute, ordersHandler.UpdateStatus)

	admin.GET(DealersRoute, dealersHandler.Index)
	admin.POST(DealersRoute, dealersHandler.Create)
	admin.GET(DealerRoute, dealersHandler.Show)
	admin.PUT(TransactionRoute, dealersHandler.PostTransaction)
	admin.PUT(DealerActiveRoute, dealersHandler.SetActive)
	admin.GET(BalanceRoute, dealersHandler.Balance)
	admin.GET(StatementRoute, dealersHandler.Statement)

	admin.GET(ApplicationsRoute, applicationsHandler.Index)
	admin.PUT(ApplicationRoute, applicationsHandler.UpdateStatus)

	admin.GET(AdminEventsRoute, eventsHandler.Admin)
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middlewares.AuthTokenHeader)
	cfg.ExposeHeaders = []string{"Authorization", middlewares.RequestIDHeader}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
