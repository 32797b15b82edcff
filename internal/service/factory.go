package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/fsdevblog/jalsa-khata/internal/service/psswd"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
)

type AppServices struct {
	UserService        *UserService
	LedgerService      *LedgerService
	OrderService       *OrderService
	ProductService     *ProductService
	ApplicationService *ApplicationService
}

type FactoryArgs struct {
	JWTSecret []byte
	JWTTTL    time.Duration
	Phones    PhoneNormalizer
	Publisher Publisher
	Catalog   CatalogCache
	Metrics   *metrics.ShopMetrics
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	userService, err := NewUserService(unitOfWork, args.JWTSecret, args.JWTTTL, psswd.PasswordHash(""))
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	ledgerService, err := NewLedgerService(unitOfWork, args.Phones, args.Publisher, args.Metrics)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	orderService, err := NewOrderService(
		unitOfWork, ledgerService, args.Phones, args.Publisher, args.Catalog, args.Metrics,
	)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	productService, err := NewProductService(unitOfWork, args.Catalog, args.Publisher)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	applicationService, err := NewApplicationService(unitOfWork, ledgerService, args.Phones, args.Publisher)
	if err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}

	return &AppServices{
		UserService:        userService,
		LedgerService:      ledgerService,
		OrderService:       orderService,
		ProductService:     productService,
		ApplicationService: applicationService,
	}, nil
}
