package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type LedgerServicer interface {
	PostTransaction(ctx context.Context, args service.PostTransactionArgs) (*domain.Dealer, error)
	GetDealer(ctx context.Context, id int64) (*domain.Dealer, error)
	ListDealers(ctx context.Context) ([]domain.Dealer, error)
	VerifyBalance(ctx context.Context, id int64) (*service.BalanceReport, error)
	CreateDealer(ctx context.Context, args service.CreateDealerArgs) (*domain.Dealer, error)
	SetDealerActive(ctx context.Context, id int64, active bool) (*domain.Dealer, error)
}

type OrderServicer interface {
	PlaceOrder(ctx context.Context, args service.PlaceOrderArgs) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, args service.UpdateOrderStatusArgs) (*domain.Order, error)
	GetOrder(ctx context.Context, orderCode string) (*domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	ListOrdersForPhone(ctx context.Context, rawPhone string) ([]domain.Order, error)
}

type ProductServicer interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, args service.ProductArgs, stock int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, args service.ProductArgs) (*domain.Product, error)
	Restock(ctx context.Context, id, quantity int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ApplicationServicer interface {
	Submit(ctx context.Context, args service.SubmitApplicationArgs) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	UpdateStatus(
		ctx context.Context,
		args service.UpdateApplicationArgs,
	) (*domain.Application, *domain.Dealer, error)
}
