package service

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Publisher рассылает событие подключенным клиентам. Ошибки доставки не возвращаются.
type Publisher interface {
	Publish(ctx context.Context, name domain.EventName, payload any)
}

// CatalogCache кеш публичного каталога. Промах и сбой кеша неотличимы.
// Get возвращает версию кеша и при промахе, Set пишет снимок только под этой версией:
// Invalidate между чтением базы и Set делает такой снимок невидимым.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.Product, int64, bool)
	Set(ctx context.Context, version int64, products []domain.Product)
	Invalidate(ctx context.Context)
}

type PhoneNormalizer interface {
	Normalize(raw string) (string, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type DealerRepository interface {
	Create(ctx context.Context, args repoargs.CreateDealer) (*domain.Dealer, error)
	FindByID(ctx context.Context, id int64) (*domain.Dealer, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Dealer, error)
	FindActiveByPhone(ctx context.Context, phone string) (*domain.Dealer, error)
	List(ctx context.Context) ([]domain.Dealer, error)
	ApplyBalanceDelta(ctx context.Context, id int64, delta decimal.Decimal) (*domain.Dealer, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Dealer, error)
}

type LedgerEntryRepository interface {
	Create(ctx context.Context, args repoargs.CreateLedgerEntry) (*domain.LedgerEntry, error)
	ListByDealerID(ctx context.Context, dealerID int64) ([]domain.LedgerEntry, error)
	ListByDealerIDs(ctx context.Context, dealerIDs []int64) (map[int64][]domain.LedgerEntry, error)
}

type ProductRepository interface {
	Create(ctx context.Context, args repoargs.CreateProduct) (*domain.Product, error)
	Update(ctx context.Context, id int64, args repoargs.SaveProduct) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	DecrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
	IncrementStock(ctx context.Context, id, quantity int64) (*domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	ExistsByOrderCode(ctx context.Context, orderCode string) (bool, error)
	FindByOrderCode(ctx context.Context, orderCode string) (*domain.Order, error)
	FindByOrderCodeForUpdate(ctx context.Context, orderCode string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, args repoargs.CreateApplication) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Application, error)
	List(ctx context.Context) ([]domain.Application, error)
	Update(ctx context.Context, args repoargs.UpdateApplication) (*domain.Application, error)
}
