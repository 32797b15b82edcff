package pgrepo

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// PostgresTestSuite гоняет репозитории на живой базе. Запускается только с TEST_DATABASE_URI.
type PostgresTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *uow.UnitOfWork
}

func TestPostgresSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	pool, err := Connect(context.Background(), "../../db/migrations", os.Getenv("TEST_DATABASE_URI"), logrus.NewEntry(l))
	s.Require().NoError(err)
	s.pool = pool

	s.uow = uow.NewUnitOfWork(pool)
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.DealerRepoName), func(conn uow.DBTX) uow.Repository {
		return NewDealerRepository(conn)
	}))
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.LedgerEntryRepoName), func(conn uow.DBTX) uow.Repository {
		return NewLedgerEntryRepository(conn)
	}))
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.ProductRepoName), func(conn uow.DBTX) uow.Repository {
		return NewProductRepository(conn)
	}))
	s.Require().NoError(s.uow.Register(uow.RepositoryName(repoargs.OrderRepoName), func(conn uow.DBTX) uow.Repository {
		return NewOrderRepository(conn)
	}))
}

func (s *PostgresTestSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *PostgresTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		`TRUNCATE order_items, orders, ledger_entries, applications, dealers, products RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresTestSuite) createProduct(stock int64) *domain.Product {
	product, err := NewProductRepository(s.pool).Create(s.T().Context(), repoargs.CreateProduct{
		SaveProduct: repoargs.SaveProduct{
			Size:              "1 Litre",
			CrateSize:         12,
			PricePerCrate:     decimal.NewFromInt(120),
			LowStockThreshold: domain.DefaultLowStockThreshold,
		},
		Stock: stock,
	})
	s.Require().NoError(err)
	return product
}

func (s *PostgresTestSuite) TestConcurrentDecrementNeverOversells() {
	product := s.createProduct(5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded, rejected int

	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.uow.Do(context.Background(), func(ctx context.Context, tx uow.TX) error {
				repo, repoErr := uow.GetAs[*ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
				if repoErr != nil {
					return repoErr
				}
				_, decErr := repo.DecrementStock(ctx, product.ID, 1)
				return decErr
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrNotEnoughStock):
				rejected++
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}()
	}
	wg.Wait()

	s.Equal(5, succeeded)
	s.Equal(5, rejected)

	fresh, err := NewProductRepository(s.pool).FindByID(s.T().Context(), product.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), fresh.Stock)
}

func (s *PostgresTestSuite) TestBalanceMatchesLedger() {
	ctx := s.T().Context()
	dealer, err := NewDealerRepository(s.pool).Create(ctx, repoargs.CreateDealer{
		Name:     gofakeit.Name(),
		ShopName: gofakeit.Company(),
		Phone:    "+919876543210",
	})
	s.Require().NoError(err)

	post := func(amount int64, kind domain.EntryKind) error {
		return s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
			dealers, _ := uow.GetAs[*DealerRepository](tx, uow.RepositoryName(repoargs.DealerRepoName))
			entries, _ := uow.GetAs[*LedgerEntryRepository](tx, uow.RepositoryName(repoargs.LedgerEntryRepoName))
			if _, lockErr := dealers.FindByIDForUpdate(c, dealer.ID); lockErr != nil {
				return lockErr
			}
			amt := decimal.NewFromInt(amount)
			if _, balErr := dealers.ApplyBalanceDelta(c, dealer.ID, kind.Signed(amt)); balErr != nil {
				return balErr
			}
			_, entryErr := entries.Create(c, repoargs.CreateLedgerEntry{
				DealerID: dealer.ID, Amount: amt, Kind: kind, Description: "test",
			})
			return entryErr
		})
	}

	s.Require().NoError(post(500, domain.EntryDebit))
	s.Require().NoError(post(200, domain.EntryCredit))
	s.Require().ErrorIs(post(400, domain.EntryCredit), domain.ErrConflictingUpdate)

	fresh, err := NewDealerRepository(s.pool).FindByID(ctx, dealer.ID)
	s.Require().NoError(err)
	fresh.Transactions, err = NewLedgerEntryRepository(s.pool).ListByDealerID(ctx, dealer.ID)
	s.Require().NoError(err)

	s.True(fresh.Balance.Equal(decimal.NewFromInt(300)))
	s.Len(fresh.Transactions, 2)
	s.True(fresh.IsBalanceConsistent())
}

func (s *PostgresTestSuite) TestOrderItemsSurviveProductDelete() {
	ctx := s.T().Context()
	product := s.createProduct(10)
	orders := NewOrderRepository(s.pool)

	created, err := orders.Create(ctx, repoargs.CreateOrder{
		OrderCode:     "ORD-240131-7KQ2M",
		CustomerName:  gofakeit.Name(),
		CustomerPhone: "+919876543210",
		Items: []domain.OrderItem{
			{ProductID: &product.ID, Size: product.Size, Quantity: 2, UnitPrice: product.PricePerCrate},
		},
		TotalAmount:   decimal.NewFromInt(240),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	})
	s.Require().NoError(err)
	s.Len(created.Items, 1)

	s.Require().NoError(NewProductRepository(s.pool).Delete(ctx, product.ID))

	found, err := orders.FindByOrderCode(ctx, created.OrderCode)
	s.Require().NoError(err)
	s.Require().Len(found.Items, 1)
	s.Nil(found.Items[0].ProductID)
	s.Equal("1 Litre", found.Items[0].Size)

	byPhone, err := orders.ListByPhone(ctx, "+919876543210")
	s.Require().NoError(err)
	s.Len(byPhone, 1)
}
