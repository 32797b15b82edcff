package service

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/phone"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/internal/service/mocks"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	uowmocks "github.com/fsdevblog/jalsa-khata/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// serviceSuite общие моки uow и репозиториев. Репозитории отдаются и из uow, и из транзакции.
type serviceSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockUserRepo    *mocks.MockUserRepository
	mockDealerRepo  *mocks.MockDealerRepository
	mockLedgerRepo  *mocks.MockLedgerEntryRepository
	mockProductRepo *mocks.MockProductRepository
	mockOrderRepo   *mocks.MockOrderRepository
	mockAppRepo     *mocks.MockApplicationRepository
	mockPublisher   *mocks.MockPublisher
	mockCatalog     *mocks.MockCatalogCache
	phones          *phone.Normalizer
}

func (s *serviceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockDealerRepo = mocks.NewMockDealerRepository(s.mockCtrl)
	s.mockLedgerRepo = mocks.NewMockLedgerEntryRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)
	s.mockAppRepo = mocks.NewMockApplicationRepository(s.mockCtrl)
	s.mockPublisher = mocks.NewMockPublisher(s.mockCtrl)
	s.mockCatalog = mocks.NewMockCatalogCache(s.mockCtrl)
	s.phones = phone.New(phone.DefaultRegion)

	repos := map[repoargs.RepositoryName]any{
		repoargs.UserRepoName:        s.mockUserRepo,
		repoargs.DealerRepoName:      s.mockDealerRepo,
		repoargs.LedgerEntryRepoName: s.mockLedgerRepo,
		repoargs.ProductRepoName:     s.mockProductRepo,
		repoargs.OrderRepoName:       s.mockOrderRepo,
		repoargs.ApplicationRepoName: s.mockAppRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx ожидает ровно одну транзакцию, выполняемую на мок-транзакции.
func (s *serviceSuite) expectTx() {
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *serviceSuite) ledgerService() *LedgerService {
	ledger, err := NewLedgerService(s.mockUOW, s.phones, s.mockPublisher, nil)
	s.Require().NoError(err)
	return ledger
}

// decEq сравнивает decimal по значению, а не по внутреннему представлению.
type decEq struct{ want decimal.Decimal }

func (m decEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decEq) String() string { return "decimal equal to " + m.want.String() }

func decimalEq(v int64) gomock.Matcher { return decEq{want: decimal.NewFromInt(v)} }
