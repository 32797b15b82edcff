package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	defaultCreditDescription  = "Payment Received"
	defaultDebitDescription   = "Manual Charge"
	openingBalanceDescription = "Opening balance"
	// moneyScale денежные суммы хранятся с точностью до пайсы.
	moneyScale = 2
)

// LedgerService единственная точка изменения баланса дилера. Баланс меняется только вместе
// с добавлением записи в журнал, в одной транзакции.
type LedgerService struct {
	uow        uow.UOW
	dealerRepo DealerRepository
	ledgerRepo LedgerEntryRepository
	phones     PhoneNormalizer
	publisher  Publisher
	metrics    *metrics.ShopMetrics
}

func NewLedgerService(
	u uow.UOW,
	phones PhoneNormalizer,
	publisher Publisher,
	m *metrics.ShopMetrics,
) (*LedgerService, error) {
	dealerRepo, err := uow.GetRepositoryAs[DealerRepository](u, uow.RepositoryName(repoargs.DealerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ledgerRepo, err := uow.GetRepositoryAs[LedgerEntryRepository](u, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LedgerService{
		uow:        u,
		dealerRepo: dealerRepo,
		ledgerRepo: ledgerRepo,
		phones:     phones,
		publisher:  publisher,
		metrics:    m,
	}, nil
}

type PostTransactionArgs struct {
	DealerID    int64
	Amount      decimal.Decimal
	Kind        domain.EntryKind
	Description string
	// OrderCode заполняется, если запись порождена заказом.
	OrderCode string
}

// PostTransaction проводит запись по счету дилера и возвращает счет с полной историей.
//
// Debit увеличивает долг, Credit уменьшает. Оплата больше текущего долга отклоняется с
// domain.ErrInvalidArgument, авансы на счете не хранятся.
func (s *LedgerService) PostTransaction(ctx context.Context, args PostTransactionArgs) (*domain.Dealer, error) {
	if err := validatePosting(&args); err != nil {
		return nil, fmt.Errorf("posting to dealer %d: %w", args.DealerID, err)
	}

	var dealer *domain.Dealer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var err error
		dealer, err = s.post(c, tx, args)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("posting %s to dealer %d: %w", args.Kind, args.DealerID, txErr)
	}

	s.metrics.ObserveLedgerPosting(string(args.Kind), args.Amount)
	s.publisher.Publish(ctx, domain.EventDealerUpdated, dealer)
	return dealer, nil
}

// post выполняет проводку внутри уже открытой транзакции. Аргументы должны быть проверены
// validatePosting.
func (s *LedgerService) post(ctx context.Context, tx uow.TX, args PostTransactionArgs) (*domain.Dealer, error) {
	dealerRepo, err := uow.GetAs[DealerRepository](tx, uow.RepositoryName(repoargs.DealerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	ledgerRepo, err := uow.GetAs[LedgerEntryRepository](tx, uow.RepositoryName(repoargs.LedgerEntryRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	locked, err := dealerRepo.FindByIDForUpdate(ctx, args.DealerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if args.Kind == domain.EntryCredit && args.Amount.GreaterThan(locked.Balance) {
		return nil, domain.InvalidArgumentf("payment %s exceeds outstanding balance %s",
			args.Amount.StringFixed(moneyScale), locked.Balance.StringFixed(moneyScale))
	}

	dealer, err := dealerRepo.ApplyBalanceDelta(ctx, args.DealerID, args.Kind.Signed(args.Amount))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if _, err = ledgerRepo.Create(ctx, repoargs.CreateLedgerEntry{
		DealerID:    args.DealerID,
		Amount:      args.Amount,
		Kind:        args.Kind,
		Description: args.Description,
		OrderCode:   args.OrderCode,
	}); err != nil {
		return nil, err //nolint:wrapcheck
	}

	dealer.Transactions, err = ledgerRepo.ListByDealerID(ctx, args.DealerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return dealer, nil
}

func validatePosting(args *PostTransactionArgs) error {
	if !args.Kind.IsValid() {
		return domain.InvalidArgumentf("unknown entry type %q", args.Kind)
	}
	if !args.Amount.IsPositive() {
		return domain.InvalidArgumentf("amount must be positive, got %s", args.Amount.String())
	}
	if !args.Amount.Equal(args.Amount.Round(moneyScale)) {
		return domain.InvalidArgumentf("amount %s has more than %d decimal places", args.Amount.String(), moneyScale)
	}
	args.Description = strings.TrimSpace(args.Description)
	if args.Description == "" {
		if args.Kind == domain.EntryCredit {
			args.Description = defaultCreditDescription
		} else {
			args.Description = defaultDebitDescription
		}
	}
	return nil
}

// GetDealer возвращает счет дилера с историей в порядке проведения.
func (s *LedgerService) GetDealer(ctx context.Context, id int64) (*domain.Dealer, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting dealer %d: %w", id, err)
	}
	dealer.Transactions, err = s.ledgerRepo.ListByDealerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting dealer %d: %w", id, err)
	}
	return dealer, nil
}

// ListDealers возвращает всех дилеров, новые первыми.
func (s *LedgerService) ListDealers(ctx context.Context) ([]domain.Dealer, error) {
	dealers, err := s.dealerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dealers: %w", err)
	}
	ids := make([]int64, len(dealers))
	for i := range dealers {
		ids[i] = dealers[i].ID
	}
	entries, err := s.ledgerRepo.ListByDealerIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing dealers: %w", err)
	}
	for i := range dealers {
		dealers[i].Transactions = entries[dealers[i].ID]
		if dealers[i].Transactions == nil {
			dealers[i].Transactions = []domain.LedgerEntry{}
		}
	}
	return dealers, nil
}

func (s *LedgerService) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	dealer, err := s.dealerRepo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, fmt.Errorf("getting balance of dealer %d: %w", id, err)
	}
	return dealer.Balance, nil
}

type BalanceReport struct {
	DealerID   int64           `json:"dealerId"`
	Cached     decimal.Decimal `json:"balance"`
	Replayed   decimal.Decimal `json:"replayedBalance"`
	Consistent bool            `json:"consistent"`
	Entries    int             `json:"entries"`
}

// VerifyBalance сверяет сохраненный баланс с суммой журнала. Расхождение не считается ошибкой,
// оно отражается в отчете.
func (s *LedgerService) VerifyBalance(ctx context.Context, id int64) (*BalanceReport, error) {
	dealer, err := s.GetDealer(ctx, id)
	if err != nil {
		return nil, err
	}
	replayed := domain.ReplayBalance(dealer.Transactions)
	return &BalanceReport{
		DealerID:   dealer.ID,
		Cached:     dealer.Balance,
		Replayed:   replayed,
		Consistent: dealer.Balance.Equal(replayed),
		Entries:    len(dealer.Transactions),
	}, nil
}

type CreateDealerArgs struct {
	Name     string
	ShopName string
	Location string
	Phone    string
	GSTIN    string
	// OpeningBalance проводится отдельной Debit записью, если больше нуля.
	OpeningBalance decimal.Decimal
}

// CreateDealer заводит счет дилера. Дилер с таким же телефоном дает domain.ErrDuplicateKey.
func (s *LedgerService) CreateDealer(ctx context.Context, args CreateDealerArgs) (*domain.Dealer, error) {
	phone, err := s.phones.Normalize(args.Phone)
	if err != nil {
		return nil, fmt.Errorf("creating dealer: %w", err)
	}
	args.Phone = phone
	if err = validateDealer(&args); err != nil {
		return nil, fmt.Errorf("creating dealer: %w", err)
	}

	var dealer *domain.Dealer
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var createErr error
		dealer, createErr = s.createDealerInTx(c, tx, args)
		return createErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating dealer: %w", txErr)
	}

	if args.OpeningBalance.IsPositive() {
		s.metrics.ObserveLedgerPosting(string(domain.EntryDebit), args.OpeningBalance)
	}
	s.publisher.Publish(ctx, domain.EventDealerUpdated, dealer)
	return dealer, nil
}

// createDealerInTx ожидает нормализованный телефон и проверенные аргументы.
func (s *LedgerService) createDealerInTx(ctx context.Context, tx uow.TX, args CreateDealerArgs) (*domain.Dealer, error) {
	dealerRepo, err := uow.GetAs[DealerRepository](tx, uow.RepositoryName(repoargs.DealerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	dealer, err := dealerRepo.Create(ctx, repoargs.CreateDealer{
		Name:     args.Name,
		ShopName: args.ShopName,
		Location: args.Location,
		Phone:    args.Phone,
		GSTIN:    args.GSTIN,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if !args.OpeningBalance.IsPositive() {
		dealer.Transactions = []domain.LedgerEntry{}
		return dealer, nil
	}
	return s.post(ctx, tx, PostTransactionArgs{
		DealerID:    dealer.ID,
		Amount:      args.OpeningBalance,
		Kind:        domain.EntryDebit,
		Description: openingBalanceDescription,
	})
}

func validateDealer(args *CreateDealerArgs) error {
	args.Name = strings.TrimSpace(args.Name)
	args.ShopName = strings.TrimSpace(args.ShopName)
	args.Location = strings.TrimSpace(args.Location)
	args.GSTIN = strings.ToUpper(strings.TrimSpace(args.GSTIN))
	if args.Name == "" || args.ShopName == "" {
		return domain.InvalidArgumentf("dealer name and shop name are required")
	}
	if args.OpeningBalance.IsNegative() {
		return domain.InvalidArgumentf("opening balance can not be negative")
	}
	if !args.OpeningBalance.Equal(args.OpeningBalance.Round(moneyScale)) {
		return domain.InvalidArgumentf("opening balance has more than %d decimal places", moneyScale)
	}
	return nil
}

// SetDealerActive включает или отключает дилера. История не меняется, отключенный дилер
// перестает находиться по телефону при оформлении заказа.
func (s *LedgerService) SetDealerActive(ctx context.Context, id int64, active bool) (*domain.Dealer, error) {
	dealer, err := s.dealerRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("setting dealer %d active=%t: %w", id, active, err)
	}
	dealer.Transactions, err = s.ledgerRepo.ListByDealerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("setting dealer %d active=%t: %w", id, active, err)
	}
	s.publisher.Publish(ctx, domain.EventDealerUpdated, dealer)
	return dealer, nil
}
