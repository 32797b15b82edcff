package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/metrics"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
)

const maxOrderCodeAttempts = 3

// MaxLineQuantity предел ящиков одного товара в заказе, в том числе после слияния повторов.
const MaxLineQuantity int64 = 10_000

type OrderService struct {
	uow          uow.UOW
	orderRepo    OrderRepository
	ledger       *LedgerService
	phones       PhoneNormalizer
	publisher    Publisher
	catalog      CatalogCache
	metrics      *metrics.ShopMetrics
	newOrderCode OrderCodeGenerator
	now          func() time.Time
}

func NewOrderService(
	u uow.UOW,
	ledger *LedgerService,
	phones PhoneNormalizer,
	publisher Publisher,
	catalog CatalogCache,
	m *metrics.ShopMetrics,
) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{
		uow:          u,
		orderRepo:    orderRepo,
		ledger:       ledger,
		phones:       phones,
		publisher:    publisher,
		catalog:      catalog,
		metrics:      m,
		newOrderCode: generateOrderCode,
		now:          time.Now,
	}, nil
}

type OrderLine struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderArgs struct {
	CustomerName  string
	CustomerPhone string
	// DealerID явная привязка к дилеру. Если nil, дилер ищется по телефону.
	DealerID      *int64
	Items         []OrderLine
	PaymentStatus domain.PaymentStatus
}

// placement результат транзакции оформления, нужен для публикации событий после коммита.
type placement struct {
	order    *domain.Order
	products []domain.Product
	dealer   *domain.Dealer
	posted   bool
}

// PlaceOrder оформляет заказ целиком в одной транзакции.
//
// Алгоритм работы:
//  1. Блокирует товары заказа и проверяет остатки по всем позициям сразу. Нехватка хотя бы
//     одной позиции дает *domain.InsufficientStockError со списком всех нехваток.
//  2. Определяет дилера: явно переданного или активного дилера с тем же телефоном.
//  3. Сохраняет заказ со снимком цен и статусом Pending.
//  4. Списывает остатки условным обновлением.
//  5. Если заказ привязан к дилеру и не оплачен полностью, проводит Debit на сумму заказа.
//
// События stock_updated, dealer_updated и new_order публикуются только после коммита.
func (o *OrderService) PlaceOrder(ctx context.Context, args PlaceOrderArgs) (*domain.Order, error) {
	lines, err := o.validatePlaceOrder(&args)
	if err != nil {
		o.metrics.IncOrderRejected("invalid_argument")
		return nil, fmt.Errorf("placing order: %w", err)
	}

	var res placement
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var placeErr error
		res, placeErr = o.place(c, tx, args, lines)
		return placeErr
	})
	if txErr != nil {
		o.metrics.IncOrderRejected(rejectionReason(txErr))
		return nil, fmt.Errorf("placing order: %w", txErr)
	}

	o.metrics.IncOrderPlaced(string(res.order.PaymentStatus))
	o.catalog.Invalidate(ctx)
	for i := range res.products {
		o.publisher.Publish(ctx, domain.EventStockUpdated, res.products[i].Public())
	}
	if res.posted {
		o.metrics.ObserveLedgerPosting(string(domain.EntryDebit), res.order.TotalAmount)
		o.publisher.Publish(ctx, domain.EventDealerUpdated, res.dealer)
	}
	o.publisher.Publish(ctx, domain.EventNewOrder, res.order)
	return res.order, nil
}

func (o *OrderService) place(
	ctx context.Context,
	tx uow.TX,
	args PlaceOrderArgs,
	lines []OrderLine,
) (placement, error) {
	var res placement

	productRepo, err := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	// 1. проверка остатков по всем позициям до любых изменений.
	products, err := o.lockProducts(ctx, productRepo, lines)
	if err != nil {
		return res, err
	}
	if shortages := findShortages(lines, products); len(shortages) > 0 {
		return res, domain.NewInsufficientStockError(shortages...)
	}

	// 2. привязка к дилеру.
	dealer, err := o.resolveDealer(ctx, tx, args)
	if err != nil {
		return res, err
	}

	// 3. создание заказа.
	items := make([]domain.OrderItem, len(lines))
	for i, line := range lines {
		product := products[line.ProductID]
		items[i] = domain.OrderItem{
			ProductID: &product.ID,
			Size:      product.Size,
			Quantity:  line.Quantity,
			UnitPrice: product.UnitPrice(line.Quantity),
		}
	}
	code, err := o.nextOrderCode(ctx, orderRepo)
	if err != nil {
		return res, err
	}
	createArgs := repoargs.CreateOrder{
		OrderCode:     code,
		CustomerName:  args.CustomerName,
		CustomerPhone: args.CustomerPhone,
		Items:         items,
		TotalAmount:   domain.CalculateTotal(items),
		Status:        domain.OrderStatusPending,
		PaymentStatus: args.PaymentStatus,
	}
	if dealer != nil {
		createArgs.DealerID = &dealer.ID
	}
	order, err := orderRepo.Create(ctx, createArgs)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	// 4. списание остатков.
	updated := make([]domain.Product, 0, len(lines))
	for _, line := range lines {
		product, decErr := productRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
		if decErr != nil {
			if errors.Is(decErr, domain.ErrNotEnoughStock) {
				locked := products[line.ProductID]
				return res, domain.NewInsufficientStockError(domain.StockShortage{
					ProductID: locked.ID,
					Size:      locked.Size,
					Requested: line.Quantity,
					Available: locked.Stock,
				})
			}
			return res, decErr //nolint:wrapcheck
		}
		updated = append(updated, *product)
	}

	// 5. проводка по счету дилера.
	res.order, res.products, res.dealer = order, updated, dealer
	if dealer != nil && order.PaymentStatus != domain.PaymentPaid && order.TotalAmount.IsPositive() {
		res.dealer, err = o.ledger.post(ctx, tx, PostTransactionArgs{
			DealerID:    dealer.ID,
			Amount:      order.TotalAmount,
			Kind:        domain.EntryDebit,
			Description: "Order " + order.OrderCode,
			OrderCode:   order.OrderCode,
		})
		if err != nil {
			return res, err
		}
		res.posted = true
	}
	return res, nil
}

// lockProducts блокирует строки товаров. Отсутствующий товар дает domain.ErrRecordNotFound.
func (o *OrderService) lockProducts(
	ctx context.Context,
	repo ProductRepository,
	lines []OrderLine,
) (map[int64]domain.Product, error) {
	ids := make([]int64, len(lines))
	for i, line := range lines {
		ids[i] = line.ProductID
	}
	found, err := repo.FindByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	products := make(map[int64]domain.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, fmt.Errorf("product %d: %w", id, domain.ErrRecordNotFound)
		}
	}
	return products, nil
}

func findShortages(lines []OrderLine, products map[int64]domain.Product) []domain.StockShortage {
	var shortages []domain.StockShortage
	for _, line := range lines {
		product := products[line.ProductID]
		if line.Quantity > product.Stock {
			shortages = append(shortages, domain.StockShortage{
				ProductID: product.ID,
				Size:      product.Size,
				Requested: line.Quantity,
				Available: product.Stock,
			})
		}
	}
	return shortages
}

// resolveDealer возвращает nil для гостевого заказа. Новых дилеров не создает.
func (o *OrderService) resolveDealer(ctx context.Context, tx uow.TX, args PlaceOrderArgs) (*domain.Dealer, error) {
	dealerRepo, err := uow.GetAs[DealerRepository](tx, uow.RepositoryName(repoargs.DealerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if args.DealerID != nil {
		dealer, findErr := dealerRepo.FindByID(ctx, *args.DealerID)
		if findErr != nil {
			return nil, findErr //nolint:wrapcheck
		}
		if !dealer.Active {
			return nil, domain.InvalidArgumentf("dealer %d is inactive", dealer.ID)
		}
		return dealer, nil
	}

	dealer, err := dealerRepo.FindActiveByPhone(ctx, args.CustomerPhone)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return nil, nil //nolint:nilnil
	}
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return dealer, nil
}

func (o *OrderService) nextOrderCode(ctx context.Context, repo OrderRepository) (string, error) {
	for range maxOrderCodeAttempts {
		code, err := o.newOrderCode(o.now())
		if err != nil {
			return "", err
		}
		exists, err := repo.ExistsByOrderCode(ctx, code)
		if err != nil {
			return "", err //nolint:wrapcheck
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("no free order code after %d attempts: %w", maxOrderCodeAttempts, domain.ErrConflictingUpdate)
}

// validatePlaceOrder нормализует аргументы и схлопывает повторяющиеся товары в одну позицию,
// сохраняя порядок первого появления.
func (o *OrderService) validatePlaceOrder(args *PlaceOrderArgs) ([]OrderLine, error) {
	args.CustomerName = strings.TrimSpace(args.CustomerName)
	if args.CustomerName == "" {
		return nil, domain.InvalidArgumentf("customer name is required")
	}
	phone, err := o.phones.Normalize(args.CustomerPhone)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	args.CustomerPhone = phone

	if args.PaymentStatus == "" {
		args.PaymentStatus = domain.PaymentUnpaid
	}
	if !args.PaymentStatus.IsValid() {
		return nil, domain.InvalidArgumentf("unknown payment status %q", args.PaymentStatus)
	}
	if len(args.Items) == 0 {
		return nil, domain.InvalidArgumentf("order has no items")
	}

	lines := make([]OrderLine, 0, len(args.Items))
	index := make(map[int64]int, len(args.Items))
	for _, item := range args.Items {
		if item.ProductID <= 0 {
			return nil, domain.InvalidArgumentf("invalid product id %d", item.ProductID)
		}
		if item.Quantity <= 0 {
			return nil, domain.InvalidArgumentf("quantity for product %d must be positive", item.ProductID)
		}
		if item.Quantity > MaxLineQuantity {
			return nil, domain.InvalidArgumentf("quantity for product %d exceeds %d", item.ProductID, MaxLineQuantity)
		}
		if i, ok := index[item.ProductID]; ok {
			// оба слагаемых не больше MaxLineQuantity, переполнения нет.
			if lines[i].Quantity+item.Quantity > MaxLineQuantity {
				return nil, domain.InvalidArgumentf("quantity for product %d exceeds %d", item.ProductID, MaxLineQuantity)
			}
			lines[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(lines)
		lines = append(lines, item)
	}
	return lines, nil
}

func rejectionReason(err error) string {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrConflictingUpdate):
		return "conflict"
	default:
		return "internal"
	}
}

type UpdateOrderStatusArgs struct {
	OrderCode     string
	Status        *domain.OrderStatus
	PaymentStatus *domain.PaymentStatus
}

// UpdateOrderStatus меняет статус доставки и/или оплаты. Остатки и счет дилера не трогает.
// Повторная установка текущих значений ничего не меняет и событие не публикует.
func (o *OrderService) UpdateOrderStatus(ctx context.Context, args UpdateOrderStatusArgs) (*domain.Order, error) {
	if args.Status == nil && args.PaymentStatus == nil {
		return nil, fmt.Errorf("updating order %s: %w", args.OrderCode,
			domain.InvalidArgumentf("status or paymentStatus is required"))
	}
	if args.Status != nil && !args.Status.IsValid() {
		return nil, fmt.Errorf("updating order %s: %w", args.OrderCode,
			domain.InvalidArgumentf("unknown status %q", *args.Status))
	}
	if args.PaymentStatus != nil && !args.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("updating order %s: %w", args.OrderCode,
			domain.InvalidArgumentf("unknown payment status %q", *args.PaymentStatus))
	}

	var order *domain.Order
	var changed bool
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, err := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		current, err := orderRepo.FindByOrderCodeForUpdate(c, args.OrderCode)
		if err != nil {
			return err //nolint:wrapcheck
		}

		next := repoargs.UpdateOrderStatus{
			OrderCode:     current.OrderCode,
			Status:        current.Status,
			PaymentStatus: current.PaymentStatus,
		}
		if args.Status != nil {
			if !current.Status.CanTransitionTo(*args.Status) {
				return domain.InvalidArgumentf("order status can not change from %s to %s", current.Status, *args.Status)
			}
			next.Status = *args.Status
		}
		if args.PaymentStatus != nil {
			next.PaymentStatus = *args.PaymentStatus
		}

		if next.Status == current.Status && next.PaymentStatus == current.PaymentStatus {
			order = current
			return nil
		}
		order, err = orderRepo.UpdateStatus(c, next)
		changed = err == nil
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("updating order %s: %w", args.OrderCode, txErr)
	}

	if changed {
		o.publisher.Publish(ctx, domain.EventOrderStatusUpdated, order)
	}
	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, orderCode string) (*domain.Order, error) {
	order, err := o.orderRepo.FindByOrderCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("getting order %s: %w", orderCode, err)
	}
	return order, nil
}

// ListAllOrders все заказы для админки, новые первыми.
func (o *OrderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return orders, nil
}

// ListOrdersForPhone заказы одного покупателя для самостоятельного отслеживания.
func (o *OrderService) ListOrdersForPhone(ctx context.Context, rawPhone string) ([]domain.Order, error) {
	phone, err := o.phones.Normalize(rawPhone)
	if err != nil {
		return nil, fmt.Errorf("listing orders for phone: %w", err)
	}
	orders, err := o.orderRepo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("listing orders for phone %s: %w", phone, err)
	}
	return orders, nil
}
