package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/repository/repoargs"
	"github.com/fsdevblog/jalsa-khata/pkg/uow"
	"github.com/shopspring/decimal"
)

// ProductService каталог товаров. Остаток уменьшается только при оформлении заказа,
// здесь его можно лишь пополнить.
type ProductService struct {
	productRepo ProductRepository
	catalog     CatalogCache
	publisher   Publisher
}

func NewProductService(u uow.UOW, catalog CatalogCache, publisher Publisher) (*ProductService, error) {
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ProductService{productRepo: productRepo, catalog: catalog, publisher: publisher}, nil
}

type ProductArgs struct {
	Size              string
	ImageURL          string
	Description       string
	Tag               string
	CrateSize         int64
	PricePerCrate     decimal.Decimal
	CostPrice         decimal.NullDecimal
	LowStockThreshold int64
	BulkThreshold     int64
	BulkPrice         decimal.NullDecimal
}

// ProductDeleted полезная нагрузка stock_updated после удаления товара.
type ProductDeleted struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// List публичный каталог, отдается из кеша, если он есть.
func (p *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, version, ok := p.catalog.Get(ctx)
	if ok {
		return products, nil
	}
	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	p.catalog.Set(ctx, version, products)
	return products, nil
}

func (p *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting product %d: %w", id, err)
	}
	return product, nil
}

func (p *ProductService) Create(ctx context.Context, args ProductArgs, stock int64) (*domain.Product, error) {
	save, err := validateProduct(args)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	if stock < 0 {
		return nil, fmt.Errorf("creating product: %w", domain.InvalidArgumentf("stock can not be negative"))
	}
	product, err := p.productRepo.Create(ctx, repoargs.CreateProduct{SaveProduct: save, Stock: stock})
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	p.changed(ctx, product)
	return product, nil
}

// Update меняет карточку товара, остаток остается прежним.
func (p *ProductService) Update(ctx context.Context, id int64, args ProductArgs) (*domain.Product, error) {
	save, err := validateProduct(args)
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}
	product, err := p.productRepo.Update(ctx, id, save)
	if err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}
	p.changed(ctx, product)
	return product, nil
}

func (p *ProductService) Restock(ctx context.Context, id, quantity int64) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("restocking product %d: %w", id, domain.InvalidArgumentf("quantity must be positive"))
	}
	product, err := p.productRepo.IncrementStock(ctx, id, quantity)
	if err != nil {
		return nil, fmt.Errorf("restocking product %d: %w", id, err)
	}
	p.changed(ctx, product)
	return product, nil
}

// Delete удаляет товар из каталога. Позиции прошлых заказов сохраняют снимок размера и цены.
func (p *ProductService) Delete(ctx context.Context, id int64) error {
	if err := p.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting product %d: %w", id, err)
	}
	p.catalog.Invalidate(ctx)
	p.publisher.Publish(ctx, domain.EventStockUpdated, ProductDeleted{ID: id, Deleted: true})
	return nil
}

func (p *ProductService) changed(ctx context.Context, product *domain.Product) {
	p.catalog.Invalidate(ctx)
	p.publisher.Publish(ctx, domain.EventStockUpdated, product.Public())
}

func validateProduct(args ProductArgs) (repoargs.SaveProduct, error) {
	save := repoargs.SaveProduct{
		Size:              strings.TrimSpace(args.Size),
		ImageURL:          strings.TrimSpace(args.ImageURL),
		Description:       strings.TrimSpace(args.Description),
		Tag:               strings.TrimSpace(args.Tag),
		CrateSize:         args.CrateSize,
		PricePerCrate:     args.PricePerCrate,
		CostPrice:         args.CostPrice,
		LowStockThreshold: args.LowStockThreshold,
		BulkThreshold:     args.BulkThreshold,
		BulkPrice:         args.BulkPrice,
	}
	switch {
	case save.Size == "":
		return save, domain.InvalidArgumentf("size is required")
	case save.CrateSize <= 0:
		return save, domain.InvalidArgumentf("crate size must be positive")
	case !save.PricePerCrate.IsPositive():
		return save, domain.InvalidArgumentf("price per crate must be positive")
	case save.CostPrice.Valid && save.CostPrice.Decimal.IsNegative():
		return save, domain.InvalidArgumentf("cost price can not be negative")
	case save.LowStockThreshold < 0:
		return save, domain.InvalidArgumentf("low stock threshold can not be negative")
	case save.BulkThreshold < 0:
		return save, domain.InvalidArgumentf("bulk threshold can not be negative")
	}
	if save.LowStockThreshold == 0 {
		save.LowStockThreshold = domain.DefaultLowStockThreshold
	}
	if save.BulkThreshold == 0 {
		save.BulkPrice = decimal.NullDecimal{}
	} else if !save.BulkPrice.Valid || !save.BulkPrice.Decimal.IsPositive() {
		return save, domain.InvalidArgumentf("bulk price is required when bulk threshold is set")
	}
	return save, nil
}
