// Package cache кеширует публичный каталог товаров. Ошибки кеша не ломают чтение каталога.
package cache

import (
	"context"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
)

type NoopCatalogCache struct{}

func (NoopCatalogCache) Get(context.Context) ([]domain.Product, int64, bool) { return nil, 0, false }

func (NoopCatalogCache) Set(context.Context, int64, []domain.Product) {}

func (NoopCatalogCache) Invalidate(context.Context) {}
