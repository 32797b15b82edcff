package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductsHandler struct {
	svs ProductServicer
}

func NewProductsHandler(svs ProductServicer) *ProductsHandler {
	return &ProductsHandler{svs: svs}
}

type ProductParams struct {
	Size              string              `binding:"required,max=50"        json:"size"`
	ImageURL          string              `binding:"omitempty,max_bytes=1024" json:"img"`
	Description       string              `binding:"max_bytes=1024"           json:"desc"`
	Tag               string              `binding:"max=50"                   json:"tag"`
	CrateSize         int64               `binding:"required,gt=0"            json:"crateSize"`
	PricePerCrate     decimal.Decimal     `json:"pricePerCrate"`
	CostPrice         decimal.NullDecimal `json:"costPrice"`
	Stock             int64               `binding:"gte=0"                    json:"stock"`
	LowStockThreshold int64               `binding:"gte=0"                    json:"lowStockThreshold"`
	BulkThreshold     int64               `binding:"gte=0"                    json:"bulkThreshold"`
	BulkPrice         decimal.NullDecimal `json:"bulkPrice"`
}

func (p ProductParams) toArgs() service.ProductArgs {
	return service.ProductArgs{
		Size:              p.Size,
		ImageURL:          p.ImageURL,
		Description:       p.Description,
		Tag:               p.Tag,
		CrateSize:         p.CrateSize,
		PricePerCrate:     p.PricePerCrate,
		CostPrice:         p.CostPrice,
		LowStockThreshold: p.LowStockThreshold,
		BulkThreshold:     p.BulkThreshold,
		BulkPrice:         p.BulkPrice,
	}
}

// Index GET RouteGroup + ProductsRoute. Публичный каталог, себестоимость видит только администратор.
func (h *ProductsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	products, err := h.svs.List(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if middlewares.IsAdmin(c) {
		c.JSON(http.StatusOK, emptyIfNil(products))
		return
	}
	c.JSON(http.StatusOK, domain.PublicCatalog(products))
}

func (h *ProductsHandler) Show(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Get(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if middlewares.IsAdmin(c) {
		c.JSON(http.StatusOK, product)
		return
	}
	c.JSON(http.StatusOK, product.Public())
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Create(ctx, params.toArgs(), params.Stock)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update PUT RouteGroup + ProductRoute. Поле stock игнорируется, остаток меняется через Restock.
func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params ProductParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Update(ctx, id, params.toArgs())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

type RestockParams struct {
	Quantity int64 `binding:"required,gt=0" json:"quantity"`
}

func (h *ProductsHandler) Restock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params RestockParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	product, err := h.svs.Restock(ctx, id, params.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.Delete(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
