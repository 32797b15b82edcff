package api

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/statement"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DealersHandler struct {
	svs LedgerServicer
}

func NewDealersHandler(svs LedgerServicer) *DealersHandler {
	return &DealersHandler{svs: svs}
}

func (h *DealersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealers, err := h.svs.ListDealers(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(dealers))
}

func (h *DealersHandler) Show(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealer, err := h.svs.GetDealer(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

type CreateDealerParams struct {
	Name           string          `binding:"required,max=100" json:"name"`
	ShopName       string          `binding:"required,max=100" json:"shopName"`
	Location       string          `binding:"max=255"          json:"location"`
	Phone          string          `binding:"required,phone"   json:"mobile"`
	GSTIN          string          `binding:"omitempty,len=15" json:"gstin"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

func (h *DealersHandler) Create(c *gin.Context) {
	var params CreateDealerParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealer, err := h.svs.CreateDealer(ctx, service.CreateDealerArgs{
		Name:           params.Name,
		ShopName:       params.ShopName,
		Location:       params.Location,
		Phone:          params.Phone,
		GSTIN:          params.GSTIN,
		OpeningBalance: params.OpeningBalance,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dealer)
}

type TransactionParams struct {
	Amount      decimal.Decimal  `json:"amount"`
	Kind        domain.EntryKind `binding:"required"         json:"type"`
	Description string           `binding:"max_bytes=255"    json:"description"`
}

// PostTransaction PUT RouteGroup + TransactionRoute. Ручная проводка по khata дилера.
func (h *DealersHandler) PostTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params TransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealer, err := h.svs.PostTransaction(ctx, service.PostTransactionArgs{
		DealerID:    id,
		Amount:      params.Amount,
		Kind:        params.Kind,
		Description: params.Description,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

type DealerActiveParams struct {
	Active *bool `binding:"required" json:"active"`
}

func (h *DealersHandler) SetActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var params DealerActiveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealer, err := h.svs.SetDealerActive(ctx, id, *params.Active)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dealer)
}

// Balance GET RouteGroup + BalanceRoute. Сверка сохраненного баланса с журналом.
func (h *DealersHandler) Balance(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	report, err := h.svs.VerifyBalance(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Statement GET RouteGroup + StatementRoute. Выписка khata в xlsx.
func (h *DealersHandler) Statement(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	dealer, err := h.svs.GetDealer(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err = statement.Write(&buf, dealer); err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="khata-`+strconv.FormatInt(id, 10)+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
