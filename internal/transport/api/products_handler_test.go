package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductHandlerTestSuite struct {
	handlerSuite
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func catalogWithCost() []domain.Product {
	return []domain.Product{{
		ID: 1, Size: "1L", CrateSize: 12, PricePerCrate: decimal.NewFromInt(180),
		CostPrice: decimal.NewNullDecimal(decimal.NewFromInt(120)), Stock: 40, LowStockThreshold: 50,
	}}
}

func (s *ProductHandlerTestSuite) TestIndexIsPublic() {
	s.mockProductService.EXPECT().List(gomock.Any()).Return(catalogWithCost(), nil)

	res := s.request(http.MethodGet, RouteGroup+ProductsRoute, nil)
	var products []map[string]any
	s.Require().NoError(testutils.DecodeJSON(res, &products))
	s.Equal(http.StatusOK, res.StatusCode)
	s.Require().Len(products, 1)
	s.Equal("1L", products[0]["size"])
	s.NotContains(products[0], "costPrice")
}

func (s *ProductHandlerTestSuite) TestIndexShowsCostToAdmin() {
	s.mockProductService.EXPECT().List(gomock.Any()).Return(catalogWithCost(), nil)
	s.mockProductService.EXPECT().Get(gomock.Any(), int64(1)).Return(&catalogWithCost()[0], nil).Times(2)

	res := s.request(http.MethodGet, RouteGroup+ProductsRoute, nil, s.asAdmin())
	var products []domain.Product
	s.Require().NoError(testutils.DecodeJSON(res, &products))
	s.Require().Len(products, 1)
	s.True(products[0].CostPrice.Valid)

	res = s.request(http.MethodGet, RouteGroup+"/products/1", nil, s.asAdmin())
	var product domain.Product
	s.Require().NoError(testutils.DecodeJSON(res, &product))
	s.True(product.CostPrice.Decimal.Equal(decimal.NewFromInt(120)))

	res = s.request(http.MethodGet, RouteGroup+"/products/1", nil)
	var public map[string]any
	s.Require().NoError(testutils.DecodeJSON(res, &public))
	s.NotContains(public, "costPrice")
}

func (s *ProductHandlerTestSuite) TestCreate() {
	created := &domain.Product{ID: 2, Size: "500ml", CrateSize: 24, PricePerCrate: decimal.NewFromInt(150), Stock: 100}
	s.mockProductService.EXPECT().Create(gomock.Any(), gomock.Any(), int64(100)).Return(created, nil)

	payload := ProductParams{Size: "500ml", CrateSize: 24, PricePerCrate: decimal.NewFromInt(150), Stock: 100}

	res := s.request(http.MethodPost, RouteGroup+ProductsRoute, payload)
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+ProductsRoute, payload, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusCreated, res.StatusCode)

	// описание длиннее 1024 байт при меньшем числе рун.
	payload.Description = testutils.GenerateOverBytesUnderRunes(300)
	res = s.request(http.MethodPost, RouteGroup+ProductsRoute, payload, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *ProductHandlerTestSuite) TestRestockAndDelete() {
	s.mockProductService.EXPECT().Restock(gomock.Any(), int64(2), int64(50)).
		Return(&domain.Product{ID: 2, Stock: 150}, nil)
	s.mockProductService.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	s.mockProductService.EXPECT().Delete(gomock.Any(), int64(3)).Return(domain.ErrRecordNotFound)

	res := s.request(http.MethodPost, RouteGroup+"/products/2/restock", RestockParams{Quantity: 50}, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+"/products/2/restock", RestockParams{Quantity: 0}, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)

	res = s.request(http.MethodDelete, RouteGroup+"/products/2", nil, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusNoContent, res.StatusCode)

	res = s.request(http.MethodDelete, RouteGroup+"/products/3", nil, s.asAdmin())
	res.Body.Close()
	s.Equal(http.StatusNotFound, res.StatusCode)
}
