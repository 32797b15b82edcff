package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/service"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type ApplicationHandlerTestSuite struct {
	handlerSuite
}

func TestApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}

func (s *ApplicationHandlerTestSuite) TestCreate() {
	s.mockApplicationService.EXPECT().Submit(gomock.Any(), service.SubmitApplicationArgs{
		Name: "Suresh", ShopName: "Suresh Stores", Phone: "9876543210", City: "Nashik",
	}).Return(&domain.Application{ID: 3, Status: domain.ApplicationNew}, nil)
	s.mockApplicationService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

	payload := ApplicationParams{Name: "Suresh", ShopName: "Suresh Stores", Phone: "9876543210", City: "Nashik"}

	res := s.request(http.MethodPost, RouteGroup+ApplicationsRoute, payload)
	res.Body.Close()
	s.Equal(http.StatusCreated, res.StatusCode)

	res = s.request(http.MethodPost, RouteGroup+ApplicationsRoute, payload)
	res.Body.Close()
	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *ApplicationHandlerTestSuite) TestApprove() {
	dealerID := int64(11)
	s.mockApplicationService.EXPECT().
		UpdateStatus(gomock.Any(), service.UpdateApplicationArgs{ID: 3, Status: domain.ApplicationApproved}).
		Return(
			&domain.Application{ID: 3, Status: domain.ApplicationApproved, DealerID: &dealerID},
			&domain.Dealer{ID: dealerID, Name: "Suresh", Active: true, Transactions: []domain.LedgerEntry{}},
			nil,
		)

	res := s.request(http.MethodPut, RouteGroup+"/applications/3",
		UpdateApplicationParams{Status: domain.ApplicationApproved}, s.asAdmin())
	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Status domain.ApplicationStatus `json:"status"`
		Dealer *domain.Dealer           `json:"dealer"`
	}
	s.Require().NoError(testutils.DecodeJSON(res, &body))
	s.Equal(domain.ApplicationApproved, body.Status)
	s.Require().NotNil(body.Dealer)
	s.Equal(dealerID, body.Dealer.ID)
}
