package api

import (
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/fsdevblog/jalsa-khata/internal/handoff"
	"github.com/fsdevblog/jalsa-khata/internal/logger"
	"github.com/fsdevblog/jalsa-khata/internal/phone"
	"github.com/fsdevblog/jalsa-khata/internal/realtime"
	"github.com/fsdevblog/jalsa-khata/internal/service/tokens"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/mocks"
	"github.com/fsdevblog/jalsa-khata/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type handlerSuite struct {
	suite.Suite
	router                 *gin.Engine
	hub                    *realtime.Hub
	mockCtrl               *gomock.Controller
	mockUserService        *mocks.MockUserServicer
	mockLedgerService      *mocks.MockLedgerServicer
	mockOrderService       *mocks.MockOrderServicer
	mockProductService     *mocks.MockProductServicer
	mockApplicationService *mocks.MockApplicationServicer
	jwtSecret              []byte
	adminToken             string
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserService = mocks.NewMockUserServicer(s.mockCtrl)
	s.mockLedgerService = mocks.NewMockLedgerServicer(s.mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(s.mockCtrl)
	s.mockProductService = mocks.NewMockProductServicer(s.mockCtrl)
	s.mockApplicationService = mocks.NewMockApplicationServicer(s.mockCtrl)
	s.jwtSecret = []byte("super secret key for jalsa tests!")
	s.hub = realtime.NewHub(4, logrus.NewEntry(logrus.New()), nil)

	router, err := New(RouterArgs{
		Logger:             logger.New(io.Discard, ""),
		UserService:        s.mockUserService,
		LedgerService:      s.mockLedgerService,
		OrderService:       s.mockOrderService,
		ProductService:     s.mockProductService,
		ApplicationService: s.mockApplicationService,
		Hub:                s.hub,
		WhatsApp:           handoff.NewWhatsApp("+91 98000 00000"),
		Phones:             phone.New(phone.DefaultRegion),
		JWTSecretKey:       s.jwtSecret,
		Heartbeat:          time.Hour,
	})
	s.Require().NoError(err)
	s.router = router

	token, tokenErr := tokens.GenerateAdminJWT(
		&domain.User{ID: 1, Email: "admin@jalsa.in", Role: domain.UserRoleAdmin}, time.Hour, s.jwtSecret,
	)
	s.Require().NoError(tokenErr)
	s.adminToken = token
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// request выполняет запрос к роутеру. body кодируется в json, если не nil.
func (s *handlerSuite) request(
	method, url string,
	body any,
	opts ...func(*testutils.RequestOptions),
) *http.Response {
	args := testutils.RequestArgs{Router: s.router, Method: method, URL: url}
	if body != nil {
		reader, err := testutils.JSONBody(body)
		s.Require().NoError(err)
		args.Body = reader
		opts = append(opts, testutils.WithJSON())
	}
	res, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)
	return res
}

func (s *handlerSuite) asAdmin() func(*testutils.RequestOptions) {
	return testutils.WithBearer(s.adminToken)
}
