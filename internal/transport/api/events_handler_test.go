package api

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/jalsa-khata/internal/domain"
	"github.com/stretchr/testify/suite"
)

type EventsHandlerTestSuite struct {
	handlerSuite
	server *httptest.Server
}

func TestEventsHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventsHandlerTestSuite))
}

func (s *EventsHandlerTestSuite) SetupTest() {
	s.handlerSuite.SetupTest()
	s.server = httptest.NewServer(s.router)
}

func (s *EventsHandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.handlerSuite.TearDownTest()
}

// subscribe открывает поток и ждет, пока hub зарегистрирует подписчика.
func (s *EventsHandlerTestSuite) subscribe(ctx context.Context, path, token string) *bufio.Reader {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.server.URL+RouteGroup+path, nil)
	s.Require().NoError(err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	s.T().Cleanup(func() { res.Body.Close() })
	s.Require().Equal(http.StatusOK, res.StatusCode)
	s.Equal("text/event-stream", res.Header.Get("Content-Type"))

	s.Require().Eventually(func() bool { return s.hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)
	return bufio.NewReader(res.Body)
}

func nextEventName(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		if name, ok := strings.CutPrefix(strings.TrimSpace(line), "event:"); ok {
			return name, nil
		}
	}
}

func (s *EventsHandlerTestSuite) TestPublicStreamGetsOnlyStock() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reader := s.subscribe(ctx, EventsRoute, "")

	s.hub.Publish(ctx, domain.EventNewOrder, map[string]string{"orderCode": "ORD-261016-ABCDE"})
	s.hub.Publish(ctx, domain.EventStockUpdated, domain.Product{ID: 1, Size: "1L", Stock: 28})

	name, err := nextEventName(reader)
	s.Require().NoError(err)
	s.Equal(string(domain.EventStockUpdated), name)
}

func (s *EventsHandlerTestSuite) TestAdminStreamGetsEverything() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	reader := s.subscribe(ctx, AdminEventsRoute, s.adminToken)

	s.hub.Publish(ctx, domain.EventNewOrder, map[string]string{"orderCode": "ORD-261016-ABCDE"})

	name, err := nextEventName(reader)
	s.Require().NoError(err)
	s.Equal(string(domain.EventNewOrder), name)
}

func (s *EventsHandlerTestSuite) TestAdminStreamRequiresToken() {
	res, err := s.server.Client().Get(s.server.URL + RouteGroup + AdminEventsRoute)
	s.Require().NoError(err)
	res.Body.Close()
	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
