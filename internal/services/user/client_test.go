package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/services/user"
	"github.com/khoi-stripe/danddy/internal/transport"
)

type ClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ClientTestSuite) newService(handler http.HandlerFunc) (user.Service, func()) {
	server := httptest.NewServer(handler)

	httpTransport, err := transport.New(&transport.Config{BaseURL: server.URL})
	s.Require().NoError(err)

	svc, err := user.New(&user.Config{Transport: httpTransport})
	s.Require().NoError(err)

	return svc, server.Close
}

func (s *ClientTestSuite) TestList() {
	svc, done := s.newService(func(w http.ResponseWriter, r *http.Request) {
		s.Assert().Equal(http.MethodGet, r.Method)
		s.Assert().Equal("/users/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 1, "username": "alice", "role": "player"}, {"id": 2, "username": "bob", "role": "dm"}]`))
	})
	defer done()

	out, err := svc.List(s.ctx, &user.ListInput{})

	s.Require().NoError(err)
	s.Require().Len(out.Users, 2)
	s.Assert().Equal("bob", out.Users[1].Username)
}

func (s *ClientTestSuite) TestGet() {
	svc, done := s.newService(func(w http.ResponseWriter, r *http.Request) {
		s.Assert().Equal("/users/2", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 2, "username": "bob", "role": "dm"}`))
	})
	defer done()

	out, err := svc.Get(s.ctx, &user.GetInput{UserID: 2})

	s.Require().NoError(err)
	s.Assert().Equal("bob", out.User.Username)
}

func (s *ClientTestSuite) TestGetRejectsNonPositiveID() {
	svc, done := s.newService(func(http.ResponseWriter, *http.Request) {
		s.FailNow("no request expected")
	})
	defer done()

	_, err := svc.Get(s.ctx, &user.GetInput{UserID: -1})

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
