package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/pkg/idgen"
	"github.com/khoi-stripe/danddy/internal/transport"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

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

func (s *ClientTestSuite) newClient(baseURL, token string) *transport.Client {
	client, err := transport.New(&transport.Config{
		BaseURL:     baseURL,
		Tokens:      &staticTokens{token: token},
		IDGenerator: idgen.NewUUID("req"),
	})
	s.Require().NoError(err)
	return client
}

func (s *ClientTestSuite) TestConfigRequiresBaseURL() {
	_, err := transport.New(&transport.Config{})
	s.Assert().Error(err)
}

func (s *ClientTestSuite) TestSuccessDecodesBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Assert().Equal(http.MethodGet, r.Method)
		s.Assert().Equal("/auth/me", r.URL.Path)
		s.Assert().Equal("Bearer tok-123", r.Header.Get("Authorization"))
		s.Assert().NotEmpty(r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"id": 1, "username": "alice"}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok-123")

	type user struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
	}
	result, err := transport.Do[user](s.ctx, client, transport.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})

	s.Require().NoError(err)
	s.Assert().Equal(user{ID: 1, Username: "alice"}, result)
}

func (s *ClientTestSuite) TestNoAuthSkipsHeader() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Assert().Empty(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok-123")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		NoAuth: true,
	})
	s.Assert().NoError(err)
}

func (s *ClientTestSuite) TestBodySerialization() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Assert().Equal("application/json", r.Header.Get("Content-Type"))
		var payload map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&payload))
		s.Assert().Equal("a@x.com", payload["email"])
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, "")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   map[string]string{"email": "a@x.com", "password": "pw"},
		NoAuth: true,
	})
	s.Assert().NoError(err)
}

func (s *ClientTestSuite) TestUnauthorized() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := s.newClient(server.URL, "expired")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsUnauthorized(err))
}

func (s *ClientTestSuite) TestClientErrorSurfacesDetail() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Email already registered"}`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, "")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		NoAuth: true,
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsClientError(err))
	s.Assert().Equal("Email already registered", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestClientErrorWithoutDetail() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok")

	err := client.Execute(s.ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/characters/99",
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsClientError(err))
	s.Assert().Equal("client error: 404", errors.GetMessage(err))
}

func (s *ClientTestSuite) TestServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodGet,
		Path:   "/characters/",
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsServerError(err))
}

func (s *ClientTestSuite) TestDecodingError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok")

	type user struct {
		ID int `json:"id"`
	}
	_, err := transport.Do[user](s.ctx, client, transport.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsDecoding(err))
}

func (s *ClientTestSuite) TestNetworkError() {
	// Port 1 should refuse connections
	client := s.newClient("http://127.0.0.1:1", "tok")

	_, err := transport.Do[map[string]any](s.ctx, client, transport.Request{
		Method: http.MethodGet,
		Path:   "/characters/",
	})

	s.Require().Error(err)
	s.Assert().True(errors.IsNetwork(err))
}

func (s *ClientTestSuite) TestExecuteIgnoresEmptyBody() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := s.newClient(server.URL, "tok")

	err := client.Execute(s.ctx, transport.Request{
		Method: http.MethodDelete,
		Path:   "/characters/1",
	})
	s.Assert().NoError(err)
}
