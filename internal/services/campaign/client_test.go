package campaign_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/services/campaign"
	"github.com/khoi-stripe/danddy/internal/transport"
)

type recordedRequest struct {
	method string
	path   string
	body   []byte
}

type ClientTestSuite struct {
	suite.Suite
	ctx      context.Context
	recorded *recordedRequest
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.recorded = &recordedRequest{}
}

func (s *ClientTestSuite) newService(status int, responseBody string) (campaign.Service, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.recorded.method = r.Method
		s.recorded.path = r.URL.Path
		s.recorded.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))

	httpTransport, err := transport.New(&transport.Config{BaseURL: server.URL})
	s.Require().NoError(err)

	svc, err := campaign.New(&campaign.Config{Transport: httpTransport})
	s.Require().NoError(err)

	return svc, server.Close
}

func (s *ClientTestSuite) TestList() {
	svc, done := s.newService(http.StatusOK, `[{"id": 1, "name": "Curse of Strahd", "dm_id": 9}]`)
	defer done()

	out, err := svc.List(s.ctx, &campaign.ListInput{})

	s.Require().NoError(err)
	s.Assert().Equal(http.MethodGet, s.recorded.method)
	s.Assert().Equal("/campaigns/", s.recorded.path)
	s.Require().Len(out.Campaigns, 1)
	s.Assert().Equal(9, out.Campaigns[0].DMID)
}

func (s *ClientTestSuite) TestGetDecodesCharacters() {
	svc, done := s.newService(http.StatusOK, `{
		"id": 1, "name": "Curse of Strahd", "dm_id": 9,
		"characters": [{"id": 4, "name": "Mira", "race": "elf", "character_class": "wizard", "level": 3}]
	}`)
	defer done()

	out, err := svc.Get(s.ctx, &campaign.GetInput{CampaignID: 1})

	s.Require().NoError(err)
	s.Assert().Equal("/campaigns/1", s.recorded.path)
	s.Require().Len(out.Campaign.Characters, 1)
	s.Assert().Equal("Mira", out.Campaign.Characters[0].Name)
}

func (s *ClientTestSuite) TestCreate() {
	svc, done := s.newService(http.StatusCreated, `{"id": 2, "name": "One Shot", "dm_id": 9}`)
	defer done()

	out, err := svc.Create(s.ctx, &campaign.CreateInput{Name: "One Shot", Description: "single session"})

	s.Require().NoError(err)
	s.Assert().Equal(http.MethodPost, s.recorded.method)
	s.Assert().Equal("/campaigns/", s.recorded.path)
	s.Assert().JSONEq(`{"name": "One Shot", "description": "single session"}`, string(s.recorded.body))
	s.Assert().Equal(2, out.Campaign.ID)
}

func (s *ClientTestSuite) TestCreateRequiresName() {
	svc, done := s.newService(http.StatusCreated, `{}`)
	defer done()

	_, err := svc.Create(s.ctx, &campaign.CreateInput{})

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Empty(s.recorded.method)
}

func (s *ClientTestSuite) TestUpdateSendsOnlySetFields() {
	svc, done := s.newService(http.StatusOK, `{"id": 1, "name": "Barovia", "dm_id": 9}`)
	defer done()

	_, err := svc.Update(s.ctx, &campaign.UpdateInput{
		CampaignID: 1,
		Patch:      &dnd5e.CampaignUpdate{Name: dnd5e.String("Barovia")},
	})

	s.Require().NoError(err)
	s.Assert().Equal(http.MethodPut, s.recorded.method)
	s.Assert().Equal("/campaigns/1", s.recorded.path)
	s.Assert().JSONEq(`{"name": "Barovia"}`, string(s.recorded.body))
}

func (s *ClientTestSuite) TestDelete() {
	svc, done := s.newService(http.StatusNoContent, "")
	defer done()

	_, err := svc.Delete(s.ctx, &campaign.DeleteInput{CampaignID: 1})

	s.Require().NoError(err)
	s.Assert().Equal(http.MethodDelete, s.recorded.method)
	s.Assert().Equal("/campaigns/1", s.recorded.path)
}
