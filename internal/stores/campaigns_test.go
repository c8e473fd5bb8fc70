package stores_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/errors"
	"github.com/khoi-stripe/danddy/internal/services/campaign"
	campaignmock "github.com/khoi-stripe/danddy/internal/services/campaign/mock"
	"github.com/khoi-stripe/danddy/internal/stores"
)

type CampaignStoreTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *campaignmock.MockService
	store       *stores.CampaignStore
	ctx         context.Context
}

func TestCampaignStoreSuite(t *testing.T) {
	suite.Run(t, new(CampaignStoreTestSuite))
}

func (s *CampaignStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = campaignmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	store, err := stores.NewCampaignStore(&stores.CampaignConfig{
		Service: s.mockService,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *CampaignStoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CampaignStoreTestSuite) seed(campaigns ...dnd5e.Campaign) {
	s.mockService.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(&campaign.ListOutput{Campaigns: campaigns}, nil)
	s.Require().NoError(s.store.FetchAll(s.ctx))
}

func (s *CampaignStoreTestSuite) TestFetchAllReplacesList() {
	s.seed(
		dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9},
		dnd5e.Campaign{ID: 2, Name: "Homebrew", DMID: 9},
	)

	s.Assert().Len(s.store.Snapshot().Items, 2)
}

func (s *CampaignStoreTestSuite) TestFetchOneLoadsDetailWithCharacters() {
	detail := &dnd5e.CampaignWithCharacters{
		Campaign: dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9},
		Characters: []dnd5e.Character{
			{ID: 4, Name: "Mira", Race: "elf", CharacterClass: "wizard", Level: 3},
		},
	}
	s.mockService.EXPECT().
		Get(s.ctx, &campaign.GetInput{CampaignID: 1}).
		Return(&campaign.GetOutput{Campaign: detail}, nil)

	s.Require().NoError(s.store.FetchOne(s.ctx, 1))

	snapshot := s.store.Snapshot()
	s.Require().NotNil(snapshot.Selected)
	s.Assert().Len(snapshot.Selected.Characters, 1)
}

func (s *CampaignStoreTestSuite) TestCreateAppendsConfirmed() {
	created := &dnd5e.Campaign{ID: 3, Name: "One Shot", DMID: 9}
	s.mockService.EXPECT().
		Create(s.ctx, &campaign.CreateInput{Name: "One Shot", Description: "single session"}).
		Return(&campaign.CreateOutput{Campaign: created}, nil)

	out, err := s.store.Create(s.ctx, "One Shot", "single session")

	s.Require().NoError(err)
	s.Assert().Equal(3, out.ID)
	s.Assert().Len(s.store.Snapshot().Items, 1)
}

func (s *CampaignStoreTestSuite) TestUpdateReplacesListEntryAndSelected() {
	s.seed(dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9})

	detail := &dnd5e.CampaignWithCharacters{
		Campaign: dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9},
	}
	s.mockService.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&campaign.GetOutput{Campaign: detail}, nil)
	s.Require().NoError(s.store.FetchOne(s.ctx, 1))

	renamed := &dnd5e.Campaign{ID: 1, Name: "Barovia", DMID: 9}
	s.mockService.EXPECT().
		Update(s.ctx, &campaign.UpdateInput{
			CampaignID: 1,
			Patch:      &dnd5e.CampaignUpdate{Name: dnd5e.String("Barovia")},
		}).
		Return(&campaign.UpdateOutput{Campaign: renamed}, nil)

	_, err := s.store.Update(s.ctx, 1, &dnd5e.CampaignUpdate{Name: dnd5e.String("Barovia")})

	s.Require().NoError(err)
	snapshot := s.store.Snapshot()
	s.Assert().Equal("Barovia", snapshot.Items[0].Name)
	s.Require().NotNil(snapshot.Selected)
	s.Assert().Equal("Barovia", snapshot.Selected.Name)
}

func (s *CampaignStoreTestSuite) TestDeleteFailureKeepsCampaign() {
	s.seed(dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9})

	s.mockService.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(nil, errors.ServerError("server error: 500"))

	err := s.store.Delete(s.ctx, 1)

	s.Require().Error(err)
	snapshot := s.store.Snapshot()
	s.Assert().Len(snapshot.Items, 1)
	s.Assert().Equal("server error: 500", snapshot.Error)
}

func (s *CampaignStoreTestSuite) TestDeleteRemoves() {
	s.seed(
		dnd5e.Campaign{ID: 1, Name: "Curse of Strahd", DMID: 9},
		dnd5e.Campaign{ID: 2, Name: "Homebrew", DMID: 9},
	)

	s.mockService.EXPECT().
		Delete(s.ctx, &campaign.DeleteInput{CampaignID: 1}).
		Return(&campaign.DeleteOutput{}, nil)

	s.Require().NoError(s.store.Delete(s.ctx, 1))

	snapshot := s.store.Snapshot()
	s.Require().Len(snapshot.Items, 1)
	s.Assert().Equal(2, snapshot.Items[0].ID)
}
