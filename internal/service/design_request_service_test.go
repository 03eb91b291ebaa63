package service

import (
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	mock_producer "github.com/Sathish182603/Gleam-Heaven/internal/infra/producer/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) createDesignRequest() *model.CustomDesignRequest {
	req, err := s.designService.CreateRequest(s.ctx, s.customer, DesignRequestFields{
		DesignType:         " Necklace ",
		MaterialPreference: "gold",
		BudgetRange:        "50000-100000",
		Description:        "Temple style necklace with peacock motif",
		ContactPhone:       "+91 98765 43210",
	})
	require.NoError(s.T(), err)
	return req
}

func (s *ServiceTestSuite) TestCreateDesignRequest() {
	req := s.createDesignRequest()
	require.Equal(s.T(), model.DesignPending, req.Status)
	require.Equal(s.T(), "Necklace", req.DesignType)
	require.False(s.T(), req.EstimatedPrice.Valid)

	_, err := s.designService.CreateRequest(s.ctx, s.customer, DesignRequestFields{Description: "x"})
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = s.designService.CreateRequest(s.ctx, s.customer, DesignRequestFields{DesignType: "Ring", Description: "  "})
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = s.designService.CreateRequest(s.ctx, uuid.Nil, DesignRequestFields{DesignType: "Ring", Description: "x"})
	requireCode(s.T(), err, int(er.UnauthenticatedCode))

	mine, err := s.designService.ListMyRequests(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 1)

	others, err := s.designService.ListMyRequests(s.ctx, s.admin)
	require.NoError(s.T(), err)
	require.Empty(s.T(), others)
}

func (s *ServiceTestSuite) TestListDesignRequestsAdminOnly() {
	req := s.createDesignRequest()
	s.createDesignRequest()

	_, err := s.designService.ListRequests(s.ctx, s.customer, nil)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	all, err := s.designService.ListRequests(s.ctx, s.admin, nil)
	require.NoError(s.T(), err)
	require.Len(s.T(), all, 2)

	_, err = s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignInReview})
	require.NoError(s.T(), err)

	status := model.DesignInReview
	filtered, err := s.designService.ListRequests(s.ctx, s.admin, &status)
	require.NoError(s.T(), err)
	require.Len(s.T(), filtered, 1)
	require.Equal(s.T(), req.ID, filtered[0].ID)

	bad := model.DesignStatus("shipped")
	_, err = s.designService.ListRequests(s.ctx, s.admin, &bad)
	requireCode(s.T(), err, int(er.BadRequestCode))
}

func (s *ServiceTestSuite) TestDesignStatusFlow() {
	req := s.createDesignRequest()

	_, err := s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignApproved})
	requireCode(s.T(), err, int(er.InvalidOperationCode))

	_, err = s.designService.UpdateStatus(s.ctx, s.customer, req.ID, DesignStatusUpdate{Status: model.DesignInReview})
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	_, err = s.designService.UpdateStatus(s.ctx, s.admin, uuid.New(), DesignStatusUpdate{Status: model.DesignInReview})
	requireCode(s.T(), err, int(er.NotFoundCode))

	negative := decimal.NewFromInt(-1)
	_, err = s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignInReview, EstimatedPrice: &negative})
	requireCode(s.T(), err, int(er.BadRequestCode))

	for _, next := range []model.DesignStatus{model.DesignInReview, model.DesignApproved, model.DesignInProgress, model.DesignCompleted} {
		updated, err := s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: next})
		require.NoError(s.T(), err)
		require.Equal(s.T(), next, updated.Status)
	}

	_, err = s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignCancelled})
	requireCode(s.T(), err, int(er.InvalidOperationCode))
}

func (s *ServiceTestSuite) TestDesignNotesOnlyUpdate() {
	req := s.createDesignRequest()

	notes := "  Called customer, sketch in progress  "
	price := decimal.RequireFromString("75000.499")
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	updated, err := s.designService.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{
		Status:                  model.DesignPending,
		AdminNotes:              &notes,
		EstimatedPrice:          &price,
		EstimatedCompletionDate: &due,
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.DesignPending, updated.Status)
	require.Equal(s.T(), "Called customer, sketch in progress", updated.AdminNotes)
	require.True(s.T(), updated.EstimatedPrice.Valid)
	requireDecimal(s.T(), "75000.5", updated.EstimatedPrice.Decimal)

	mine, err := s.designService.ListMyRequests(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 1)
	require.Equal(s.T(), updated.AdminNotes, mine[0].AdminNotes)
	require.NotNil(s.T(), mine[0].EstimatedCompletionDate)
	require.True(s.T(), due.Equal(*mine[0].EstimatedCompletionDate))
}

func (s *ServiceTestSuite) TestDesignStatusChangePublishesEvent() {
	ctrl := gomock.NewController(s.T())
	publisher := mock_producer.NewMockIEventPublisher(ctrl)

	published := make(chan model.Event, 2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, event model.Event) error {
			published <- event
			return nil
		}).Times(1)

	svc := NewDesignRequestService(s.store, publisher)
	req := s.createDesignRequest()

	notes := "noted"
	_, err := svc.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignPending, AdminNotes: &notes})
	require.NoError(s.T(), err)
	_, err = svc.UpdateStatus(s.ctx, s.admin, req.ID, DesignStatusUpdate{Status: model.DesignInReview})
	require.NoError(s.T(), err)

	select {
	case event := <-published:
		changed, ok := event.(model.DesignRequestStatusChangedEvent)
		require.True(s.T(), ok)
		require.Equal(s.T(), model.DesignPending, changed.From)
		require.Equal(s.T(), model.DesignInReview, changed.To)
		require.Equal(s.T(), s.customer, changed.UserID)
		require.Equal(s.T(), req.ID.String(), event.Key())
	case <-time.After(2 * time.Second):
		s.T().Fatal("design request event not published")
	}
}
