package service

import (
	"time"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	mock_producer "github.com/Sathish182603/Gleam-Heaven/internal/infra/producer/mock"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_decorator"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestGetRatesEmpty() {
	rates, err := s.rateService.GetRates(s.ctx)
	require.NoError(s.T(), err)
	require.Empty(s.T(), rates)

	_, err = s.rateService.GetRate(s.ctx, model.MetalGold)
	requireCode(s.T(), err, int(er.NotFoundCode))
}

func (s *ServiceTestSuite) TestSetRateOverwritesAndKeepsHistory() {
	s.setRate(model.MetalGold, 6000)
	s.setRate(model.MetalGold, 7000)

	rate, err := s.rateService.GetRate(s.ctx, model.MetalGold)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "7000", rate.RatePerGram)
	require.Equal(s.T(), s.admin, *rate.UpdatedBy)

	history, err := s.rateService.ListRateHistory(s.ctx, s.admin, model.MetalGold, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), history, 2)
	requireDecimal(s.T(), "7000", history[0].RatePerGram)
	require.True(s.T(), history[0].PreviousRate.Valid)
	requireDecimal(s.T(), "6000", history[0].PreviousRate.Decimal)
	require.False(s.T(), history[1].PreviousRate.Valid)
}

func (s *ServiceTestSuite) TestSetRateValidation() {
	_, err := s.rateService.SetRate(s.ctx, s.customer, model.MetalGold, decimal.NewFromInt(6000))
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	_, err = s.rateService.SetRate(s.ctx, uuid.Nil, model.MetalGold, decimal.NewFromInt(6000))
	requireCode(s.T(), err, int(er.UnauthenticatedCode))

	_, err = s.rateService.SetRate(s.ctx, s.admin, model.MetalType("platinum"), decimal.NewFromInt(6000))
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = s.rateService.SetRate(s.ctx, s.admin, model.MetalGold, decimal.Zero)
	requireCode(s.T(), err, int(er.BadRequestCode))

	// 四捨五入到分之後為 0
	_, err = s.rateService.SetRate(s.ctx, s.admin, model.MetalGold, decimal.RequireFromString("0.004"))
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = s.rateService.SetRate(s.ctx, s.admin, model.MetalGold, decimal.RequireFromString("10000000000"))
	requireCode(s.T(), err, int(er.BadRequestCode))

	rates, err := s.rateService.GetRates(s.ctx)
	require.NoError(s.T(), err)
	require.Empty(s.T(), rates)

	rate, err := s.rateService.SetRate(s.ctx, s.admin, model.MetalGold, decimal.RequireFromString("0.005"))
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "0.01", rate.RatePerGram)

	_, err = s.rateService.ListRateHistory(s.ctx, s.customer, model.MetalGold, 10)
	requireCode(s.T(), err, int(er.UnauthorizedCode))
}

func (s *ServiceTestSuite) TestSetRatesBoth() {
	gold := decimal.NewFromInt(6300)
	silver := decimal.NewFromInt(85)

	saved, err := s.rateService.SetRates(s.ctx, s.admin, RateUpdate{Gold: &gold, Silver: &silver})
	require.NoError(s.T(), err)
	require.Len(s.T(), saved, 2)

	rates, err := s.rateService.GetRates(s.ctx)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "6300", rates[model.MetalGold].RatePerGram)
	requireDecimal(s.T(), "85", rates[model.MetalSilver].RatePerGram)

	_, err = s.rateService.SetRates(s.ctx, s.admin, RateUpdate{})
	requireCode(s.T(), err, int(er.BadRequestCode))

	// 其中一筆錯誤時全部不更新
	bad := decimal.NewFromInt(-1)
	_, err = s.rateService.SetRates(s.ctx, s.admin, RateUpdate{Gold: &gold, Silver: &bad})
	requireCode(s.T(), err, int(er.BadRequestCode))
}

func (s *ServiceTestSuite) TestSetRatePublishesEvent() {
	ctrl := gomock.NewController(s.T())
	publisher := mock_producer.NewMockIEventPublisher(ctrl)

	published := make(chan model.Event, 1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, event model.Event) error {
			published <- event
			return nil
		}).Times(1)

	cache := redis_decorator.NewCacheAsideMetalRateRepo(s.store, nil, time.Minute)
	svc := NewMetalRateService(s.store, cache, publisher)

	_, err := svc.SetRate(s.ctx, s.admin, model.MetalSilver, decimal.NewFromInt(90))
	require.NoError(s.T(), err)

	select {
	case event := <-published:
		require.Equal(s.T(), model.MetalRateUpdatedEventName, event.Type())
		require.Equal(s.T(), "silver", event.Key())
		updated, ok := event.(model.MetalRateUpdatedEvent)
		require.True(s.T(), ok)
		requireDecimal(s.T(), "90", updated.RatePerGram)
		require.Equal(s.T(), s.admin, updated.UpdatedBy)
	case <-time.After(2 * time.Second):
		s.T().Fatal("metal rate event not published")
	}
}
