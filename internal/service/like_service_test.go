package service

import (
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestToggleLikeSymmetry() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	liked, err := s.likeService.ToggleLike(s.ctx, s.customer, p.ID)
	require.NoError(s.T(), err)
	require.True(s.T(), liked)

	rows := s.countRows(&model.Like{}, "user_id = ? AND product_id = ?", s.customer, p.ID)
	require.EqualValues(s.T(), 1, rows)

	ids, err := s.likeService.LikedProductIDs(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []uuid.UUID{p.ID}, ids)

	products, err := s.likeService.ListLikedProducts(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), products, 1)
	requireDecimal(s.T(), "12000", products[0].Price)
	require.EqualValues(s.T(), 1, products[0].LikeCount)

	liked, err = s.likeService.ToggleLike(s.ctx, s.customer, p.ID)
	require.NoError(s.T(), err)
	require.False(s.T(), liked)

	rows = s.countRows(&model.Like{}, "user_id = ? AND product_id = ?", s.customer, p.ID)
	require.Zero(s.T(), rows)
}

func (s *ServiceTestSuite) TestToggleLikeErrors() {
	_, err := s.likeService.ToggleLike(s.ctx, uuid.Nil, uuid.New())
	requireCode(s.T(), err, int(er.UnauthenticatedCode))

	_, err = s.likeService.ToggleLike(s.ctx, s.customer, uuid.New())
	requireCode(s.T(), err, int(er.NotFoundCode))

	_, err = s.likeService.ListLikedProducts(s.ctx, uuid.Nil)
	requireCode(s.T(), err, int(er.UnauthenticatedCode))
}
