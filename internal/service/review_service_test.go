package service

import (
	"strings"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestCreateReviewValidation() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	testCases := []struct {
		name    string
		user    uuid.UUID
		product uuid.UUID
		rating  int
		comment string
		code    int
	}{
		{"rating zero", s.customer, p.ID, 0, "", int(er.BadRequestCode)},
		{"rating six", s.customer, p.ID, 6, "", int(er.BadRequestCode)},
		{"comment too long", s.customer, p.ID, 5, strings.Repeat("a", maxCommentLength+1), int(er.BadRequestCode)},
		{"anonymous", uuid.Nil, p.ID, 5, "", int(er.UnauthenticatedCode)},
		{"unknown product", s.customer, uuid.New(), 5, "", int(er.NotFoundCode)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.reviewService.CreateReview(s.ctx, tc.user, tc.product, tc.rating, tc.comment)
			requireCode(s.T(), err, tc.code)
		})
	}

	reviews, err := s.reviewService.ListProductReviews(s.ctx, p.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), reviews.Reviews)
	require.True(s.T(), reviews.Summary.Average.IsZero())
}

func (s *ServiceTestSuite) TestProductReviewsWithReviewer() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	_, err := s.reviewService.CreateReview(s.ctx, s.customer, p.ID, 5, "  Beautiful  ")
	require.NoError(s.T(), err)
	_, err = s.reviewService.CreateReview(s.ctx, s.admin, p.ID, 4, "")
	require.NoError(s.T(), err)

	// 沒有 profile 的使用者
	ghost := &model.User{Email: "ghost@gleam.test", PasswordHash: "x"}
	require.NoError(s.T(), s.store.CreateUser(s.ctx, ghost))
	_, err = s.reviewService.CreateReview(s.ctx, ghost.ID, p.ID, 4, "nice")
	require.NoError(s.T(), err)

	result, err := s.reviewService.ListProductReviews(s.ctx, p.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), result.Reviews, 3)
	require.Equal(s.T(), 3, result.Summary.Count)
	requireDecimal(s.T(), "4.3", result.Summary.Average)

	names := map[uuid.UUID]string{}
	for _, v := range result.Reviews {
		names[v.UserID] = v.Reviewer.DisplayName()
		if v.UserID == s.customer {
			require.Equal(s.T(), "Beautiful", v.Comment)
		}
	}
	require.Equal(s.T(), "Priya", names[s.customer])
	require.Equal(s.T(), model.AnonymousDisplayName, names[ghost.ID])
}

func (s *ServiceTestSuite) TestDeleteReviewOwnerOnly() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	review, err := s.reviewService.CreateReview(s.ctx, s.customer, p.ID, 5, "lovely")
	require.NoError(s.T(), err)

	err = s.reviewService.DeleteReview(s.ctx, s.admin, review.ID)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	require.NoError(s.T(), s.reviewService.DeleteReview(s.ctx, s.customer, review.ID))

	err = s.reviewService.DeleteReview(s.ctx, s.customer, review.ID)
	requireCode(s.T(), err, int(er.NotFoundCode))
}

func (s *ServiceTestSuite) TestUserAndRecentReviews() {
	s.setRate(model.MetalGold, 6000)
	ring := s.createProduct("Gold Ring", model.MetalGold, "2")
	band := s.createProduct("Gold Band", model.MetalGold, "1")

	_, err := s.reviewService.CreateReview(s.ctx, s.customer, ring.ID, 5, "first")
	require.NoError(s.T(), err)
	_, err = s.reviewService.CreateReview(s.ctx, s.customer, band.ID, 3, "second")
	require.NoError(s.T(), err)
	_, err = s.reviewService.CreateReview(s.ctx, s.admin, band.ID, 4, "third")
	require.NoError(s.T(), err)

	mine, err := s.reviewService.ListUserReviews(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 2)
	require.Equal(s.T(), "second", mine[0].Comment)
	require.Equal(s.T(), "Gold Band", mine[0].ProductName)
	require.Equal(s.T(), "Gold Ring", mine[1].ProductName)

	recent, err := s.reviewService.ListRecentReviews(s.ctx, 2)
	require.NoError(s.T(), err)
	require.Len(s.T(), recent, 2)
	require.Equal(s.T(), "third", recent[0].Comment)
	require.Equal(s.T(), "Admin", recent[0].Reviewer.DisplayName())

	recent, err = s.reviewService.ListRecentReviews(s.ctx, 0)
	require.NoError(s.T(), err)
	require.Len(s.T(), recent, 3)

	_, err = s.reviewService.ListUserReviews(s.ctx, uuid.Nil)
	requireCode(s.T(), err, int(er.UnauthenticatedCode))
}
