package service

import (
	"sync"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (s *ServiceTestSuite) TestAddItemTwiceIncrementsSingleRow() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	_, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
	require.NoError(s.T(), err)
	item, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, item.Quantity)

	rows := s.countRows(&model.CartItem{}, "user_id = ?", s.customer)
	require.EqualValues(s.T(), 1, rows)
}

func (s *ServiceTestSuite) TestAddItemConcurrent() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	// sqlite 測試連線只有一條, 呼叫會被排隊執行
	// 同一列的原子累加由 store 層 TestAddCartItemTwiceIncrementsSingleRow 覆蓋
	const n = 5
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(s.T(), err)
	}

	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)
	require.Equal(s.T(), 5, cart.Items[0].Quantity)
}

func (s *ServiceTestSuite) TestCartQuantityLimit() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	_, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, model.MaxCartQuantity+1)
	requireCode(s.T(), err, int(er.BadRequestCode))
	require.Zero(s.T(), s.countRows(&model.CartItem{}, "user_id = ?", s.customer))

	item, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, model.MaxCartQuantity-1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.MaxCartQuantity-1, item.Quantity)

	// 累加到上限可以, 超過就拒絕且數量不變
	item, err = s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), model.MaxCartQuantity, item.Quantity)

	_, err = s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
	requireCode(s.T(), err, int(er.BadRequestCode))

	err = s.cartService.SetQuantity(s.ctx, s.customer, p.ID, model.MaxCartQuantity+1)
	requireCode(s.T(), err, int(er.BadRequestCode))

	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)
	require.Equal(s.T(), model.MaxCartQuantity, cart.Items[0].Quantity)

	require.NoError(s.T(), s.cartService.SetQuantity(s.ctx, s.customer, p.ID, 5))
	item, err = s.cartService.AddItem(s.ctx, s.customer, p.ID, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, item.Quantity)
}

func (s *ServiceTestSuite) TestAddItemDefaultsAndErrors() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	item, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, item.Quantity)

	_, err = s.cartService.AddItem(s.ctx, uuid.Nil, p.ID, 1)
	requireCode(s.T(), err, int(er.UnauthenticatedCode))

	_, err = s.cartService.AddItem(s.ctx, s.customer, uuid.New(), 1)
	requireCode(s.T(), err, int(er.NotFoundCode))
}

func (s *ServiceTestSuite) TestSetQuantityFloor() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	_, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 3)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.cartService.SetQuantity(s.ctx, s.customer, p.ID, 7))
	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, cart.Items[0].Quantity)

	for _, qty := range []int{0, -2} {
		_, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
		require.NoError(s.T(), err)

		require.NoError(s.T(), s.cartService.SetQuantity(s.ctx, s.customer, p.ID, qty))
		rows := s.countRows(&model.CartItem{}, "user_id = ?", s.customer)
		require.Zero(s.T(), rows)
	}

	// 不在購物車內的商品直接設定數量
	require.NoError(s.T(), s.cartService.SetQuantity(s.ctx, s.customer, p.ID, 2))
	cart, err = s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, cart.Items[0].Quantity)
}

func (s *ServiceTestSuite) TestCartSubtotalAndSummary() {
	s.setRate(model.MetalGold, 100)
	s.setRate(model.MetalSilver, 50)
	gold := s.createProduct("Gold Ring", model.MetalGold, "2")
	silver := s.createProduct("Silver Ring", model.MetalSilver, "1")

	_, err := s.cartService.AddItem(s.ctx, s.customer, gold.ID, 3)
	require.NoError(s.T(), err)
	_, err = s.cartService.AddItem(s.ctx, s.customer, silver.ID, 1)
	require.NoError(s.T(), err)

	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, cart.Count)
	requireDecimal(s.T(), "650", cart.Subtotal)

	summary, err := s.cartService.Summary(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, summary.ItemCount)
	requireDecimal(s.T(), "650", summary.Total)
	require.True(s.T(), summary.Shipping.Equal(decimal.Zero))
}

func (s *ServiceTestSuite) TestRemoveAndClearScopedToUser() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")
	q := s.createProduct("Gold Band", model.MetalGold, "1")

	for _, user := range []uuid.UUID{s.customer, s.admin} {
		_, err := s.cartService.AddItem(s.ctx, user, p.ID, 1)
		require.NoError(s.T(), err)
		_, err = s.cartService.AddItem(s.ctx, user, q.ID, 1)
		require.NoError(s.T(), err)
	}

	require.NoError(s.T(), s.cartService.RemoveItem(s.ctx, s.customer, p.ID))
	require.NoError(s.T(), s.cartService.RemoveItem(s.ctx, s.customer, p.ID))
	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Len(s.T(), cart.Items, 1)

	require.NoError(s.T(), s.cartService.Clear(s.ctx, s.customer))
	cart, err = s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cart.Items)
	require.True(s.T(), cart.Subtotal.IsZero())

	other, err := s.cartService.GetCart(s.ctx, s.admin)
	require.NoError(s.T(), err)
	require.Len(s.T(), other.Items, 2)

	err = s.cartService.Clear(s.ctx, uuid.Nil)
	requireCode(s.T(), err, int(er.UnauthenticatedCode))
}
