package service

import (
	"bytes"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

// 設定牌價 6000 → 建立 10g 金戒 → 售價 60000 → 牌價改 7000 售價不變 → 重新存檔後 70000
func (s *ServiceTestSuite) TestPriceSnapshotEndToEnd() {
	s.setRate(model.MetalGold, 6000)
	ring := s.createProduct("Solitaire Ring", model.MetalGold, "10")
	requireDecimal(s.T(), "6000", ring.PricePerGram)
	requireDecimal(s.T(), "60000", ring.Price)

	s.setRate(model.MetalGold, 7000)
	got, err := s.productService.GetProduct(s.ctx, ring.ID)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "6000", got.PricePerGram)
	requireDecimal(s.T(), "60000", got.Price)

	updated, err := s.productService.UpdateProduct(s.ctx, s.admin, ring.ID, ProductFields{
		Name:        ring.Name,
		Description: ring.Description,
		Category:    ring.Category,
		MetalType:   ring.MetalType,
		WeightGrams: ring.WeightGrams,
	})
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "7000", updated.PricePerGram)
	requireDecimal(s.T(), "70000", updated.Price)
}

func (s *ServiceTestSuite) TestRepriceProduct() {
	s.setRate(model.MetalSilver, 80)
	p := s.createProduct("Silver Band", model.MetalSilver, "5")
	s.setRate(model.MetalSilver, 90)

	view, err := s.productService.RepriceProduct(s.ctx, s.admin, p.ID)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "90", view.PricePerGram)
	requireDecimal(s.T(), "450", view.Price)
	require.Equal(s.T(), p.Name, view.Name)

	_, err = s.productService.RepriceProduct(s.ctx, s.admin, uuid.New())
	requireCode(s.T(), err, int(er.NotFoundCode))
}

func (s *ServiceTestSuite) TestCreateProductWithoutRate() {
	_, err := s.productService.CreateProduct(s.ctx, s.admin, ProductFields{
		Name:        "Gold Ring",
		Description: "ring",
		Category:    model.CategoryRings,
		MetalType:   model.MetalGold,
		WeightGrams: decimal.NewFromInt(5),
	})
	requireCode(s.T(), err, int(er.InvalidOperationCode))

	views, total, err := s.productService.ListProducts(s.ctx, model.ProductFilter{})
	require.NoError(s.T(), err)
	require.Zero(s.T(), total)
	require.Empty(s.T(), views)
}

func (s *ServiceTestSuite) TestCreateProductValidation() {
	s.setRate(model.MetalGold, 6000)
	valid := ProductFields{
		Name:        "Gold Ring",
		Description: "ring",
		Category:    model.CategoryRings,
		MetalType:   model.MetalGold,
		WeightGrams: decimal.NewFromInt(5),
	}

	testCases := []struct {
		name   string
		modify func(f *ProductFields)
	}{
		{name: "empty name", modify: func(f *ProductFields) { f.Name = "  " }},
		{name: "empty description", modify: func(f *ProductFields) { f.Description = "" }},
		{name: "bad category", modify: func(f *ProductFields) { f.Category = "bracelets" }},
		{name: "bad metal", modify: func(f *ProductFields) { f.MetalType = "platinum" }},
		{name: "zero weight", modify: func(f *ProductFields) { f.WeightGrams = decimal.Zero }},
		{name: "weight rounds to zero", modify: func(f *ProductFields) { f.WeightGrams = decimal.RequireFromString("0.0004") }},
		{name: "weight too large", modify: func(f *ProductFields) { f.WeightGrams = decimal.RequireFromString("10000000") }},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fields := valid
			tc.modify(&fields)
			_, err := s.productService.CreateProduct(s.ctx, s.admin, fields)
			requireCode(s.T(), err, int(er.BadRequestCode))
		})
	}

	_, err := s.productService.CreateProduct(s.ctx, s.customer, valid)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	view, err := s.productService.CreateProduct(s.ctx, s.admin, valid)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "gold-ring", view.Slug)

	tiny := valid
	tiny.Name = "Gold Stud"
	tiny.WeightGrams = decimal.RequireFromString("0.0006")
	view, err = s.productService.CreateProduct(s.ctx, s.admin, tiny)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "0.001", view.WeightGrams)
	requireDecimal(s.T(), "6", view.Price)
}

func (s *ServiceTestSuite) TestListProductsEnriched() {
	s.setRate(model.MetalGold, 6000)
	s.setRate(model.MetalSilver, 80)
	ring := s.createProduct("Aurora Ring", model.MetalGold, "2")
	s.createProduct("Bloom Band", model.MetalSilver, "3")

	_, err := s.reviewService.CreateReview(s.ctx, s.customer, ring.ID, 5, "stunning")
	require.NoError(s.T(), err)
	_, err = s.reviewService.CreateReview(s.ctx, s.admin, ring.ID, 4, "")
	require.NoError(s.T(), err)
	_, err = s.likeService.ToggleLike(s.ctx, s.customer, ring.ID)
	require.NoError(s.T(), err)

	views, total, err := s.productService.ListProducts(s.ctx, model.ProductFilter{})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, total)
	require.Len(s.T(), views, 2)

	first := views[0]
	require.Equal(s.T(), ring.ID, first.ID)
	requireDecimal(s.T(), "12000", first.Price)
	requireDecimal(s.T(), "4.5", first.AverageRating)
	require.EqualValues(s.T(), 2, first.ReviewCount)
	require.EqualValues(s.T(), 1, first.LikeCount)

	silver := model.MetalSilver
	views, total, err = s.productService.ListProducts(s.ctx, model.ProductFilter{MetalType: &silver})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 1, total)
	require.Equal(s.T(), "Bloom Band", views[0].Name)
	require.True(s.T(), views[0].AverageRating.IsZero())

	bad := model.Category("anklets")
	_, _, err = s.productService.ListProducts(s.ctx, model.ProductFilter{Category: &bad})
	requireCode(s.T(), err, int(er.BadRequestCode))
}

func (s *ServiceTestSuite) TestDeleteProductCascades() {
	s.setRate(model.MetalGold, 6000)
	p := s.createProduct("Gold Ring", model.MetalGold, "2")

	_, err := s.cartService.AddItem(s.ctx, s.customer, p.ID, 1)
	require.NoError(s.T(), err)
	_, err = s.likeService.ToggleLike(s.ctx, s.customer, p.ID)
	require.NoError(s.T(), err)

	err = s.productService.DeleteProduct(s.ctx, s.customer, p.ID)
	requireCode(s.T(), err, int(er.UnauthorizedCode))

	require.NoError(s.T(), s.productService.DeleteProduct(s.ctx, s.admin, p.ID))

	cart, err := s.cartService.GetCart(s.ctx, s.customer)
	require.NoError(s.T(), err)
	require.Empty(s.T(), cart.Items)

	_, err = s.productService.GetProduct(s.ctx, p.ID)
	requireCode(s.T(), err, int(er.NotFoundCode))

	err = s.productService.DeleteProduct(s.ctx, s.admin, p.ID)
	requireCode(s.T(), err, int(er.NotFoundCode))
}

func (s *ServiceTestSuite) TestSeedCollection() {
	items := []ProductFields{
		{Name: "Gold Choker", Description: "choker", Category: model.CategoryNecklaces, MetalType: model.MetalGold, WeightGrams: decimal.RequireFromString("18.7")},
		{Name: "Silver Pearl", Description: "pearl", Category: model.CategoryNecklaces, MetalType: model.MetalSilver, WeightGrams: decimal.RequireFromString("16.7")},
	}

	// 需要金銀牌價都已設定
	s.setRate(model.MetalGold, 6000)
	_, err := s.productService.SeedCollection(s.ctx, s.admin, items)
	requireCode(s.T(), err, int(er.InvalidOperationCode))

	s.setRate(model.MetalSilver, 80)
	products, err := s.productService.SeedCollection(s.ctx, s.admin, items)
	require.NoError(s.T(), err)
	require.Len(s.T(), products, 2)
	requireDecimal(s.T(), "6000", products[0].PricePerGram)
	requireDecimal(s.T(), "80", products[1].PricePerGram)

	_, err = s.productService.SeedCollection(s.ctx, s.customer, items)
	requireCode(s.T(), err, int(er.UnauthorizedCode))
}

func (s *ServiceTestSuite) TestExportProducts() {
	s.setRate(model.MetalGold, 6000)
	s.createProduct("Gold Ring", model.MetalGold, "10")

	var buf bytes.Buffer
	require.NoError(s.T(), s.productService.ExportProducts(s.ctx, s.admin, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, file.Sheets[0].MaxRow)
	require.Equal(s.T(), "Gold Ring", file.Sheets[0].Rows[1].Cells[1].Value)

	err = s.productService.ExportProducts(s.ctx, s.customer, &buf)
	requireCode(s.T(), err, int(er.UnauthorizedCode))
}
