package service

import (
	"os"
	"path/filepath"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/config"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/stretchr/testify/require"
)

const testSeedYAML = `
rates:
  - metal_type: gold
    rate_per_gram: "6300.00"
  - metal_type: silver
    rate_per_gram: "85.00"
products:
  - name: Lakshmi Temple Necklace
    description: Antique finish temple necklace
    category: necklaces
    metal_type: gold
    weight_grams: "42.5"
    is_featured: true
  - name: Moonstone Silver Chain
    description: Sterling silver chain
    category: necklaces
    metal_type: silver
    weight_grams: "18"
`

func (s *ServiceTestSuite) loadSeed() *config.SeedConfig {
	path := filepath.Join(s.T().TempDir(), "seed.yaml")
	require.NoError(s.T(), os.WriteFile(path, []byte(testSeedYAML), 0o600))
	seed, err := config.LoadSeedConfig(path)
	require.NoError(s.T(), err)
	return seed
}

func (s *ServiceTestSuite) TestSeedCatalog() {
	seed := s.loadSeed()

	result, err := SeedCatalog(s.ctx, s.store, seed)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, result.RatesCreated)
	require.Equal(s.T(), 2, result.ProductsCreated)

	products, total, err := s.productService.ListProducts(s.ctx, model.ProductFilter{})
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 2, total)
	require.Equal(s.T(), "Lakshmi Temple Necklace", products[0].Name)
	require.True(s.T(), products[0].IsFeatured)
	requireDecimal(s.T(), "267750", products[0].Price)
	requireDecimal(s.T(), "1530", products[1].Price)

	// 第二次執行不覆寫牌價也不重複新增商品
	s.setRate(model.MetalGold, 7000)
	result, err = SeedCatalog(s.ctx, s.store, seed)
	require.NoError(s.T(), err)
	require.Zero(s.T(), result.RatesCreated)
	require.Zero(s.T(), result.ProductsCreated)

	rate, err := s.rateService.GetRate(s.ctx, model.MetalGold)
	require.NoError(s.T(), err)
	requireDecimal(s.T(), "7000", rate.RatePerGram)
}

func (s *ServiceTestSuite) TestSeedCatalogRejectsBadInput() {
	_, err := SeedCatalog(s.ctx, s.store, &config.SeedConfig{
		Rates: []config.SeedRate{{MetalType: "platinum", RatePerGram: "100"}},
	})
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = SeedCatalog(s.ctx, s.store, &config.SeedConfig{
		Rates: []config.SeedRate{{MetalType: "gold", RatePerGram: "-5"}},
	})
	requireCode(s.T(), err, int(er.BadRequestCode))

	_, err = ProductFieldsFromSeed([]config.SeedProduct{{Name: "x", WeightGrams: "heavy"}})
	requireCode(s.T(), err, int(er.BadRequestCode))
}
