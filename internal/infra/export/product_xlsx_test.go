package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestWriteProductsXLSX(t *testing.T) {
	now := time.Date(2025, 5, 1, 8, 30, 0, 0, time.UTC)
	product := model.Product{
		ID:           uuid.New(),
		Name:         "Solitaire Ring",
		Slug:         "solitaire-ring",
		Category:     model.CategoryRings,
		MetalType:    model.MetalGold,
		WeightGrams:  decimal.NewFromInt(10),
		PricePerGram: decimal.NewFromInt(6000),
		IsFeatured:   true,
		BaseModel:    model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}
	views := []model.ProductView{{
		Product: product,
		Price:   product.DisplayPrice(),
		ProductStats: model.ProductStats{
			AverageRating: decimal.RequireFromString("4.5"),
			ReviewCount:   2,
			LikeCount:     7,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteProductsXLSX(&buf, views))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	require.Equal(t, ProductSheetName, sheet.Name)
	require.Equal(t, 2, sheet.MaxRow)

	header := sheet.Rows[0].Cells
	require.Len(t, header, len(productHeaders))
	require.Equal(t, "Name", header[1].Value)

	row := sheet.Rows[1].Cells
	require.Equal(t, product.ID.String(), row[0].Value)
	require.Equal(t, "Solitaire Ring", row[1].Value)
	require.Equal(t, "gold", row[4].Value)
	require.Equal(t, "60000", row[7].Value)
	require.Equal(t, "7", row[11].Value)
	require.Equal(t, "2025-05-01 08:30:00", row[12].Value)
}

func TestWriteProductsXLSXEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProductsXLSX(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 1, file.Sheets[0].MaxRow)
}
