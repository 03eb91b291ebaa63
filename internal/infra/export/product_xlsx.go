package export

import (
	"io"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/tealeg/xlsx"
)

const (
	XLSXContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ProductSheetName = "Products"
	timeLayout       = "2006-01-02 15:04:05"
)

var productHeaders = []string{
	"ID", "Name", "Slug", "Category", "MetalType",
	"WeightGrams", "PricePerGram", "Price", "Featured",
	"AverageRating", "ReviewCount", "LikeCount",
	"CreatedAt", "UpdatedAt",
}

// WriteProductsXLSX 後台匯出商品清單, 價格為目前快照
func WriteProductsXLSX(w io.Writer, products []model.ProductView) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(ProductSheetName)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range productHeaders {
		headerRow.AddCell().SetString(h)
	}

	for i := range products {
		p := &products[i]
		row := sheet.AddRow()

		row.AddCell().SetString(p.ID.String())
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(string(p.Category))
		row.AddCell().SetString(string(p.MetalType))
		row.AddCell().SetFloat(p.WeightGrams.InexactFloat64())
		row.AddCell().SetFloat(p.PricePerGram.InexactFloat64())
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetBool(p.IsFeatured)
		row.AddCell().SetFloat(p.AverageRating.InexactFloat64())
		row.AddCell().SetInt64(p.ReviewCount)
		row.AddCell().SetInt64(p.LikeCount)
		row.AddCell().SetString(p.CreatedAt.Format(timeLayout))
		row.AddCell().SetString(p.UpdatedAt.Format(timeLayout))
	}

	return file.Write(w)
}
