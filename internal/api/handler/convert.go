package handler

import (
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
)

func convertProductViewToDTO(v model.ProductView) dto.ProductDTO {
	return dto.ProductDTO{
		ID:            v.ID.String(),
		Name:          v.Name,
		Slug:          v.Slug,
		Description:   v.Description,
		Category:      string(v.Category),
		MetalType:     string(v.MetalType),
		WeightGrams:   v.WeightGrams,
		PricePerGram:  v.PricePerGram,
		Price:         v.Price,
		IsFeatured:    v.IsFeatured,
		ImageURL:      v.ImageURL,
		AverageRating: v.AverageRating,
		ReviewCount:   v.ReviewCount,
		LikeCount:     v.LikeCount,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func convertProductViewsToDTO(views []model.ProductView) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(views))
	for _, v := range views {
		out = append(out, convertProductViewToDTO(v))
	}
	return out
}

func convertProductFields(d dto.ProductFieldsDTO) service.ProductFields {
	return service.ProductFields{
		Name:        d.Name,
		Description: d.Description,
		Category:    model.Category(d.Category),
		MetalType:   model.MetalType(d.MetalType),
		WeightGrams: d.WeightGrams,
		IsFeatured:  d.IsFeatured,
		ImageURL:    d.ImageURL,
	}
}

func convertMetalRateToDTO(rate model.MetalRate) dto.MetalRateDTO {
	return dto.MetalRateDTO{
		MetalType:   string(rate.MetalType),
		RatePerGram: rate.RatePerGram,
		UpdatedAt:   rate.UpdatedAt,
	}
}

func convertRateHistoryToDTO(h model.MetalRateHistory) dto.RateHistoryDTO {
	out := dto.RateHistoryDTO{
		MetalType:   string(h.MetalType),
		RatePerGram: h.RatePerGram,
		CreatedAt:   h.CreatedAt,
	}
	if h.PreviousRate.Valid {
		prev := h.PreviousRate.Decimal
		out.PreviousRate = &prev
	}
	if h.ChangedBy != nil {
		out.ChangedBy = h.ChangedBy.String()
	}
	return out
}

func convertCartToDTO(cart *model.Cart) dto.CartDTO {
	items := make([]dto.CartItemDTO, 0, len(cart.Items))
	for i := range cart.Items {
		item := &cart.Items[i]
		items = append(items, dto.CartItemDTO{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Name:      item.Product.Name,
			ImageURL:  item.Product.ImageURL,
			MetalType: string(item.Product.MetalType),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice(),
			LineTotal: item.LineTotal(),
		})
	}
	return dto.CartDTO{
		Items:    items,
		Count:    cart.Count,
		Subtotal: cart.Subtotal,
	}
}

func convertReviewViewToDTO(v model.ReviewView) dto.ReviewDTO {
	return dto.ReviewDTO{
		ID:           v.ID.String(),
		ProductID:    v.ProductID.String(),
		ProductName:  v.ProductName,
		UserID:       v.UserID.String(),
		ReviewerName: v.Reviewer.DisplayName(),
		Rating:       v.Rating,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt,
	}
}

func convertReviewViewsToDTO(views []model.ReviewView) []dto.ReviewDTO {
	out := make([]dto.ReviewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, convertReviewViewToDTO(v))
	}
	return out
}

func convertProfileToDTO(p model.Profile) dto.ProfileDTO {
	return dto.ProfileDTO{
		UserID:      p.UserID.String(),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
	}
}

func convertDesignRequestToDTO(req model.CustomDesignRequest) dto.DesignRequestDTO {
	next := req.Status.NextStatuses()
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, string(s))
	}

	out := dto.DesignRequestDTO{
		ID:                      req.ID.String(),
		UserID:                  req.UserID.String(),
		DesignType:              req.DesignType,
		MaterialPreference:      req.MaterialPreference,
		BudgetRange:             req.BudgetRange,
		Description:             req.Description,
		SpecialRequirements:     req.SpecialRequirements,
		ContactPhone:            req.ContactPhone,
		PreferredContactTime:    req.PreferredContactTime,
		Status:                  string(req.Status),
		NextStatuses:            nextStatuses,
		AdminNotes:              req.AdminNotes,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
		CreatedAt:               req.CreatedAt,
		UpdatedAt:               req.UpdatedAt,
	}
	if req.EstimatedPrice.Valid {
		price := req.EstimatedPrice.Decimal
		out.EstimatedPrice = &price
	}
	return out
}

func convertDesignRequestsToDTO(reqs []model.CustomDesignRequest) []dto.DesignRequestDTO {
	out := make([]dto.DesignRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, convertDesignRequestToDTO(r))
	}
	return out
}
