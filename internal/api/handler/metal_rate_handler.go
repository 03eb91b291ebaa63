package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
	"github.com/go-chi/chi/v5"
)

type MetalRateHandler struct {
	rateService service.IMetalRateService
}

func NewMetalRateHandler(rateService service.IMetalRateService) *MetalRateHandler {
	if rateService == nil {
		panic("rateService cannot be nil")
	}
	return &MetalRateHandler{rateService: rateService}
}

// @Summary list metal rates
// @Tags metal-rates
// @Produce json
// @Success 200 {object} api.Response{data=[]dto.MetalRateDTO} "success"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /metal-rates [get]
func (h *MetalRateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.GetRates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.MetalRateDTO, 0, len(rates))
	for _, metal := range model.AllMetalTypes {
		if rate, ok := rates[metal]; ok {
			out = append(out, convertMetalRateToDTO(rate))
		}
	}
	api.SuccessJSON(w, out, nil)
}

// @Summary set metal rates
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SetRatesDTO true "gold and/or silver rate per gram"
// @Success 200 {object} api.Response{data=[]dto.MetalRateDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Router /admin/metal-rates [put]
func (h *MetalRateHandler) SetRates(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRatesDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	rates, err := h.rateService.SetRates(ctx, util.GetUserIDFromContext(ctx), service.RateUpdate{
		Gold:   req.Gold,
		Silver: req.Silver,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.MetalRateDTO, 0, len(rates))
	for _, rate := range rates {
		out = append(out, convertMetalRateToDTO(rate))
	}
	api.SuccessJSON(w, out, nil)
}

// @Summary metal rate history
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param metal path string true "gold or silver"
// @Param limit query int false "max rows"
// @Success 200 {object} api.Response{data=[]dto.RateHistoryDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Router /admin/metal-rates/{metal}/history [get]
func (h *MetalRateHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequest(w, "invalid limit")
		return
	}

	ctx := r.Context()
	metal := model.MetalType(chi.URLParam(r, "metal"))
	history, err := h.rateService.ListRateHistory(ctx, util.GetUserIDFromContext(ctx), metal, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.RateHistoryDTO, 0, len(history))
	for _, h := range history {
		out = append(out, convertRateHistoryToDTO(h))
	}
	api.SuccessJSON(w, out, nil)
}
