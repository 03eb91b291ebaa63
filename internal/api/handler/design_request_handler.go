package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
)

type DesignRequestHandler struct {
	designService service.IDesignRequestService
}

func NewDesignRequestHandler(designService service.IDesignRequestService) *DesignRequestHandler {
	if designService == nil {
		panic("designService cannot be nil")
	}
	return &DesignRequestHandler{designService: designService}
}

// @Summary submit custom design request
// @Tags design-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateDesignRequestDTO true "design request"
// @Success 200 {object} api.Response{data=dto.DesignRequestDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /design-requests [post]
func (h *DesignRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDesignRequestDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	created, err := h.designService.CreateRequest(ctx, util.GetUserIDFromContext(ctx), service.DesignRequestFields{
		DesignType:           req.DesignType,
		MaterialPreference:   req.MaterialPreference,
		BudgetRange:          req.BudgetRange,
		Description:          req.Description,
		SpecialRequirements:  req.SpecialRequirements,
		ContactPhone:         req.ContactPhone,
		PreferredContactTime: req.PreferredContactTime,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertDesignRequestToDTO(*created), nil)
}

// @Summary my design requests
// @Tags design-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]dto.DesignRequestDTO} "success"
// @Router /design-requests [get]
func (h *DesignRequestHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqs, err := h.designService.ListMyRequests(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertDesignRequestsToDTO(reqs), nil)
}

// @Summary list design requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "filter by status"
// @Success 200 {object} api.Response{data=[]dto.DesignRequestDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Router /admin/design-requests [get]
func (h *DesignRequestHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	var status *model.DesignStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := model.DesignStatus(v)
		status = &s
	}

	ctx := r.Context()
	reqs, err := h.designService.ListRequests(ctx, util.GetUserIDFromContext(ctx), status)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertDesignRequestsToDTO(reqs), nil)
}

// @Summary update design request status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "design request id"
// @Param body body dto.UpdateDesignStatusDTO true "status and optional notes or estimate"
// @Success 200 {object} api.Response{data=dto.DesignRequestDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Failure 405 {object} api.ResponseError{data=string} "InvalidOperationCode, transition not allowed"
// @Router /admin/design-requests/{id} [patch]
func (h *DesignRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.UpdateDesignStatusDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	updated, err := h.designService.UpdateStatus(ctx, util.GetUserIDFromContext(ctx), id, service.DesignStatusUpdate{
		Status:                  model.DesignStatus(req.Status),
		AdminNotes:              req.AdminNotes,
		EstimatedPrice:          req.EstimatedPrice,
		EstimatedCompletionDate: req.EstimatedCompletionDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertDesignRequestToDTO(*updated), nil)
}
