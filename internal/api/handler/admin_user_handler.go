package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
)

type AdminUserHandler struct {
	roleService service.IRoleService
}

func NewAdminUserHandler(roleService service.IRoleService) *AdminUserHandler {
	if roleService == nil {
		panic("roleService cannot be nil")
	}
	return &AdminUserHandler{roleService: roleService}
}

// @Summary list users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]dto.AdminUserDTO} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Router /admin/users [get]
func (h *AdminUserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := h.roleService.ListUsers(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]dto.AdminUserDTO, 0, len(users))
	for _, u := range users {
		roles := make([]string, 0, len(u.Roles))
		for _, role := range u.Roles {
			roles = append(roles, string(role))
		}
		out = append(out, dto.AdminUserDTO{
			UserID:      u.Profile.UserID.String(),
			Email:       u.Profile.Email,
			DisplayName: u.Profile.DisplayName,
			Roles:       roles,
			IsAdmin:     u.IsAdmin(),
		})
	}
	api.SuccessJSON(w, out, nil)
}

// @Summary promote user to admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 200 {object} api.Response{data=dto.PromoteResponse} "success"
// @Failure 470 {object} api.ResponseError{data=string} "UserNotFoundCode"
// @Router /admin/users/{id}/promote [post]
func (h *AdminUserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.roleService.Promote(ctx, util.GetUserIDFromContext(ctx), id); err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.PromoteResponse{UserID: id.String()}, nil)
}

// @Summary promote user to admin by email
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PromoteByEmailDTO true "email"
// @Success 200 {object} api.Response{data=dto.PromoteResponse} "success"
// @Failure 470 {object} api.ResponseError{data=string} "UserNotFoundCode"
// @Router /admin/users/promote-by-email [post]
func (h *AdminUserHandler) PromoteByEmail(w http.ResponseWriter, r *http.Request) {
	var req dto.PromoteByEmailDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	id, err := h.roleService.PromoteByEmail(ctx, util.GetUserIDFromContext(ctx), req.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.PromoteResponse{UserID: id.String()}, nil)
}

// @Summary remove admin role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "user id"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 405 {object} api.ResponseError{data=string} "InvalidOperationCode, self or last admin"
// @Router /admin/users/{id}/admin [delete]
func (h *AdminUserHandler) Demote(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.roleService.Demote(ctx, util.GetUserIDFromContext(ctx), id); err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, "demoted", nil)
}
