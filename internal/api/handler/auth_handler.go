package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
)

type AuthHandler struct {
	userService service.IUserService
}

func NewAuthHandler(userService service.IUserService) *AuthHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &AuthHandler{
		userService: userService,
	}
}

// @Summary sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignUpDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.UserDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 460 {object} api.ResponseError{data=string} "InvalidArgumentCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/signup [post]
func (a *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := a.userService.SignUp(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		writeError(w, err)
		return
	}

	api.SuccessJSON(w, dto.UserDTO{ID: user.ID.String(), Email: user.Email}, nil)
}

// @Summary sign in
// @use email and password to login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignInDTO true "email and password"
// @Success 200 {object} api.Response{data=dto.LoginResponse} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 500 {object} api.ResponseError{data=string} "Internal server error"
// @Router /auth/signin [post]
func (a *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := a.userService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	api.SuccessJSON(w, dto.LoginResponse{
		AccessToken: dto.TokenInfo{
			Value:     res.AccessToken,
			ExpiresIn: int(constants.AccessTokenDuration) * 3600,
		},
		User: dto.UserDTO{ID: res.User.ID.String(), Email: res.User.Email},
	}, nil)
}

// @Summary current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=dto.MeDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /me [get]
func (a *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	me, err := a.userService.Me(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	api.SuccessJSON(w, dto.MeDTO{
		Profile: convertProfileToDTO(me.Profile),
		IsAdmin: me.IsAdmin,
	}, nil)
}

// @Summary get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=dto.ProfileDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /profile [get]
func (a *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profile, err := a.userService.GetProfile(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProfileToDTO(*profile), nil)
}

// @Summary update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateProfileDTO true "fields to update"
// @Success 200 {object} api.Response{data=dto.ProfileDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /profile [put]
func (a *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	profile, err := a.userService.UpdateProfile(ctx, util.GetUserIDFromContext(ctx), req.DisplayName, req.AvatarURL)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProfileToDTO(*profile), nil)
}
