package middleware

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// 驗證ctx是否有token payload
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if util.GetUserIDFromContext(r.Context()) == uuid.Nil {
			api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, service.ErrMsgAuthRequired), er.ErrStrMap[er.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminMiddleware 需放在 AuthMiddleware 之後
// 後台路由的第一道檢查, service 內仍會再檢查一次
func AdminMiddleware(roleService service.IRoleService) func(http.Handler) http.Handler {
	if roleService == nil {
		panic("AdminMiddleware: roleService cannot be nil")
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ok, err := roleService.IsAdmin(ctx, util.GetUserIDFromContext(ctx))
			if err != nil {
				log.Error().Err(err).Str("request_id", util.GetRequestIDFromContext(ctx)).Msg("check admin role failed")
				api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
				return
			}
			if !ok {
				api.ErrorJSON(w, int(er.UnauthorizedCode), er.New(er.UnauthorizedCode, service.ErrMsgPermissionDenied), er.ErrStrMap[er.UnauthorizedCode])
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
