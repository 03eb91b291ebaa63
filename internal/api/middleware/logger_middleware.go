package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/RoyceAzure/rj/api"
	"github.com/RoyceAzure/rj/api/token"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type StatusRecoder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecoder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecoder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *StatusRecoder) Status() int {
	return w.status
}

func getPayload(r *http.Request) *token.Payload[uuid.UUID] {
	payload := util.GetTokenPayloadFromContext[uuid.UUID](r.Context())
	if payload == nil {
		return &token.Payload[uuid.UUID]{
			UPN:    "unknown",
			UserId: uuid.Nil,
		}
	}
	return payload
}

// 記錄request 請求
// 有一起處理recover
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recoder := &StatusRecoder{
				ResponseWriter: w,
			}

			defer func() {
				requestId := util.GetRequestIDFromContext(r.Context())
				payload := getPayload(r)

				if err := recover(); err != nil {
					var errMsg string
					if e, ok := err.(error); ok {
						errMsg = e.Error()
					} else {
						errMsg = fmt.Sprintf("%v", err)
					}
					logger.Error().
						Str("request_id", requestId).
						Str("upn", payload.UPN).
						Str("user_id", payload.UserId.String()).
						Str("method", r.Method).
						Str("url", r.URL.String()).
						Str("error", errMsg).
						Bytes("stack", debug.Stack()).
						Msg("request panic")

					if recoder.Status() == 0 {
						api.ErrorJSON(recoder, int(er.InternalErrorCode), nil, er.ErrStrMap[er.InternalErrorCode])
					}
				}

				logger.Info().
					Str("request_id", requestId).
					Str("upn", payload.UPN).
					Str("user_id", payload.UserId.String()).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Int("status", recoder.Status()).
					Msg("request completed")
			}()

			next.ServeHTTP(recoder, r)
		})
	}
}
